package entity

import (
	"fmt"
	"time"
)

// Roles válidos para User.
const (
	RoleHR     = "HR"
	RoleVendor = "Vendor"
)

// User representa una identidad del sistema: un representante de RRHH (con empresa)
// o un proveedor de servicios de bienestar (con nombre comercial y tipos de evento).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // HR, Vendor
	CompanyName  string // solo HR
	VendorName   string // solo Vendor
	EventTypes   []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsHR informa si el usuario es de RRHH.
func (u *User) IsHR() bool { return u != nil && u.Role == RoleHR }

// IsVendor informa si el usuario es proveedor.
func (u *User) IsVendor() bool { return u != nil && u.Role == RoleVendor }

// Offers informa si el proveedor declara el tipo de evento entre sus capacidades.
func (u *User) Offers(eventType string) bool {
	if !u.IsVendor() {
		return false
	}
	for _, t := range u.EventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// Validate verifica que los campos poblados correspondan al rol:
// HR lleva empresa y ningún perfil de proveedor; Vendor lleva nombre y tipos, sin empresa.
func (u *User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("usuario: username requerido")
	}
	switch u.Role {
	case RoleHR:
		if u.CompanyName == "" {
			return fmt.Errorf("usuario %s: companyName requerido para HR", u.Username)
		}
		if u.VendorName != "" || len(u.EventTypes) > 0 {
			return fmt.Errorf("usuario %s: HR no puede tener perfil de proveedor", u.Username)
		}
	case RoleVendor:
		if u.VendorName == "" || len(u.EventTypes) == 0 {
			return fmt.Errorf("usuario %s: vendorName y eventTypes requeridos para Vendor", u.Username)
		}
		if u.CompanyName != "" {
			return fmt.Errorf("usuario %s: Vendor no puede tener companyName", u.Username)
		}
		for _, t := range u.EventTypes {
			if !IsEventType(t) {
				return fmt.Errorf("usuario %s: tipo de evento desconocido %q", u.Username, t)
			}
		}
	default:
		return fmt.Errorf("usuario %s: rol inválido %q", u.Username, u.Role)
	}
	return nil
}
