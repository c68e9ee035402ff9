package scheduling

import "github.com/jhoicas/Bienestar-api/internal/domain/entity"

// CanView aplica la regla de visibilidad: RRHH ve los eventos de su empresa,
// el proveedor solo los que tiene asignados.
func CanView(u *entity.User, e *entity.Event) bool {
	if u == nil || e == nil {
		return false
	}
	switch u.Role {
	case entity.RoleHR:
		return u.CompanyName != "" && e.CompanyName == u.CompanyName
	case entity.RoleVendor:
		return e.IsAssignedTo(u.ID)
	}
	return false
}

// CanPropose solo RRHH crea eventos.
func CanPropose(u *entity.User) bool {
	return u.IsHR() && u.CompanyName != ""
}
