// Package scheduling contiene las reglas puras del agendamiento de eventos de bienestar:
// asignación de proveedor por capacidad, transiciones del ciclo de vida, invariantes
// y política de visibilidad. No depende de infraestructura.
package scheduling

import (
	"sort"

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

// MatchVendor devuelve el proveedor cuya lista de tipos contiene eventType, o nil si ninguno.
//
// Desempate determinista: se recorren los proveedores por Username ascendente (y por ID
// como segundo criterio), y gana el primero que calza. No muta el slice recibido.
func MatchVendor(eventType string, vendors []*entity.User) *entity.User {
	if !entity.IsEventType(eventType) {
		return nil
	}
	candidates := make([]*entity.User, 0, len(vendors))
	for _, v := range vendors {
		if v.Offers(eventType) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Username != candidates[j].Username {
			return candidates[i].Username < candidates[j].Username
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates[0]
}
