// Package access contiene el gatekeeper de edición de stock: decide si un
// perfil puede mutar la cantidad de un bar concreto. Lógica pura, sin estado
// ni dependencias; la reconciliación tras una denegación vive en el use case.
package access

import "github.com/fullerpub/barstock-api/internal/domain/entity"

// CanEditStock evalúa la tabla de reglas en orden, gana la primera coincidencia:
//
//	admin                     -> cualquier bar
//	staff con bar asignado N  -> solo el campo del bar N
//	cualquier otro caso       -> denegado
func CanEditStock(role string, assignedBar, targetBar int) bool {
	if role == entity.RoleAdmin {
		return true
	}
	if role != entity.RoleStaff {
		return false
	}
	if !entity.ValidBar(targetBar) {
		return false
	}
	return assignedBar == targetBar
}
