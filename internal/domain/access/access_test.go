package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fullerpub/barstock-api/internal/domain/access"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
)

// Tabla de reglas completa: admin siempre; staff solo su bar.
func TestCanEditStock_TablaDeReglas(t *testing.T) {
	cases := []struct {
		name        string
		role        string
		assignedBar int
		targetBar   int
		want        bool
	}{
		{"admin bar1 edita bar1", entity.RoleAdmin, 1, 1, true},
		{"admin bar1 edita bar2", entity.RoleAdmin, 1, 2, true},
		{"admin bar2 edita bar1", entity.RoleAdmin, 2, 1, true},
		{"staff bar1 edita bar1", entity.RoleStaff, 1, 1, true},
		{"staff bar1 edita bar2", entity.RoleStaff, 1, 2, false},
		{"staff bar2 edita bar2", entity.RoleStaff, 2, 2, true},
		{"staff bar2 edita bar1", entity.RoleStaff, 2, 1, false},
		{"rol desconocido", "manager", 1, 1, false},
		{"rol vacío", "", 1, 1, false},
		{"staff target fuera de rango", entity.RoleStaff, 1, 3, false},
		{"staff target cero", entity.RoleStaff, 1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := access.CanEditStock(tc.role, tc.assignedBar, tc.targetBar)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Un admin con bar asignado fuera de rango sigue pudiendo editar (el rol manda).
func TestCanEditStock_AdminIgnoraBarAsignado(t *testing.T) {
	assert.True(t, access.CanEditStock(entity.RoleAdmin, 0, 1))
	assert.True(t, access.CanEditStock(entity.RoleAdmin, 99, 2))
}
