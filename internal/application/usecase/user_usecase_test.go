package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
)

type stubUsers struct {
	users []*entity.User
}

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }

func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) GetByUsername(context.Context, string) (*entity.User, error) { return nil, nil }

func (s *stubUsers) ListVendors(context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range s.users {
		if u.IsVendor() {
			out = append(out, u)
		}
	}
	return out, nil
}

func seedUsers() *stubUsers {
	return &stubUsers{users: []*entity.User{
		{ID: "hr-1", Username: "hr_techcorp", Role: entity.RoleHR, CompanyName: "TechCorp Solutions"},
		{ID: "v-1", Username: "vendor_wellness", Role: entity.RoleVendor, VendorName: "Wellness Pro Services", EventTypes: []string{entity.EventTypeYoga}},
		{ID: "v-2", Username: "vendor_fitness", Role: entity.RoleVendor, VendorName: "FitLife Training", EventTypes: []string{entity.EventTypeFitness}},
		{ID: "v-3", Username: "vendor_mental", Role: entity.RoleVendor, VendorName: "MindCare Wellness", EventTypes: []string{entity.EventTypeMentalHealth}},
	}}
}

func TestListVendors_OrdenPorNombreComercial(t *testing.T) {
	uc := NewUserUseCase(seedUsers())

	got, err := uc.ListVendors(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "FitLife Training", got[0].VendorName)
	assert.Equal(t, "MindCare Wellness", got[1].VendorName)
	assert.Equal(t, "Wellness Pro Services", got[2].VendorName)
	assert.Empty(t, got[0].CompanyName)
}

func TestEventTypes(t *testing.T) {
	uc := NewUserUseCase(seedUsers())
	got := uc.EventTypes()
	require.Len(t, got, 8)
	assert.Equal(t, entity.EventTypeYoga, got[0])
	assert.Contains(t, got, entity.EventTypeHealthScreen)

	got[0] = "Karaoke"
	assert.Equal(t, entity.EventTypeYoga, uc.EventTypes()[0], "cada llamada devuelve una copia")
}
