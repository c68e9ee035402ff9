package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/Bienestar-api/internal/domain"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
	"github.com/jhoicas/Bienestar-api/pkg/config"
)

// setupPostgres levanta PostgreSQL en un contenedor, aplica las migraciones embebidas
// y devuelve un pool. Se omite con -short o sin Docker.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integración: omitido con -short")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("bienestar"),
		tcpostgres.WithUsername("bienestar"),
		tcpostgres.WithPassword("bienestar"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, MigrateUp(dbURL))
	require.NoError(t, MigrateUp(dbURL), "aplicar dos veces no falla")
	require.NoError(t, MigrateDown(dbURL, 1))
	require.NoError(t, MigrateUp(dbURL), "el esquema se recrea luego de revertir")

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dbURL, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedFixture(t *testing.T, ctx context.Context, users *UserRepo) (hr, vendor *entity.User) {
	t.Helper()
	now := time.Now().UTC()
	hr = &entity.User{
		ID: "6a0b3c1e-0000-4000-8000-000000000001", Username: "hr_techcorp", PasswordHash: "x",
		Role: entity.RoleHR, CompanyName: "TechCorp Solutions", CreatedAt: now, UpdatedAt: now,
	}
	vendor = &entity.User{
		ID: "6a0b3c1e-0000-4000-8000-000000000002", Username: "vendor_wellness", PasswordHash: "x",
		Role: entity.RoleVendor, VendorName: "Wellness Pro Services",
		EventTypes: []string{entity.EventTypeYoga, entity.EventTypeMeditation}, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, users.Create(ctx, hr))
	require.NoError(t, users.Create(ctx, vendor))
	return hr, vendor
}

func pendingEvent(id string, hr, vendor *entity.User) *entity.Event {
	now := time.Now().UTC()
	vendorID := vendor.ID
	return &entity.Event{
		ID:             id,
		CompanyName:    hr.CompanyName,
		EventName:      "Yoga Day",
		EventType:      entity.EventTypeYoga,
		Location:       "NY",
		ProposedDates:  []time.Time{day(2030, 3, 1), day(2030, 3, 2), day(2030, 3, 3)},
		Status:         entity.StatusPending,
		CreatedBy:      hr.ID,
		AssignedVendor: &vendorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestRepositories_Integracion(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	events := NewEventRepository(pool)

	hr, vendor := seedFixture(t, ctx, users)

	t.Run("usuarios", func(t *testing.T) {
		got, err := users.GetByUsername(ctx, "vendor_wellness")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{entity.EventTypeYoga, entity.EventTypeMeditation}, got.EventTypes)

		missing, err := users.GetByID(ctx, "no-es-uuid")
		require.NoError(t, err)
		assert.Nil(t, missing)

		dup := *hr
		dup.ID = "6a0b3c1e-0000-4000-8000-0000000000ff"
		assert.ErrorIs(t, users.Create(ctx, &dup), domain.ErrDuplicate)

		vendors, err := users.ListVendors(ctx)
		require.NoError(t, err)
		require.Len(t, vendors, 1)
		assert.Equal(t, vendor.ID, vendors[0].ID)
	})

	t.Run("evento con nombre de proveedor", func(t *testing.T) {
		e := pendingEvent("7b000000-0000-4000-8000-000000000001", hr, vendor)
		require.NoError(t, events.Create(ctx, e))

		got, err := events.GetByID(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Wellness Pro Services", got.VendorName)
		assert.Equal(t, e.ProposedDates, got.ProposedDates)
		require.NotNil(t, got.AssignedVendor)
		assert.Equal(t, vendor.ID, *got.AssignedVendor)

		byCompany, err := events.ListByCompany(ctx, hr.CompanyName)
		require.NoError(t, err)
		assert.Len(t, byCompany, 1)
		byVendor, err := events.ListByVendor(ctx, vendor.ID)
		require.NoError(t, err)
		assert.Len(t, byVendor, 1)
	})

	t.Run("el CHECK rechaza estados inconsistentes", func(t *testing.T) {
		e := pendingEvent("7b000000-0000-4000-8000-000000000002", hr, vendor)
		e.Status = entity.StatusApproved
		assert.Error(t, events.Create(ctx, e), "aprobado sin fecha confirmada")
	})

	t.Run("decisiones concurrentes: un solo ganador", func(t *testing.T) {
		e := pendingEvent("7b000000-0000-4000-8000-000000000003", hr, vendor)
		require.NoError(t, events.Create(ctx, e))

		const n = 8
		results := make([]bool, n)
		errs := make([]error, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				next := *e
				if i%2 == 0 {
					confirmed := e.ProposedDates[1]
					next.Status, next.ConfirmedDate = entity.StatusApproved, &confirmed
				} else {
					next.Status, next.Remarks = entity.StatusRejected, "sin cupo"
				}
				next.UpdatedAt = time.Now().UTC()
				results[i], errs[i] = events.Decide(ctx, &next, vendor.ID)
			}(i)
		}
		wg.Wait()

		wins := 0
		for i := range results {
			require.NoError(t, errs[i])
			if results[i] {
				wins++
			}
		}
		assert.Equal(t, 1, wins)

		final, err := events.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.NotEqual(t, entity.StatusPending, final.Status)
	})

	t.Run("proveedor ajeno no puede decidir", func(t *testing.T) {
		e := pendingEvent("7b000000-0000-4000-8000-000000000004", hr, vendor)
		require.NoError(t, events.Create(ctx, e))
		next := *e
		next.Status, next.Remarks = entity.StatusRejected, "no"
		ok, err := events.Decide(ctx, &next, hr.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
