// seed crea las cuentas de demostración (dos usuarios HR y tres proveedores).
// Es idempotente: los usernames existentes se omiten.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bienestar-api/internal/application/auth"
	"github.com/jhoicas/Bienestar-api/internal/domain"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
	"github.com/jhoicas/Bienestar-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Bienestar-api/pkg/config"
	"github.com/jhoicas/Bienestar-api/pkg/logger"
)

const seedPassword = "password123"

func seedUsers() []entity.User {
	return []entity.User{
		{Username: "hr_techcorp", Role: entity.RoleHR, CompanyName: "TechCorp Solutions"},
		{Username: "hr_innovate", Role: entity.RoleHR, CompanyName: "Innovate Inc"},
		{
			Username: "vendor_wellness", Role: entity.RoleVendor, VendorName: "Wellness Pro Services",
			EventTypes: []string{entity.EventTypeYoga, entity.EventTypeMeditation, entity.EventTypeStress},
		},
		{
			Username: "vendor_fitness", Role: entity.RoleVendor, VendorName: "FitLife Training",
			EventTypes: []string{entity.EventTypeFitness, entity.EventTypeTeamBuilding, entity.EventTypeHealthScreen},
		},
		{
			Username: "vendor_mental", Role: entity.RoleVendor, VendorName: "MindCare Wellness",
			EventTypes: []string{entity.EventTypeMentalHealth, entity.EventTypeNutrition, entity.EventTypeStress},
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}

	repo := postgres.NewUserRepository(pool)
	created := 0
	for _, u := range seedUsers() {
		u := u
		now := time.Now().UTC()
		u.ID = uuid.New().String()
		u.PasswordHash = hash
		u.CreatedAt, u.UpdatedAt = now, now
		if err := repo.Create(ctx, &u); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Info().Str("username", u.Username).Msg("ya existe, se omite")
				continue
			}
			log.Fatal().Err(err).Str("username", u.Username).Msg("crear usuario")
		}
		created++
		log.Info().Str("username", u.Username).Str("role", u.Role).Msg("usuario creado")
	}
	log.Info().Int("creados", created).Msg("seed completado")
}
