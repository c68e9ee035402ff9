package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Bienestar-api/internal/application/auth"
	"github.com/jhoicas/Bienestar-api/internal/application/events"
	"github.com/jhoicas/Bienestar-api/internal/application/usecase"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Bienestar-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Bienestar-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	users []*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.users = append(m.users, u)
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ListVendors(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		if u.IsVendor() {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type memEvents struct {
	mu     sync.Mutex
	events map[string]entity.Event
}

func (m *memEvents) Create(_ context.Context, e *entity.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[e.ID] = *e
	return nil
}

func (m *memEvents) GetByID(_ context.Context, id string) (*entity.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *memEvents) list(match func(e entity.Event) bool) []*entity.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Event
	for _, e := range m.events {
		if match(e) {
			e := e
			out = append(out, &e)
		}
	}
	return out
}

func (m *memEvents) ListByCompany(_ context.Context, company string) ([]*entity.Event, error) {
	return m.list(func(e entity.Event) bool { return e.CompanyName == company }), nil
}

func (m *memEvents) ListByVendor(_ context.Context, vendorID string) ([]*entity.Event, error) {
	return m.list(func(e entity.Event) bool { return e.IsAssignedTo(vendorID) }), nil
}

func (m *memEvents) Decide(_ context.Context, next *entity.Event, vendorID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.events[next.ID]
	if !ok || cur.Status != entity.StatusPending || !cur.IsAssignedTo(vendorID) {
		return false, nil
	}
	m.events[next.ID] = *next
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de prueba
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "bienestar-api-test"
	testExpMin    = 60
	testPassword  = "password123"
)

// stubPDF y stubCalendar evitan depender de maroto/go-ical en los tests HTTP.
type stubPDF struct{}

func (stubPDF) GenerateConfirmationPDF(_ context.Context, e *entity.Event) ([]byte, error) {
	return []byte("%PDF-" + e.ID), nil
}

type stubCalendar struct{}

func (stubCalendar) EncodeEvents(_ context.Context, evs []*entity.Event) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("BEGIN:VCALENDAR\r\n")
	for _, e := range evs {
		buf.WriteString("SUMMARY:" + e.EventName + "\r\n")
	}
	buf.WriteString("END:VCALENDAR\r\n")
	return buf.Bytes(), nil
}

type testApp struct {
	app    *fiber.App
	users  *memUsers
	events *memEvents
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	users := &memUsers{users: []*entity.User{
		{ID: "hr-1", Username: "hr_techcorp", PasswordHash: string(hash), Role: entity.RoleHR, CompanyName: "TechCorp Solutions"},
		{ID: "hr-2", Username: "hr_innovate", PasswordHash: string(hash), Role: entity.RoleHR, CompanyName: "Innovate Inc"},
		{
			ID: "v-1", Username: "vendor_wellness", PasswordHash: string(hash), Role: entity.RoleVendor, VendorName: "Wellness Pro Services",
			EventTypes: []string{entity.EventTypeYoga, entity.EventTypeMeditation, entity.EventTypeStress},
		},
		{
			ID: "v-2", Username: "vendor_fitness", PasswordHash: string(hash), Role: entity.RoleVendor, VendorName: "FitLife Training",
			EventTypes: []string{entity.EventTypeFitness, entity.EventTypeTeamBuilding, entity.EventTypeHealthScreen},
		},
	}}
	evs := &memEvents{events: map[string]entity.Event{}}
	log := zerolog.Nop()
	clock := func() time.Time { return time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC) }

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, log)
	eventUC := events.NewEventUseCase(evs, users, log,
		events.WithClock(clock),
		events.WithPDFGenerator(stubPDF{}),
		events.WithCalendarEncoder(stubCalendar{}),
	)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		UserUC:    usecase.NewUserUseCase(users),
		EventUC:   eventUC,
		JWTSecret: testJWTSecret,
	})
	return &testApp{app: app, users: users, events: evs}
}

// tokenFor genera un Bearer token para userID.
func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// do lanza una petición y devuelve status y cuerpo.
func (ta *testApp) do(t *testing.T, method, path, authHeader string, body interface{}) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode(t *testing.T, b []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(b, v), string(b))
}

