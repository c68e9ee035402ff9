package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bienestar-api/internal/domain"
	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Bienestar-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Bienestar-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubResolver devuelve el usuario registrado para el ID, o ErrUnauthorized.
type stubResolver map[string]*entity.User

func (s stubResolver) ResolveActor(_ context.Context, id string) (*entity.User, error) {
	if id == "boom" {
		return nil, errors.New("db caída")
	}
	u, ok := s[id]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

var resolver = stubResolver{
	"hr-1": {ID: "hr-1", Username: "hr_techcorp", Role: entity.RoleHR, CompanyName: "TechCorp Solutions"},
	"v-1":  {ID: "v-1", Username: "vendor_wellness", Role: entity.RoleVendor, VendorName: "Wellness Pro Services"},
	"x-1":  {ID: "x-1", Username: "sin_rol"},
}

// buildProtectedApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y recargar el usuario
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildProtectedApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, resolver),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"role":    apphttp.GetRole(c),
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// doProtected lanza una petición GET /protected y devuelve la respuesta.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_HRAccedeRutaHR(t *testing.T) {
	app := buildProtectedApp(entity.RoleHR)
	resp := doProtected(t, app, tokenFor(t, "hr-1", entity.RoleHR))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleHR, body["role"])
	assert.Equal(t, "hr-1", body["user_id"])
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_VendorBloqueadoEnRutaHR(t *testing.T) {
	app := buildProtectedApp(entity.RoleHR)
	resp := doProtected(t, app, tokenFor(t, "v-1", entity.RoleVendor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 3: el rol del token no cuenta; manda el rol persistido.
func TestRequireRole_RolDelTokenNoSeImpone(t *testing.T) {
	app := buildProtectedApp(entity.RoleHR)
	resp := doProtected(t, app, tokenFor(t, "v-1", entity.RoleHR))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un proveedor con rol HR en el token sigue siendo proveedor")
}

// Caso 4: usuario persistido sin rol → HTTP 401 MISSING_ROLE.
func TestRequireRole_UsuarioSinRol_Retorna401(t *testing.T) {
	app := buildProtectedApp(entity.RoleHR)
	resp := doProtected(t, app, tokenFor(t, "x-1", ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(entity.RoleHR), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(entity.RoleHR), "Basic abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(entity.RoleHR), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", "hr-1", entity.RoleHR, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, buildProtectedApp(entity.RoleHR), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioEliminado_Retorna401(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(entity.RoleHR), tokenFor(t, "borrado", entity.RoleHR))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FalloDelResolver_Retorna500(t *testing.T) {
	resp := doProtected(t, buildProtectedApp(entity.RoleHR), tokenFor(t, "boom", entity.RoleHR))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "db caída", "no se filtran detalles internos")
}
