package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Credito-api/internal/application/dto"
	apphttp "github.com/jhoicas/Credito-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Credito-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "credito-api-test"
	testExpMin    = 60
)

// buildAuthApp aplicación mínima con CustomerAuth y un handler que devuelve el cliente del token.
func buildAuthApp(required bool) *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.CustomerAuth(testJWTSecret, required), func(c *fiber.Ctx) error {
		id, ok := apphttp.GetCustomerID(c)
		return c.JSON(fiber.Map{"customer_id": id, "authenticated": ok})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CustomerAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerAuth_TokenValido_ExtraeCliente(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 42, "gabriel@email.com", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doGet(t, buildAuthApp(true), "Bearer "+tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 42, body["customer_id"])
	assert.Equal(t, true, body["authenticated"])
}

func TestCustomerAuth_SinHeader_Opcional_Pasa(t *testing.T) {
	resp := doGet(t, buildAuthApp(false), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["authenticated"])
}

func TestCustomerAuth_SinHeader_Requerido_401(t *testing.T) {
	resp := doGet(t, buildAuthApp(true), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Un token presente pero inválido se rechaza aunque el token sea opcional.
func TestCustomerAuth_TokenInvalido_401(t *testing.T) {
	for _, required := range []bool{true, false} {
		resp := doGet(t, buildAuthApp(required), "Bearer token.invalido.aqui")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestCustomerAuth_FormatoIncorrecto_401(t *testing.T) {
	resp := doGet(t, buildAuthApp(false), "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestCustomerAuth_TokenExpirado_401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 42, "gabriel@email.com", testIssuer, -1)
	require.NoError(t, err)

	resp := doGet(t, buildAuthApp(true), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests rutas de créditos con AUTH_REQUIRED
// ──────────────────────────────────────────────────────────────────────────────

func TestCredits_AuthRequerido_SinToken_401(t *testing.T) {
	env := newTestEnv(true)
	resp, _ := env.do(t, http.MethodGet, "/api/credits?customerId=1", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCredits_AuthRequerido_TokenPropio_200(t *testing.T) {
	env := newTestEnv(true)
	env.customers.On("GetByID", mock.Anything, int64(1)).Return(owner(1), nil).Once()
	env.credits.On("ListByCustomer", mock.Anything, int64(1)).Return(nil, nil).Once()

	resp, _ := env.do(t, http.MethodGet, "/api/credits?customerId=1", "", bearer(t, 1))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCredits_TokenDeOtroCliente_403(t *testing.T) {
	env := newTestEnv(true)
	resp, _ := env.do(t, http.MethodGet, "/api/credits?customerId=1", "", bearer(t, 2))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	env.credits.AssertNotCalled(t, "ListByCustomer", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/auth/login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_TokenUsableEnCreditos(t *testing.T) {
	env := newTestEnv(true)
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	c := owner(1)
	c.PasswordHash = string(hash)
	env.customers.On("GetByEmail", mock.Anything, "gabriel@email.com").Return(c, nil).Once()

	resp, raw := env.do(t, http.MethodPost, "/api/auth/login", `{"email": "Gabriel@Email.com", "password": "1234"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.EqualValues(t, 1, out.Customer.ID)

	claims, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.EqualValues(t, 1, claims.CustomerID)
}

func TestLogin_PasswordIncorrecto_401(t *testing.T) {
	env := newTestEnv(false)
	hash, _ := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	c := owner(1)
	c.PasswordHash = string(hash)
	env.customers.On("GetByEmail", mock.Anything, "gabriel@email.com").Return(c, nil).Once()

	resp, _ := env.do(t, http.MethodPost, "/api/auth/login", `{"email": "gabriel@email.com", "password": "otra"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
