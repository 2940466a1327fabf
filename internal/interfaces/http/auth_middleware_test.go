package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/domain"
	apphttp "github.com/jhoicas/lager-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/lager-api/pkg/jwt"
)

// fakeVerifier acepta un único token.
type fakeVerifier struct {
	token    string
	identity *dto.Identity
	err      error
}

func (f fakeVerifier) VerifySession(_ context.Context, token string) (*dto.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	if token != f.token {
		return nil, domain.ErrUnauthenticated
	}
	return f.identity, nil
}

// buildGateApp monta /protected detrás del gate; calls cuenta las veces que se llega al handler.
func buildGateApp(v apphttp.SessionVerifier, calls *int) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(v), func(c *fiber.Ctx) error {
		*calls++
		fromCtx, _ := apphttp.IdentityFromContext(c.UserContext())
		return c.JSON(fiber.Map{"local": apphttp.GetIdentity(c), "ctx": fromCtx})
	})
	return app
}

func gateRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_TokenValidoAdjuntaIdentidad(t *testing.T) {
	identity := &dto.Identity{ID: 7, Email: "a@b.com", Role: "staff"}
	var calls int
	app := buildGateApp(fakeVerifier{token: "ok", identity: identity}, &calls)

	resp := gateRequest(t, app, "Bearer ok")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, calls)

	var body struct {
		Local dto.Identity `json:"local"`
		Ctx   dto.Identity `json:"ctx"`
	}
	decode(t, resp, &body)
	assert.Equal(t, *identity, body.Local)
	assert.Equal(t, *identity, body.Ctx)
}

func TestAuthMiddleware_EsquemaSinDistinguirMayusculas(t *testing.T) {
	var calls int
	app := buildGateApp(fakeVerifier{token: "ok", identity: &dto.Identity{ID: 1}}, &calls)

	resp := gateRequest(t, app, "bearer ok")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin cabecera", "", "MISSING_TOKEN"},
		{"sin esquema Bearer", "ok", "INVALID_TOKEN"},
		{"esquema Basic", "Basic dXNlcjpwYXNz", "INVALID_TOKEN"},
		{"solo el esquema", "Bearer", "INVALID_TOKEN"},
		{"token desconocido", "Bearer otro", "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var calls int
			app := buildGateApp(fakeVerifier{token: "ok", identity: &dto.Identity{ID: 1}}, &calls)

			resp := gateRequest(t, app, tc.header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Zero(t, calls, "el handler protegido no debe ejecutarse")

			var body errorBody
			decode(t, resp, &body)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestAuthMiddleware_ErrorInternoDelVerificador(t *testing.T) {
	var calls int
	app := buildGateApp(fakeVerifier{err: assert.AnError}, &calls)

	resp := gateRequest(t, app, "Bearer ok")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Zero(t, calls)
}

func TestAuthMiddleware_TokenDeOtroSecretNoTieneEfectos(t *testing.T) {
	env := newTestEnv(t)
	forged, err := pkgjwt.Generate("otro-secret", 1, "a@b.com", "staff", testIssuer, 0)
	require.NoError(t, err)

	resp := env.do(t, http.MethodPost, "/api/categories", forged, map[string]string{"name": "Tools"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/products", forged, map[string]any{"sku": "X-1", "name": "Martillo"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/categories/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	categories, err := env.categories.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
	products, err := env.products.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}
