package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/infrastructure/memory"
	"github.com/jhoicas/lager-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/lager-api/internal/interfaces/http"
	"github.com/jhoicas/lager-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "lager-api-test"
)

// testEnv aplicación completa sobre almacenes en memoria.
type testEnv struct {
	app        *fiber.App
	categories *memory.CategoryStore
	products   *memory.ProductStore
	metrics    *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := memory.NewUserStore()
	categories := memory.NewCategoryStore()
	products := memory.NewProductStore(categories)
	m := metrics.New()

	authUC := auth.NewAuthUseCase(users, auth.NewBcryptHasher(bcrypt.MinCost, 2), auth.JWTConfig{
		Secret: testJWTSecret,
		Issuer: testIssuer,
	}, m)

	app := apphttp.NewApp(apphttp.ServerConfig{AppName: "lager-api-test", CORSOrigins: "*"}, logger.Nop(), m, apphttp.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: usecase.NewCategoryUseCase(categories),
		ProductUC:  usecase.NewProductUseCase(products),
	})
	return &testEnv{app: app, categories: categories, products: products, metrics: m}
}

// do lanza la petición; body puede ser nil, string (JSON crudo) o cualquier valor serializable.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login registra (si hace falta) y devuelve un token válido.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	_ = e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"email": email, "password": password})
	resp := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Fields  []struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"fields"`
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
