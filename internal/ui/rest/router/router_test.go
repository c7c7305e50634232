package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/khedhrije/portfolio-api/internal/configuration"
	"github.com/khedhrije/portfolio-api/internal/domain"
	"github.com/khedhrije/portfolio-api/internal/ui/rest/handlers"
	"github.com/khedhrije/portfolio-api/pkg/monitoring"
	"github.com/stretchr/testify/assert"
)

type fakeReader struct{}

func (fakeReader) ListCategorias(context.Context) ([]domain.Categoria, error) {
	return []domain.Categoria{{ID: 1, Nome: "Backend"}, {ID: 2, Nome: "Design"}}, nil
}

func (fakeReader) ListSkillGroups(context.Context) ([]domain.SkillGroup, error) {
	id, nome := int64(10), "Node"
	return domain.FormatSkillGroups([]domain.SkillRow{
		{CategoriaID: 1, CategoriaNome: "Backend", Habilidades: []domain.AggregatedSkill{{ID: &id, Nome: &nome}}},
		{CategoriaID: 2, CategoriaNome: "Design", Habilidades: []domain.AggregatedSkill{{}}},
	}), nil
}

func (fakeReader) ListFormacao(context.Context) ([]domain.Formacao, error) {
	return nil, errors.New("relation \"formacao\" does not exist")
}

type fakeDB struct{}

func (fakeDB) Ping(context.Context) error { return nil }

func (fakeDB) QueryRow(context.Context, string, ...any) pgx.Row { return errRow{} }

type errRow struct{}

func (errRow) Scan(...any) error { return pgx.ErrNoRows }

func newTestRouter(origins ...string) http.Handler {
	checks := monitoring.New(&configuration.AppConfig{AppVersion: "test"}, fakeDB{})
	return CreateRouter(checks, handlers.NewPortfolio(fakeReader{}), Options{AllowedOrigins: origins})
}

func get(h http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_Skills(t *testing.T) {
	rec := get(newTestRouter(), "/api/skills", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"skill":{"id":1,"nome":"Backend"},"habilidades":[{"id":10,"nome":"Node"}]},
		  {"skill":{"id":2,"nome":"Design"},"habilidades":[]}]`,
		rec.Body.String())
}

func TestRoutes_Categorias(t *testing.T) {
	rec := get(newTestRouter(), "/api/categorias", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"nome":"Backend"},{"id":2,"nome":"Design"}]`, rec.Body.String())
}

func TestRoutes_FormacaoFailure(t *testing.T) {
	rec := get(newTestRouter(), "/api/formacao", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Erro no Servidor: Falha ao acessar a Formação"`)
	assert.Contains(t, rec.Body.String(), `does not exist`)
}

func TestRoutes_StatusAndTechnical(t *testing.T) {
	h := newTestRouter()

	assert.Equal(t, http.StatusOK, get(h, "/", nil).Code)
	assert.Equal(t, http.StatusOK, get(h, "/api/livez", nil).Code)
	assert.Equal(t, http.StatusOK, get(h, "/api/readyz", nil).Code)
	assert.Equal(t, http.StatusOK, get(h, "/api/version", nil).Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/api/unknown", nil).Code)
}

func TestCORS_AllowsAnyOriginByDefault(t *testing.T) {
	rec := get(newTestRouter(), "/api/categorias", map[string]string{"Origin": "https://portfolio.example"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	h := newTestRouter("https://portfolio.example")

	allowed := get(h, "/api/categorias", map[string]string{"Origin": "https://portfolio.example"})
	assert.Equal(t, "https://portfolio.example", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := get(h, "/api/categorias", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_WildcardOrigin(t *testing.T) {
	rec := get(newTestRouter("*"), "/api/categorias", map[string]string{"Origin": "https://anyone.example"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ConfiguredOriginsBuildValidMiddleware(t *testing.T) {
	for _, origins := range [][]string{nil, {"*"}, {"https://a.dev", "http://localhost:5173"}} {
		assert.NoError(t, corsConfig(origins).Validate())
	}
}

func TestCORS_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/skills", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestRequestLogger_CorrelationID(t *testing.T) {
	h := newTestRouter()

	rec := get(h, "/api/livez", map[string]string{HeaderCorrelationID: "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get(HeaderCorrelationID))

	rec = get(h, "/api/livez", nil)
	assert.NotEmpty(t, rec.Header().Get(HeaderCorrelationID))
}
