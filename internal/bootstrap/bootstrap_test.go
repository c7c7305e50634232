package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/khedhrije/portfolio-api/internal/configuration"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *configuration.AppConfig {
	return &configuration.AppConfig{
		AppVersion:     "test",
		RestConfig:     &configuration.RestConfig{Host: "127.0.0.1", Port: 0},
		DatabaseConfig: &configuration.DatabaseConfig{DSN: "postgres://user@localhost:notaport/db"},
		CorsConfig:     &configuration.CorsConfig{},
		LogConfig:      &configuration.LogConfig{},
	}
}

func TestInitBootstrap_NilConfig(t *testing.T) {
	_, err := InitBootstrap(context.Background(), nil)
	assert.Error(t, err)
}

func TestInitBootstrap_InvalidDSN(t *testing.T) {
	_, err := InitBootstrap(context.Background(), testConfig())
	assert.ErrorContains(t, err, "parse database url")
}

func TestBootstrap_ServesSkills(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// skills ordered by name inside each group, groups by category name
	mock.ExpectQuery(`(?s)json_agg\(.*ORDER BY s\.nome.*ORDER BY cs\.nome`).WillReturnRows(
		mock.NewRows([]string{"categoria_id", "categoria_nome", "habilidades_agrupadas"}).
			AddRow(int64(1), "Backend", []byte(`[{"id":10,"nome":"Node"}]`)).
			AddRow(int64(2), "Design", []byte(`[{"id":null,"nome":null}]`)),
	)

	app := newBootstrap(testConfig(), mock)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/skills", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"skill":{"id":1,"nome":"Backend"},"habilidades":[{"id":10,"nome":"Node"}]},
		  {"skill":{"id":2,"nome":"Design"},"habilidades":[]}]`,
		rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrap_RunStopsOnCancel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	app := newBootstrap(testConfig(), mock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
