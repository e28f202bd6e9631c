package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"eventreg/internal/application"
	"eventreg/internal/infrastructure/i18n"
	"eventreg/internal/infrastructure/sqlite"
	"eventreg/pkg/tz"
)

type testAPI struct {
	t       *testing.T
	store   *sqlite.Store
	handler *Handler
	router  http.Handler
}

// newTestAPI wires the real services over a temporary SQLite database.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "api.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := zerolog.Nop()
	h := NewHandler(
		application.NewEventService(store, logger),
		application.NewRegistrationService(store, logger),
		application.NewQueryService(store),
		i18n.NewTranslator("en", logger),
		store,
		tz.Default,
		logger,
	)
	return &testAPI{t: t, store: store, handler: h, router: h.Router(nil)}
}

func (a *testAPI) do(method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[errorResponse](t, rec).Error
}

func eventBody(name string, start time.Time, capacity int) map[string]any {
	return map[string]any{
		"name":         name,
		"location":     "Mumbai",
		"start_time":   start.Format(time.RFC3339),
		"end_time":     start.Add(2 * time.Hour).Format(time.RFC3339),
		"max_capacity": capacity,
	}
}

// createEvent creates an event through the API and returns its id.
func (a *testAPI) createEvent(name string, capacity int) int64 {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/events/", eventBody(name, time.Now().Add(72*time.Hour), capacity))
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[eventResponse](a.t, rec).ID
}
