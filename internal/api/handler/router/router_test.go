package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dataops-local/pkg/apiErrors"
)

func tag(name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Ordem", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rt := New(WithRoutes(
		Route{Path: "/v1/b", Method: http.MethodPost, Handler: ok},
		Route{Path: "/v1/a", Method: http.MethodGet, Handler: ok, Middlewares: []Middleware{tag("primeiro"), tag("segundo")}},
	))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "Rota registrada", method: http.MethodGet, path: "/v1/a", wantStatus: http.StatusNoContent},
		{name: "Rota inexistente", method: http.MethodGet, path: "/v1/c", wantStatus: http.StatusNotFound, wantCode: apiErrors.ErrRouteNotFound},
		{name: "Método errado", method: http.MethodGet, path: "/v1/b", wantStatus: http.StatusMethodNotAllowed, wantCode: apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var body apiErrors.APIError
				require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}

	t.Run("Middlewares na ordem da lista", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/a", nil))
		assert.Equal(t, []string{"primeiro", "segundo"}, rec.Header().Values("X-Ordem"))
	})

	t.Run("Lista de rotas", func(t *testing.T) {
		assert.Equal(t, []string{"GET /v1/a", "POST /v1/b"}, rt.Routes())
	})
}
