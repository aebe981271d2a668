package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(
		Route{
			Path:        "/ping",
			Method:      http.MethodGet,
			Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
			Middlewares: []func(http.Handler) http.Handler{mark("first"), mark("second")},
		},
	))

	t.Run("middlewares rodam na ordem da lista", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rt.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("rota inexistente", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rt.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nada", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), `"RES_001"`)
	})

	t.Run("método não permitido", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rt.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/ping", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		assert.Contains(t, rr.Body.String(), `"RES_002"`)
	})

	assert.Equal(t, []string{"GET /ping"}, rt.Routes())
}
