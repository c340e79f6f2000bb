package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRouterProvider_RecordsMethodAndUrl(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())
	rp.Post("/submit", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 2)
	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, "/test", routes[0].Url)
	assert.Equal(t, http.MethodPost, routes[1].Method)
	assert.Equal(t, "/submit", routes[1].Url)
}

func TestRouterProvider_Pattern(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/collections", dummyHandler())

	pattern, ok := rp.Pattern("/collections")
	assert.True(t, ok)
	assert.Equal(t, "/collections", pattern)

	_, ok = rp.Pattern("/not-registered")
	assert.False(t, ok)
}

func TestRouterProvider_RegisteredMethodPasses(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())

	route := rp.GetRoutes()[0]
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	route.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestRouterProvider_GetRouteRejectsPost(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler())

	route := rp.GetRoutes()[0]
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rr := httptest.NewRecorder()
	route.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}

func TestRouterProvider_PostRouteRejectsGet(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/submit", dummyHandler())

	route := rp.GetRoutes()[0]
	req := httptest.NewRequest(http.MethodGet, "/submit", nil)
	rr := httptest.NewRecorder()
	route.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
}
