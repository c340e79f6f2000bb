package providers

import (
	"net/http"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

// RouterProviderInterface is the read-only route registry. All endpoints
// are exact paths with query-string parameters, so registration and
// lookup work on the literal path. Pattern tells the request-metrics
// layer whether a path is a registered endpoint; unregistered probe
// paths must not become metric labels.
type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	GetRoutes() []structures.Route
	Pattern(path string) (string, bool)
}

type RouterProvider struct {
	routes  []structures.Route
	methods map[string]string
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{methods: make(map[string]string)}
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	rp.methods[url] = method
	rp.routes = append(rp.routes, structures.Route{
		Method:  method,
		Url:     url,
		Handler: rp.enforceMethod(url, handler),
	})
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}

func (rp *RouterProvider) Pattern(path string) (string, bool) {
	_, ok := rp.methods[path]
	return path, ok
}

// enforceMethod rejects every verb except the registered one. The Allow
// header carries the registered verb as RFC 9110 requires for 405.
func (rp *RouterProvider) enforceMethod(url string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != rp.methods[url] {
			w.Header().Set("Allow", rp.methods[url])
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
