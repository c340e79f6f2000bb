package providers

import "net/http"

// AuthMiddleware gates a handler behind the X-API-Key header. The master
// key always passes; any other value must be a live key in the keystore.
// When no master key is configured the API is open.
func AuthMiddleware(masterKey string, keystore KeystoreProviderInterface, next http.Handler) http.Handler {
	if masterKey == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-API-Key")
		if key == masterKey {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := keystore.Get(key); key != "" && ok {
			next.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}
