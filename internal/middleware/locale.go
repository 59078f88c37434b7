package middleware

import "net/http"

// VaryLocale marks dynamic responses as language-dependent for caches. The
// rendered language follows both the Accept-Language header and the session
// cookie, so both take part in the cache key.
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		w.Header().Add("Vary", "Cookie")
		next.ServeHTTP(w, r)
	})
}
