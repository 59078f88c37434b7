package middleware

import "net/http"

// HTMX flags requests issued by htmx, including boosted navigations, so error
// responses and fragments can take the right shape.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}
