package middleware

import (
	"net/http"
)

// SecurityHeadersWithCSP adds security headers with a custom Content-Security-Policy.
// isHTTPS: if true, adds Strict-Transport-Security.
// csp: Content-Security-Policy value (empty means no CSP header).
func SecurityHeadersWithCSP(isHTTPS bool, csp string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()

			headers.Set("X-Frame-Options", "DENY")
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			headers.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

			if csp != "" {
				headers.Set("Content-Security-Policy", csp)
			}
			if isHTTPS {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
