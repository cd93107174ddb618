package server

import (
	"log/slog"
	"net/http"

	"github.com/pdxhunt/scavenger/internal/telephony"
)

// signatureMiddleware rejects webhook requests whose X-Twilio-Signature
// header does not match the request. Fails closed: with no auth token
// configured, every request is rejected.
func signatureMiddleware(logger *slog.Logger, validator telephony.RequestValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Unauthorized", http.StatusForbidden)
				return
			}

			signature := r.Header.Get("X-Twilio-Signature")
			if !validator.Validate(requestURL(r), r.PostForm, signature) {
				logger.Warn("rejected webhook with invalid signature", "path", r.URL.Path)
				http.Error(w, "Unauthorized", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestURL reconstructs the full URL the provider signed. The scheme comes
// from the proxy header when present since webhooks usually arrive via TLS
// termination.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
