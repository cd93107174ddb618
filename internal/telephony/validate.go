package telephony

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
)

// RequestValidator checks the X-Twilio-Signature header on inbound webhooks.
// The signature is HMAC-SHA1 over the request URL concatenated with the
// URL-encoded form parameters in sorted key order, base64-encoded, keyed by
// the account auth token. With no token configured, validation always fails.
type RequestValidator struct {
	authToken string
}

func NewRequestValidator(authToken string) RequestValidator {
	return RequestValidator{authToken: authToken}
}

// Validate reports whether signature matches the given request URL and form.
// Only the first value of each form key participates, matching the webhook
// sender's canonicalization.
func (v RequestValidator) Validate(rawURL string, form url.Values, signature string) bool {
	if v.authToken == "" {
		return false
	}

	mac := hmac.New(sha1.New, []byte(v.authToken))
	mac.Write([]byte(rawURL))
	if len(form) > 0 {
		single := make(url.Values, len(form))
		for key, values := range form {
			if len(values) > 0 {
				single.Set(key, values[0])
			}
		}
		// Encode sorts by key and escapes, matching urlencode(sorted(params)).
		mac.Write([]byte(single.Encode()))
	}

	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
