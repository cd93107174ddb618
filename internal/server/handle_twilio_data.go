package server

import (
	"log/slog"
	"net/http"

	"github.com/pdxhunt/scavenger/internal/telephony"
)

const accountListingLimit = 10

// TwilioDataResponse proxies the provider's own recent message and call
// listings for GET /twilio-data.
type TwilioDataResponse struct {
	Messages   []telephony.AccountMessage `json:"messages"`
	Calls      []telephony.AccountCall    `json:"calls"`
	AccountSID string                     `json:"account_sid"`
}

func handleTwilioData(logger *slog.Logger, client *telephony.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !client.Configured() {
			writeError(w, http.StatusInternalServerError, "twilio client not configured")
			return
		}

		msgs, err := client.RecentMessages(accountListingLimit)
		if err != nil {
			logger.Error("fetching account messages", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		calls, err := client.RecentCalls(accountListingLimit)
		if err != nil {
			logger.Error("fetching account calls", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, TwilioDataResponse{
			Messages:   msgs,
			Calls:      calls,
			AccountSID: client.AccountSID(),
		})
	}
}
