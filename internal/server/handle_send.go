package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pdxhunt/scavenger/internal/telephony"
)

type SendSMSRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type SendSMSResponse struct {
	Success    bool   `json:"success"`
	MessageSID string `json:"message_sid"`
	Status     string `json:"status"`
}

func handleSendSMS(logger *slog.Logger, client *telephony.Client, history *History) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !client.Configured() {
			writeError(w, http.StatusInternalServerError, "twilio client not configured")
			return
		}

		var req SendSMSRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.To == "" || req.Message == "" {
			writeError(w, http.StatusBadRequest, "missing 'to' or 'message' parameter")
			return
		}

		sent, err := client.SendSMS(req.To, req.Message)
		if err != nil {
			logger.Error("sending sms", "to", req.To, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		history.AddMessage(MessageRecord{
			SID:       sent.SID,
			To:        req.To,
			Body:      req.Message,
			Timestamp: time.Now(),
			Direction: "outbound",
		})
		logger.Info("sent sms", "to", req.To, "sid", sent.SID)

		writeJSON(w, http.StatusOK, SendSMSResponse{
			Success:    true,
			MessageSID: sent.SID,
			Status:     sent.Status,
		})
	}
}
