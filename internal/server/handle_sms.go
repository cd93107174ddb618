package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/twilio/twilio-go/twiml"

	"github.com/pdxhunt/scavenger/internal/hunt"
)

const apologyMessage = "Sorry, I encountered an error processing your message."

// smsReply wraps text in messaging TwiML. Marshaling can't realistically
// fail for plain text, but if it does the caller still gets valid markup.
func smsReply(w http.ResponseWriter, text string) {
	markup, err := twiml.Messages([]twiml.Element{&twiml.MessagingMessage{Body: text}})
	if err != nil {
		markup = "<?xml version=\"1.0\" encoding=\"UTF-8\"?><Response><Message>" + apologyMessage + "</Message></Response>"
	}
	writeTwiML(w, markup)
}

func handleSMS(logger *slog.Logger, engine *hunt.Engine, history *History) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			logger.Error("parsing sms webhook form", "error", err)
			smsReply(w, apologyMessage)
			return
		}

		from := r.PostFormValue("From")
		to := r.PostFormValue("To")
		body := r.PostFormValue("Body")
		sid := r.PostFormValue("MessageSid")

		if from == "" {
			logger.Error("sms webhook missing From")
			smsReply(w, apologyMessage)
			return
		}

		logger.Info("received sms", "from", from, "body", body)
		history.AddMessage(MessageRecord{
			SID:       sid,
			From:      from,
			To:        to,
			Body:      body,
			Timestamp: time.Now(),
			Direction: "inbound",
		})

		reply := dispatch(r.Context(), logger, engine, from, body)
		logger.Info("responding to sms", "to", from, "body", reply)
		smsReply(w, reply)
	}
}

// dispatch shields the webhook from engine panics; the provider contract
// requires reply markup no matter what went wrong.
func dispatch(ctx context.Context, logger *slog.Logger, engine *hunt.Engine, from, body string) (reply string) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("panic handling sms", "from", from, "panic", rec)
			reply = apologyMessage
		}
	}()
	return engine.Dispatch(ctx, from, body)
}
