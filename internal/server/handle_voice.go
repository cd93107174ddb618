package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/twilio/twilio-go/twiml"
)

const voiceApology = "Sorry, I encountered an error. Please try again later."

func voiceReply(w http.ResponseWriter, verbs []twiml.Element) {
	markup, err := twiml.Voice(verbs)
	if err != nil {
		markup = "<?xml version=\"1.0\" encoding=\"UTF-8\"?><Response><Say>" + voiceApology + "</Say><Hangup/></Response>"
	}
	writeTwiML(w, markup)
}

func handleVoice(logger *slog.Logger, history *History) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			logger.Error("parsing voice webhook form", "error", err)
			voiceReply(w, []twiml.Element{
				&twiml.VoiceSay{Message: voiceApology, Voice: "alice"},
				&twiml.VoiceHangup{},
			})
			return
		}

		from := r.PostFormValue("From")
		logger.Info("received call", "from", from, "status", r.PostFormValue("CallStatus"))
		history.AddCall(CallRecord{
			SID:       r.PostFormValue("CallSid"),
			From:      from,
			To:        r.PostFormValue("To"),
			Status:    r.PostFormValue("CallStatus"),
			Timestamp: time.Now(),
			Direction: "inbound",
		})

		greeting := fmt.Sprintf("Hello! Thank you for calling the Portland Scavenger Hunt. This game is played over text message. Text READY to %s to start exploring Portland.", r.PostFormValue("To"))
		voiceReply(w, []twiml.Element{
			&twiml.VoiceSay{Message: greeting, Voice: "alice"},
			&twiml.VoiceGather{
				Input:   "speech dtmf",
				Timeout: "10",
				Action:  "/webhook/voice/gather",
				Method:  "POST",
				InnerElements: []twiml.Element{
					&twiml.VoiceSay{Message: "Press any key or say something after the beep.", Voice: "alice"},
				},
			},
			&twiml.VoiceSay{Message: "Thank you for calling. Goodbye!", Voice: "alice"},
			&twiml.VoiceHangup{},
		})
	}
}

func handleVoiceGather(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			logger.Error("parsing voice gather form", "error", err)
			voiceReply(w, []twiml.Element{
				&twiml.VoiceSay{Message: "Thank you for calling. Goodbye!", Voice: "alice"},
				&twiml.VoiceHangup{},
			})
			return
		}

		speech := r.PostFormValue("SpeechResult")
		digits := r.PostFormValue("Digits")
		logger.Info("gathered voice input", "from", r.PostFormValue("From"), "speech", speech, "digits", digits)

		var reply string
		switch {
		case speech != "":
			reply = fmt.Sprintf("You said: %s. Thank you for your input!", speech)
		case digits != "":
			reply = fmt.Sprintf("You pressed: %s. Thank you!", digits)
		default:
			reply = "I didn't catch that. Thank you for calling!"
		}

		voiceReply(w, []twiml.Element{
			&twiml.VoiceSay{Message: reply, Voice: "alice"},
			&twiml.VoiceHangup{},
		})
	}
}
