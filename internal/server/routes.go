package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, app *App) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Portland Scavenger Hunt API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(app))

	r.Get("/", handleHome())
	r.Get("/game-stats", handleGameStats(app.Store))
	r.Get("/leaderboard", handleLeaderboard(app.Store))
	r.Get("/messages", handleMessages(app.History))
	r.Get("/calls", handleCalls(app.History))
	r.Post("/send-sms", handleSendSMS(app.Logger, app.Telephony, app.History))
	r.Get("/twilio-data", handleTwilioData(app.Logger, app.Telephony))

	// Webhooks always answer with TwiML, even on failure; the provider
	// treats anything else as an error page.
	r.Route("/webhook", func(r chi.Router) {
		if app.ValidateSignatures {
			r.Use(signatureMiddleware(app.Logger, app.Validator))
		}
		r.Post("/sms", handleSMS(app.Logger, app.Engine, app.History))
		r.Post("/voice", handleVoice(app.Logger, app.History))
		r.Post("/voice/gather", handleVoiceGather(app.Logger))
	})
}
