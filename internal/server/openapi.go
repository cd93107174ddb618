package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/pdxhunt/scavenger/internal/hunt"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Portland Scavenger Hunt API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Webhook-driven SMS scavenger hunt across Portland landmarks.")

	// GET /
	getHome, _ := r.NewOperationContext(http.MethodGet, "/")
	getHome.SetSummary("Game description")
	getHome.SetDescription("Static description of the game: clue count, scoring table and commands.")
	getHome.AddRespStructure(HomeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHome)

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Liveness plus which optional integrations are configured.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHealthz)

	// POST /webhook/sms
	postSMS, _ := r.NewOperationContext(http.MethodPost, "/webhook/sms")
	postSMS.SetSummary("Inbound SMS webhook")
	postSMS.SetDescription("Receives form-encoded messages from the telephony provider and replies with messaging TwiML. Always returns markup, even on internal errors.")
	postSMS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("application/xml"))
	_ = r.AddOperation(postSMS)

	// POST /webhook/voice
	postVoice, _ := r.NewOperationContext(http.MethodPost, "/webhook/voice")
	postVoice.SetSummary("Inbound voice webhook")
	postVoice.SetDescription("Speaks a short description of the game and ends the call.")
	postVoice.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("application/xml"))
	_ = r.AddOperation(postVoice)

	// GET /game-stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/game-stats")
	getStats.SetSummary("Aggregate game stats")
	getStats.SetDescription("Point-in-time counts of known, active and completed sessions plus the average completed score.")
	getStats.AddRespStructure(hunt.StatsReport{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStats)

	// GET /leaderboard
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/leaderboard")
	getBoard.SetSummary("Leaderboard")
	getBoard.SetDescription("Top ten completed sessions by score. Player identifiers are truncated to their last four digits.")
	getBoard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoard)

	// GET /messages
	getMessages, _ := r.NewOperationContext(http.MethodGet, "/messages")
	getMessages.SetSummary("Message log")
	getMessages.SetDescription("In-memory inbound/outbound message log. Cleared on restart.")
	getMessages.AddRespStructure(MessagesResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getMessages)

	// GET /calls
	getCalls, _ := r.NewOperationContext(http.MethodGet, "/calls")
	getCalls.SetSummary("Call log")
	getCalls.SetDescription("In-memory inbound call log. Cleared on restart.")
	getCalls.AddRespStructure(CallsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCalls)

	// POST /send-sms
	postSend, _ := r.NewOperationContext(http.MethodPost, "/send-sms")
	postSend.SetSummary("Send an SMS")
	postSend.SetDescription("Admin endpoint that sends an outbound message through the telephony provider.")
	postSend.AddReqStructure(SendSMSRequest{})
	postSend.AddRespStructure(SendSMSResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSend.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSend.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postSend)

	// GET /twilio-data
	getTwilioData, _ := r.NewOperationContext(http.MethodGet, "/twilio-data")
	getTwilioData.SetSummary("Provider account data")
	getTwilioData.SetDescription("Proxies the provider's recent message and call listings.")
	getTwilioData.AddRespStructure(TwilioDataResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getTwilioData.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(getTwilioData)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
