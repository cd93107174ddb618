package server

import "net/http"

// MessagesResponse is the GET /messages payload.
type MessagesResponse struct {
	Messages []MessageRecord `json:"messages"`
	Count    int             `json:"count"`
}

// CallsResponse is the GET /calls payload.
type CallsResponse struct {
	Calls []CallRecord `json:"calls"`
	Count int          `json:"count"`
}

func handleMessages(history *History) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs := history.Messages()
		writeJSON(w, http.StatusOK, MessagesResponse{Messages: msgs, Count: len(msgs)})
	}
}

func handleCalls(history *History) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calls := history.Calls()
		writeJSON(w, http.StatusOK, CallsResponse{Calls: calls, Count: len(calls)})
	}
}
