package server

import (
	"sync"
	"time"
)

// MessageRecord is one inbound or outbound SMS as exposed by GET /messages.
type MessageRecord struct {
	SID       string    `json:"sid"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	Direction string    `json:"direction"`
}

// CallRecord is one inbound call as exposed by GET /calls.
type CallRecord struct {
	SID       string    `json:"sid"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Direction string    `json:"direction"`
}

// History holds the in-memory message and call logs. Volatile by design;
// a restart clears it.
type History struct {
	mu       sync.Mutex
	messages []MessageRecord
	calls    []CallRecord
}

func NewHistory() *History {
	return &History{}
}

func (h *History) AddMessage(m MessageRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, m)
}

func (h *History) AddCall(c CallRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, c)
}

func (h *History) Messages() []MessageRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]MessageRecord(nil), h.messages...)
}

func (h *History) Calls() []CallRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]CallRecord(nil), h.calls...)
}
