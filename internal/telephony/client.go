// Package telephony wraps the Twilio REST API and request signing. The rest
// of the service only sees plain (sender, text) pairs; everything
// provider-shaped lives here.
package telephony

import (
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrNotConfigured is returned when Twilio credentials were not provided.
// The service still runs; only outbound sends and account listings degrade.
var ErrNotConfigured = errors.New("twilio client not configured")

type Client struct {
	rest       *twilio.RestClient
	accountSID string
	from       string
}

// NewClient builds a REST client when both credentials are present and an
// inert one otherwise. Callers check Configured before sending.
func NewClient(accountSID, authToken, from string) *Client {
	c := &Client{accountSID: accountSID, from: from}
	if accountSID != "" && authToken != "" {
		c.rest = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return c
}

func (c *Client) Configured() bool { return c != nil && c.rest != nil }

func (c *Client) AccountSID() string { return c.accountSID }

// SentMessage reports the provider's handle for an accepted outbound message.
type SentMessage struct {
	SID    string
	Status string
}

func (c *Client) SendSMS(to, body string) (SentMessage, error) {
	if !c.Configured() {
		return SentMessage{}, ErrNotConfigured
	}

	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	msg, err := c.rest.Api.CreateMessage(params)
	if err != nil {
		return SentMessage{}, fmt.Errorf("creating message: %w", err)
	}

	var sent SentMessage
	if msg.Sid != nil {
		sent.SID = *msg.Sid
	}
	if msg.Status != nil {
		sent.Status = *msg.Status
	}
	return sent, nil
}

// AccountMessage is one entry from the provider's message listing API.
type AccountMessage struct {
	SID         string `json:"sid"`
	From        string `json:"from"`
	To          string `json:"to"`
	Body        string `json:"body"`
	Status      string `json:"status"`
	Direction   string `json:"direction"`
	DateCreated string `json:"date_created"`
}

// AccountCall is one entry from the provider's call listing API.
type AccountCall struct {
	SID         string `json:"sid"`
	From        string `json:"from"`
	To          string `json:"to"`
	Status      string `json:"status"`
	Direction   string `json:"direction"`
	Duration    string `json:"duration"`
	DateCreated string `json:"date_created"`
}

func (c *Client) RecentMessages(limit int) ([]AccountMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := &api.ListMessageParams{}
	params.SetLimit(limit)

	msgs, err := c.rest.Api.ListMessage(params)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	out := make([]AccountMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, AccountMessage{
			SID:         deref(m.Sid),
			From:        deref(m.From),
			To:          deref(m.To),
			Body:        deref(m.Body),
			Status:      deref(m.Status),
			Direction:   deref(m.Direction),
			DateCreated: deref(m.DateCreated),
		})
	}
	return out, nil
}

func (c *Client) RecentCalls(limit int) ([]AccountCall, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := &api.ListCallParams{}
	params.SetLimit(limit)

	calls, err := c.rest.Api.ListCall(params)
	if err != nil {
		return nil, fmt.Errorf("listing calls: %w", err)
	}

	out := make([]AccountCall, 0, len(calls))
	for _, call := range calls {
		out = append(out, AccountCall{
			SID:         deref(call.Sid),
			From:        deref(call.From),
			To:          deref(call.To),
			Status:      deref(call.Status),
			Direction:   deref(call.Direction),
			Duration:    deref(call.Duration),
			DateCreated: deref(call.DateCreated),
		})
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
