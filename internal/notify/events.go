package notify

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/c4flow/studio-service/internal/models"
)

const (
	EventContactSubmitted = "ContactSubmitted"
	TopicContactSubmitted = "contact.submitted"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// ContactEmail is the message the relay delivers to the studio inbox.
type ContactEmail struct {
	SubmissionID string    `json:"submission_id"`
	From         string    `json:"from"`
	To           []string  `json:"to"`
	ReplyTo      string    `json:"reply_to"`
	Subject      string    `json:"subject"`
	Text         string    `json:"text"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type EmailSettings struct {
	SiteName   string
	From       string
	Recipients []string
	// ReplyTo overrides the visitor's address when set.
	ReplyTo string
}

func BuildContactEmail(sub models.ContactSubmission, s EmailSettings) ContactEmail {
	replyTo := s.ReplyTo
	if replyTo == "" {
		replyTo = sub.Email
	}
	text := strings.Join([]string{
		"Name: " + sub.Name,
		"Email: " + sub.Email,
		"",
		"Message:",
		sub.Message,
		"",
		"---",
		"Sent from the " + s.SiteName + " contact form.",
	}, "\n")

	return ContactEmail{
		SubmissionID: sub.ID,
		From:         s.From,
		To:           s.Recipients,
		ReplyTo:      replyTo,
		Subject:      "New contact from " + sub.Name + " | " + s.SiteName,
		Text:         text,
		SubmittedAt:  sub.SubmittedAt,
	}
}
