package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTemplateRendersAllFields(t *testing.T) {
	var body bytes.Buffer
	err := statusTemplate.Execute(&body, EventStatusData{
		CustomerName: "Dara",
		EventName:    "Gala Night",
		Status:       "accepted",
		StartDate:    "2026-05-01",
		VenueName:    "Grand Hall",
	})
	require.NoError(t, err)

	html := body.String()
	assert.Contains(t, html, "Dara")
	assert.Contains(t, html, "Gala Night")
	assert.Contains(t, html, "accepted")
	assert.Contains(t, html, "Grand Hall")
}

func TestStatusTemplateOmitsEmptyVenue(t *testing.T) {
	var body bytes.Buffer
	err := statusTemplate.Execute(&body, EventStatusData{
		CustomerName: "Dara",
		EventName:    "Gala Night",
		Status:       "denied",
		StartDate:    "2026-05-01",
	})
	require.NoError(t, err)
	assert.NotContains(t, body.String(), " at ")
}

func TestSendEventStatusEmailNoSmtpConfiguredIsNoop(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	// must not panic or block the caller
	SendEventStatusEmail("dara@example.com", EventStatusData{EventName: "Gala"})
}
