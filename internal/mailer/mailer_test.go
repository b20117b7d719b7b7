package mailer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/mailer"
)

// newUnconfigured builds a Mailer with no credentials. New must still
// succeed — the templates parse regardless — and every send must return
// domain.ErrMailNotConfigured without touching the network.
func newUnconfigured(t *testing.T) *mailer.Mailer {
	t.Helper()
	m, err := mailer.New("smtp.example.com", 587, "", "", []string{"sales@ktokworld.com"})
	require.NoError(t, err)
	return m
}

func TestNew_ParsesEmbeddedTemplates(t *testing.T) {
	_, err := mailer.New("smtp.example.com", 587, "noreply@ktokworld.com", "pw", nil)
	require.NoError(t, err)
}

func TestSendCustomRequest_NotConfigured(t *testing.T) {
	m := newUnconfigured(t)

	err := m.SendCustomRequest(context.Background(), domain.CustomRequest{
		Name:        "Priya Sharma",
		Email:       "priya@example.com",
		Destination: "Kashmir",
	})

	assert.ErrorIs(t, err, domain.ErrMailNotConfigured)
}

func TestSendContact_NotConfigured(t *testing.T) {
	m := newUnconfigured(t)

	err := m.SendContact(context.Background(), domain.Contact{
		Name:    "Rahul Verma",
		Email:   "rahul@example.com",
		Subject: "Honeymoon packages",
	})

	assert.ErrorIs(t, err, domain.ErrMailNotConfigured)
}

func TestSendBooking_NotConfigured(t *testing.T) {
	m := newUnconfigured(t)

	err := m.SendBooking(context.Background(), domain.Booking{
		Name:        "Anil Kapoor",
		Phone:       "+91 91234 56789",
		Destination: "Goa Beach Escape",
	})

	assert.ErrorIs(t, err, domain.ErrMailNotConfigured)
}
