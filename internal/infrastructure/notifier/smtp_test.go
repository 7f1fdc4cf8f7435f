package notifier

import (
	"context"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pitchside/leagueops/internal/platform/logging"
)

func TestSMTPNotifierBuildsRFCMessage(t *testing.T) {
	n := NewSMTPNotifier("mail.example.com", 587, "relay", "secret", "league@example.com", logging.NewNop())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	n.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := n.Send(context.Background(), "dana.reyes@example.com", "Team approved: Falcons (Summer 2026)", "Welcome aboard.")
	require.NoError(t, err)

	require.Equal(t, "mail.example.com:587", gotAddr)
	require.Equal(t, "league@example.com", gotFrom)
	require.Equal(t, []string{"dana.reyes@example.com"}, gotTo)

	msg := string(gotMsg)
	require.Contains(t, msg, "From: league@example.com\r\n")
	require.Contains(t, msg, "To: dana.reyes@example.com\r\n")
	require.Contains(t, msg, "Subject: Team approved: Falcons (Summer 2026)\r\n")
	require.Contains(t, msg, "\r\n\r\nWelcome aboard.")
}

func TestSMTPNotifierRejectsEmptyRecipient(t *testing.T) {
	n := NewSMTPNotifier("mail.example.com", 587, "", "", "league@example.com", logging.NewNop())
	n.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail must not be called for an empty recipient")
		return nil
	}

	err := n.Send(context.Background(), "  ", "subject", "body")
	require.Error(t, err)
}
