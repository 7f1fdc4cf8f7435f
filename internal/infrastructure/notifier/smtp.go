// Package notifier delivers workflow mail to captains and players.
package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pitchside/leagueops/internal/platform/logging"
)

// SMTPNotifier sends plain-text mail through a single relay. Auth is optional
// for relays inside the private network.
type SMTPNotifier struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	logger   *logging.Logger
}

func NewSMTPNotifier(host string, port int, username, password, from string, logger *logging.Logger) *SMTPNotifier {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPNotifier{
		addr:     fmt.Sprintf("%s:%d", host, port),
		from:     from,
		auth:     auth,
		sendMail: smtp.SendMail,
		logger:   logger,
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, toEmail, subject, body string) error {
	if strings.TrimSpace(toEmail) == "" {
		return errors.New("recipient email is empty")
	}

	msg := buildMessage(n.from, toEmail, subject, body)
	if err := n.sendMail(n.addr, n.auth, n.from, []string{toEmail}, msg); err != nil {
		return errors.Wrapf(err, "send mail via %s", n.addr)
	}

	n.logger.InfoContext(ctx, "mail sent",
		"to", toEmail,
		"subject", subject,
	)

	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	return []byte(b.String())
}
