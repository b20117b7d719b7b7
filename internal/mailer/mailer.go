// Package mailer sends the transactional notification emails: one copy of
// every submission to the internal distribution list, plus a confirmation to
// the submitter for the lead forms (bookings collect no email address).
// Sends are fire-and-forget from the caller's perspective: no retries, no
// queue.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/jayxvj/k2k-world/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mailer renders the embedded HTML templates and delivers them over SMTP.
// The zero value is not usable; construct with New.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	notifyList []string
	configured bool
	tmpl       *template.Template
}

// New builds a Mailer. When user or password is empty the mailer is marked
// unconfigured and every send returns domain.ErrMailNotConfigured without
// dialing — missing credentials must never crash a submission.
func New(host string, port int, user, password string, notifyList []string) (*Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("mailer.New: parse templates: %w", err)
	}

	m := &Mailer{
		from:       user,
		notifyList: notifyList,
		configured: user != "" && password != "",
		tmpl:       tmpl,
	}
	if m.configured {
		m.dialer = gomail.NewDialer(host, port, user, password)
	}
	return m, nil
}

// SendCustomRequest notifies the internal list about a new custom trip
// request and confirms receipt to the submitter.
func (m *Mailer) SendCustomRequest(ctx context.Context, cr domain.CustomRequest) error {
	subject := "New Custom Trip Request - " + cr.Destination
	if err := m.send(ctx, m.notifyList, subject, "custom_request_internal.html", cr); err != nil {
		return fmt.Errorf("mailer.SendCustomRequest: internal: %w", err)
	}
	if err := m.send(ctx, []string{cr.Email}, "Your Custom Trip Request - K to K World", "custom_request_confirm.html", cr); err != nil {
		return fmt.Errorf("mailer.SendCustomRequest: confirmation: %w", err)
	}
	return nil
}

// SendContact notifies the internal list about a contact message and
// confirms receipt to the sender.
func (m *Mailer) SendContact(ctx context.Context, c domain.Contact) error {
	subject := "New Contact Message - " + c.Subject
	if err := m.send(ctx, m.notifyList, subject, "contact_internal.html", c); err != nil {
		return fmt.Errorf("mailer.SendContact: internal: %w", err)
	}
	if err := m.send(ctx, []string{c.Email}, "We Received Your Message - K to K World", "contact_confirm.html", c); err != nil {
		return fmt.Errorf("mailer.SendContact: confirmation: %w", err)
	}
	return nil
}

// SendBooking notifies the internal list about a booking request. Bookings
// carry no submitter email, so the internal copy is the only send, and with
// no persistence path it is the whole side effect.
func (m *Mailer) SendBooking(ctx context.Context, b domain.Booking) error {
	subject := "New Booking Request - " + b.Destination
	if err := m.send(ctx, m.notifyList, subject, "booking_internal.html", b); err != nil {
		return fmt.Errorf("mailer.SendBooking: internal: %w", err)
	}
	return nil
}

// send renders one template and delivers it. The context is accepted for
// interface symmetry; gomail's dial-and-send has its own socket deadline and
// does not take a context.
func (m *Mailer) send(_ context.Context, to []string, subject, templateName string, data any) error {
	if !m.configured {
		return domain.ErrMailNotConfigured
	}
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}

	var body bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("render %s: %w", templateName, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return classify(err)
	}
	return nil
}

// classify folds SMTP authentication rejections into the configuration
// failure sentinel so callers can tell "fix the credentials" apart from a
// transient transport problem. Matching on message text is crude but it is
// all the SMTP client gives us.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "535") ||
		strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "username and password not accepted") {
		return fmt.Errorf("%w: %v", domain.ErrMailNotConfigured, err)
	}
	return err
}
