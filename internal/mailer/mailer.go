package mailer

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"storefront-api/internal/config"
	"storefront-api/internal/models"
)

// ErrNotConfigured means the SMTP host or the business email is missing.
// Notification is optional; this is a normal condition, not a fault.
var ErrNotConfigured = errors.New("mail is not configured")

// Mailer composes and sends the order notification email. It holds only
// immutable configuration and is safe for concurrent use.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendOrderNotification emails the business about a newly stored order.
// One attempt, no retry: callers treat any error as a discarded notification.
func (m *Mailer) SendOrderNotification(order models.InkOrder, business models.Business) error {
	if m.cfg.Host == "" || business.Email == "" {
		return ErrNotConfigured
	}

	from := m.cfg.User
	if from == "" {
		from = business.Email
	}

	msg := buildMessage(from, business.Email, subject(order), body(order))
	return m.send(from, business.Email, msg)
}

func subject(order models.InkOrder) string {
	return fmt.Sprintf("New Ink Order: %s - %s L", order.Color, formatQuantity(order.QuantityLiters))
}

func body(order models.InkOrder) string {
	return fmt.Sprintf(
		"New Ink Order Received\n\n"+
			"Customer: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n\n"+
			"Color: %s\n"+
			"Quantity (L): %s\n"+
			"Delivery Address: %s\n\n"+
			"Message:\n%s\n",
		order.CustomerName,
		order.CustomerEmail,
		orDash(order.CustomerPhone),
		order.Color,
		formatQuantity(order.QuantityLiters),
		orDash(order.DeliveryAddress),
		orDash(order.Message),
	)
}

// orDash substitutes the literal placeholder for absent optional fields.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatQuantity(liters float64) string {
	return strconv.FormatFloat(liters, 'f', -1, 64)
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func (m *Mailer) send(from, to string, msg []byte) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dialing smtp server: %w", err)
	}
	defer client.Close()

	if m.cfg.TLS {
		// STARTTLS was asked for; sending in the clear instead would also
		// leak the credentials below. Better one discarded notification.
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return fmt.Errorf("smtp server %s does not support STARTTLS", m.cfg.Host)
		}
		tlsCfg := &tls.Config{ServerName: m.cfg.Host}
		if err := client.StartTLS(tlsCfg); err != nil {
			return fmt.Errorf("starting tls: %w", err)
		}
	}

	if m.cfg.User != "" && m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("opening message body: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("writing message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message body: %w", err)
	}

	return client.Quit()
}
