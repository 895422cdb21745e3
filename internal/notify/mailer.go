package notify

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/f1rstwash/booking-api/internal/config"
	"github.com/f1rstwash/booking-api/internal/logger"
	"github.com/f1rstwash/booking-api/internal/validators"
)

// Mailer delivers booking notifications to the business inbox over SMTP.
// With SMTP unconfigured it degrades to a logged no-op so bookings keep
// working in development.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(ev Event) error {
	if m.cfg.SMTPHost == "" || m.cfg.SMTPUser == "" || m.cfg.SMTPPass == "" {
		logger.L().Warn("SMTP not configured, booking notification skipped",
			zap.String("customer", ev.Name),
		)
		return nil
	}

	if ev.Email != "" && !validators.IsEmailDomainValid(ev.Email) {
		logger.L().Warn("customer email domain does not resolve",
			zap.String("email", ev.Email),
		)
	}

	from := m.cfg.SMTPFrom
	if from == "" {
		from = m.cfg.SMTPUser
	}

	body := strings.Join([]string{
		"New Booking:",
		fmt.Sprintf("Name: %s", ev.Name),
		fmt.Sprintf("Email: %s", ev.Email),
		fmt.Sprintf("Date: %s", ev.Start.Format("2006-01-02")),
		fmt.Sprintf("Time: %s", ev.Start.Format("15:04")),
	}, "\n")

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", m.cfg.NotifyEmail)
	msg.SetHeader("Subject", "New Booking – F1RST-WASH")
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	dialer.SSL = m.cfg.SMTPPort == 465

	return dialer.DialAndSend(msg)
}

var _ Sender = (*Mailer)(nil)
