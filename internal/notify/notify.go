package notify

import (
	"fmt"
	"net/url"
	"time"

	"github.com/guonaihong/gout"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/brightcoat/showcase/config"
	"github.com/brightcoat/showcase/internal/domain"
)

// Notifier forwards a copy of a recorded lead to an external channel.
// Forwarding is best-effort everywhere: an error never affects the lead.
type Notifier interface {
	Forward(lead domain.Lead) error
}

// NopNotifier is used when no channel is configured.
type NopNotifier struct{}

func (NopNotifier) Forward(domain.Lead) error { return nil }

// ChatLink builds a wa.me deep link carrying the enquiry text, the same
// redirect the storefront chat widget uses.
func ChatLink(phone string, lead domain.Lead) string {
	text := fmt.Sprintf("New enquiry from %s (%s, %s): %s",
		lead.Name, lead.Email, lead.Phone, lead.PropertyInterest)
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}

// WebhookNotifier posts the lead and a chat deep link to a configured URL.
type WebhookNotifier struct {
	URL   string
	Phone string
}

func (n *WebhookNotifier) Forward(lead domain.Lead) error {
	body := map[string]interface{}{
		"lead":      lead,
		"chat_link": ChatLink(n.Phone, lead),
	}
	var code int
	err := gout.POST(n.URL).
		SetJSON(body).
		SetTimeout(10 * time.Second).
		Code(&code).
		Do()
	if err != nil {
		return err
	}
	if code >= 300 {
		return fmt.Errorf("webhook forward status %d", code)
	}
	return nil
}

// MailNotifier sends the lead as a plain-text email over SMTP.
type MailNotifier struct {
	Smtp config.SmtpConfig
}

func (n *MailNotifier) Forward(lead domain.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.Smtp.From)
	m.SetHeader("To", n.Smtp.To)
	m.SetHeader("Subject", fmt.Sprintf("New enquiry: %s", lead.Name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nInterest: %s\nMessage: %s\nDate: %s\n",
		lead.Name, lead.Email, lead.Phone, lead.PropertyInterest,
		lead.Message, lead.Date.Format(time.RFC3339)))
	d := gomail.NewDialer(n.Smtp.Host, n.Smtp.Port, n.Smtp.Username, n.Smtp.Password)
	return d.DialAndSend(m)
}

// MultiNotifier fans out to every configured channel and reports the first
// error after trying all of them.
type MultiNotifier struct {
	Channels []Notifier
}

func (n *MultiNotifier) Forward(lead domain.Lead) error {
	var first error
	for _, c := range n.Channels {
		if err := c.Forward(lead); err != nil {
			zap.L().Warn("notification channel failed", zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// FromConfig assembles the notifier from the configured channels.
func FromConfig(cfg config.NotifyConfig) Notifier {
	var channels []Notifier
	if cfg.WebhookURL != "" {
		channels = append(channels, &WebhookNotifier{URL: cfg.WebhookURL, Phone: cfg.WhatsappPhone})
	}
	if cfg.Smtp.Host != "" && cfg.Smtp.To != "" {
		channels = append(channels, &MailNotifier{Smtp: cfg.Smtp})
	}
	switch len(channels) {
	case 0:
		return NopNotifier{}
	case 1:
		return channels[0]
	default:
		return &MultiNotifier{Channels: channels}
	}
}
