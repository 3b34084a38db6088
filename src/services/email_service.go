package services

import (
	"context"
	"fmt"
	"time"

	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/templates"
	"github.com/mailgun/mailgun-go/v4"
	"github.com/rs/zerolog/log"
)

const emailSendTimeout = 30 * time.Second

// EmailConfig holds Mailgun settings
type EmailConfig struct {
	Domain     string
	APIKey     string
	FromEmail  string
	FromName   string
	EU         bool
	AdminEmail string
}

// EmailService handles transactional email sending via Mailgun
type EmailService struct {
	mg         *mailgun.MailgunImpl
	fromEmail  string
	fromName   string
	adminEmail string
	config     *templates.EmailConfig
}

// NewEmailService creates a new email service with Mailgun configuration
func NewEmailService(cfg EmailConfig) *EmailService {
	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.EU {
		mg.SetAPIBase(mailgun.APIBaseEU)
	}

	config, err := templates.LoadEmailConfig()
	if err != nil {
		log.Warn().Err(err).Msg("Falling back to default email config")
		config = getDefaultEmailConfig()
	}

	return &EmailService{
		mg:         mg,
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
		adminEmail: cfg.AdminEmail,
		config:     config,
	}
}

// getDefaultEmailConfig returns default email configuration as fallback
func getDefaultEmailConfig() *templates.EmailConfig {
	cfg := &templates.EmailConfig{}
	cfg.Branding.Name = "NS SiteCraft Solutions"
	cfg.Branding.Website = "https://nssitecraft.com"
	cfg.Branding.ContactEmail = "info@nssitecraft.com"
	cfg.Design.PrimaryColor = "#06B6D4"
	cfg.Design.TextColor = "#0a0a0a"
	cfg.Design.MutedColor = "#666666"
	cfg.Design.LightBg = "#f5f5f5"
	cfg.Design.BorderColor = "#dddddd"
	cfg.Subjects.NewInquiry = "New Inquiry from %s"
	cfg.Subjects.InquiryConfirmation = "Thank you for contacting NS SiteCraft Solutions"
	cfg.NewInquiry.Heading = "New Inquiry Received"
	cfg.InquiryConfirmation.Heading = "Thank You for Reaching Out!"
	cfg.InquiryConfirmation.Intro = "We've received your inquiry and will get back to you soon."
	cfg.InquiryConfirmation.Signoff = "NS SiteCraft Solutions Team"
	return cfg
}

func (s *EmailService) colors() templates.Colors {
	d := s.config.Design
	return templates.Colors{
		PrimaryColor: d.PrimaryColor,
		TextColor:    d.TextColor,
		MutedColor:   d.MutedColor,
		LightBg:      d.LightBg,
		BorderColor:  d.BorderColor,
	}
}

// NotifyNewInquiry emails the staff inbox about a new submission.
// It is a no-op when no admin address is configured.
func (s *EmailService) NotifyNewInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	if s.adminEmail == "" {
		log.Warn().Msg("ADMIN_EMAIL not configured. Skipping inquiry notification.")
		return nil
	}

	data := templates.NewInquiryData{
		Name:       inquiry.Name,
		Email:      inquiry.Email,
		Phone:      inquiry.Phone,
		SourcePage: string(inquiry.SourcePage),
		Date:       inquiry.CreatedAt.UTC().Format("02 Jan 2006, 15:04 MST"),
		Message:    inquiry.Message,
		Heading:    s.config.NewInquiry.Heading,
		Footer:     s.config.NewInquiry.Footer,
		Colors:     s.colors(),
	}

	htmlBody, err := templates.RenderNewInquiryHTML(data)
	if err != nil {
		return err
	}
	textBody, err := templates.RenderNewInquiryText(data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf(s.config.Subjects.NewInquiry, inquiry.Name)
	if err := s.send(ctx, s.adminEmail, subject, textBody, htmlBody); err != nil {
		return fmt.Errorf("failed to send inquiry notification to %s: %w", s.adminEmail, err)
	}
	return nil
}

// SendInquiryConfirmation thanks the submitter for their inquiry
func (s *EmailService) SendInquiryConfirmation(ctx context.Context, inquiry *models.Inquiry) error {
	c := s.config
	data := templates.ConfirmationData{
		Name:         inquiry.Name,
		Message:      inquiry.Message,
		BrandName:    c.Branding.Name,
		ContactEmail: c.Branding.ContactEmail,
		Location:     c.Branding.Location,
		Heading:      c.InquiryConfirmation.Heading,
		Intro:        c.InquiryConfirmation.Intro,
		MessageTitle: c.InquiryConfirmation.MessageTitle,
		UrgentText:   c.InquiryConfirmation.UrgentText,
		Signoff:      c.InquiryConfirmation.Signoff,
		Colors:       s.colors(),
	}

	htmlBody, err := templates.RenderConfirmationHTML(data)
	if err != nil {
		return err
	}
	textBody, err := templates.RenderConfirmationText(data)
	if err != nil {
		return err
	}

	if err := s.send(ctx, inquiry.Email, c.Subjects.InquiryConfirmation, textBody, htmlBody); err != nil {
		return fmt.Errorf("failed to send inquiry confirmation to %s: %w", inquiry.Email, err)
	}
	return nil
}

func (s *EmailService) send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	message := s.mg.NewMessage(
		fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		subject,
		textBody,
		to,
	)
	message.SetHtml(htmlBody)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, emailSendTimeout)
	defer cancel()

	_, id, err := s.mg.Send(ctxWithTimeout, message)
	if err != nil {
		return err
	}
	log.Info().Str("message_id", id).Str("subject", subject).Msg("Email sent")
	return nil
}
