package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	textTemplate "text/template"

	"gopkg.in/yaml.v3"
)

//go:embed emails/*
var emailTemplates embed.FS

// EmailConfig holds email configuration from config.yaml
type EmailConfig struct {
	Branding struct {
		Name         string `yaml:"name"`
		Tagline      string `yaml:"tagline"`
		Website      string `yaml:"website"`
		ContactEmail string `yaml:"contact_email"`
		Location     string `yaml:"location"`
	} `yaml:"branding"`

	Design struct {
		PrimaryColor string `yaml:"primary_color"`
		TextColor    string `yaml:"text_color"`
		MutedColor   string `yaml:"muted_color"`
		LightBg      string `yaml:"light_bg"`
		BorderColor  string `yaml:"border_color"`
	} `yaml:"design"`

	Subjects struct {
		NewInquiry          string `yaml:"new_inquiry"`
		InquiryConfirmation string `yaml:"inquiry_confirmation"`
	} `yaml:"subjects"`

	NewInquiry struct {
		Heading string `yaml:"heading"`
		Footer  string `yaml:"footer"`
	} `yaml:"new_inquiry"`

	InquiryConfirmation struct {
		Heading      string `yaml:"heading"`
		Intro        string `yaml:"intro"`
		MessageTitle string `yaml:"message_title"`
		UrgentText   string `yaml:"urgent_text"`
		Signoff      string `yaml:"signoff"`
	} `yaml:"inquiry_confirmation"`
}

// LoadEmailConfig loads email configuration from embedded config.yaml
func LoadEmailConfig() (*EmailConfig, error) {
	data, err := emailTemplates.ReadFile("emails/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read email config: %w", err)
	}

	var config EmailConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse email config: %w", err)
	}

	return &config, nil
}

// Colors are copied from the design section into every template
type Colors struct {
	PrimaryColor string
	TextColor    string
	MutedColor   string
	LightBg      string
	BorderColor  string
}

// NewInquiryData holds data for the staff notification email
type NewInquiryData struct {
	Name       string
	Email      string
	Phone      string
	SourcePage string
	Date       string
	Message    string

	Heading string
	Footer  string

	Colors
}

// ConfirmationData holds data for the submitter confirmation email
type ConfirmationData struct {
	Name    string
	Message string

	BrandName    string
	ContactEmail string
	Location     string
	Heading      string
	Intro        string
	MessageTitle string
	UrgentText   string
	Signoff      string

	Colors
}

// RenderNewInquiryHTML renders the staff notification HTML body
func RenderNewInquiryHTML(data NewInquiryData) (string, error) {
	return renderHTML("new-inquiry", data)
}

// RenderNewInquiryText renders the staff notification plain text body
func RenderNewInquiryText(data NewInquiryData) (string, error) {
	return renderText("new-inquiry", data)
}

// RenderConfirmationHTML renders the submitter confirmation HTML body
func RenderConfirmationHTML(data ConfirmationData) (string, error) {
	return renderHTML("inquiry-confirmation", data)
}

// RenderConfirmationText renders the submitter confirmation plain text body
func RenderConfirmationText(data ConfirmationData) (string, error) {
	return renderText("inquiry-confirmation", data)
}

func renderHTML(name string, data any) (string, error) {
	tmplData, err := emailTemplates.ReadFile("emails/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("failed to read %s.html: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplData))
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}

	return buf.String(), nil
}

func renderText(name string, data any) (string, error) {
	tmplData, err := emailTemplates.ReadFile("emails/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("failed to read %s.txt: %w", name, err)
	}

	tmpl, err := textTemplate.New(name + "-text").Parse(string(tmplData))
	if err != nil {
		return "", fmt.Errorf("failed to parse %s text template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s text template: %w", name, err)
	}

	return buf.String(), nil
}
