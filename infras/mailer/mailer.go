package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"campnest/config"
	"campnest/infras/otel"
	"campnest/shared/constant"
)

//go:embed templates/*.html
var templateFS embed.FS

type BookingEmailData struct {
	RecipientName string
	RecipientAddr string
	CampsiteName  string
	CheckIn       string
	CheckOut      string
	TotalPrice    string
	BookingID     string
}

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, data BookingEmailData) error
	SendBookingReminder(ctx context.Context, data BookingEmailData) error
	SendReviewRequest(ctx context.Context, data BookingEmailData) error
}

type mailerImpl struct {
	cfg       *config.Config
	otel      otel.Otel
	templates *template.Template
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse mail templates")
	}

	return &mailerImpl{
		cfg:       cfg,
		otel:      otel,
		templates: templates,
	}
}

func (m *mailerImpl) SendBookingConfirmation(ctx context.Context, data BookingEmailData) error {
	return m.send(ctx, "booking_confirmation.html", "Your CampNest booking is confirmed", data)
}

func (m *mailerImpl) SendBookingReminder(ctx context.Context, data BookingEmailData) error {
	return m.send(ctx, "booking_reminder.html", "Your stay is coming up", data)
}

func (m *mailerImpl) SendReviewRequest(ctx context.Context, data BookingEmailData) error {
	return m.send(ctx, "review_request.html", "How was your stay?", data)
}

func (m *mailerImpl) send(ctx context.Context, templateName, subject string, data BookingEmailData) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.send")
	defer scope.End()
	defer scope.TraceIfError(err)

	var body bytes.Buffer
	if err = m.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		log.Error().Err(err).Str("template", templateName).Msg("failed to render mail template")

		return fmt.Errorf("failed to render mail template: %w", err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.cfg.Mail.FromName, m.cfg.Mail.From)
	fmt.Fprintf(&msg, "To: %s\r\n", data.RecipientAddr)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%s", m.cfg.Mail.Host, m.cfg.Mail.Port)
	auth := smtp.PlainAuth("", m.cfg.Mail.Username, m.cfg.Mail.Password, m.cfg.Mail.Host)

	if err = smtp.SendMail(addr, auth, m.cfg.Mail.From, []string{data.RecipientAddr}, []byte(msg.String())); err != nil {
		log.Error().Err(err).Str("recipient", data.RecipientAddr).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("recipient", data.RecipientAddr).Str("template", templateName).Msg("mail sent")

	return nil
}
