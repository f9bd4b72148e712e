package sendgrid

//go:generate go run go.uber.org/mock/mockgen -source=./sendgrid.go -destination=./mocks/sendgrid_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"wbrent/config"
	"wbrent/infras/otel"
	"wbrent/shared/constant"

	"github.com/rs/zerolog/log"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

type Message struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

type Mailer interface {
	Send(ctx context.Context, message Message) error
}

type sendGridImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	return &sendGridImpl{
		cfg:  cfg,
		otel: otel,
	}
}

// Send delivers message through the SendGrid v3 API. With mail disabled the
// message is only logged.
func (s *sendGridImpl) Send(ctx context.Context, message Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute("mail.subject", message.Subject)

	if !s.cfg.Mail.Enable {
		log.Info().Str("to", message.To).Str("subject", message.Subject).Msg("mail disabled, skipping send")

		return nil
	}

	from := mail.NewEmail(s.cfg.Mail.FromName, s.cfg.Mail.FromEmail)
	recipient := mail.NewEmail(message.ToName, message.To)
	email := mail.NewSingleEmail(from, message.Subject, recipient, message.PlainText, message.HTML)

	request := sg.GetRequest(s.cfg.Mail.SendGridAPIKey, sendEndpoint, s.cfg.Mail.SendGridHost)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(email)

	response, err := sg.MakeRequestWithContext(ctx, request)
	if err != nil {
		log.Error().Err(err).Str("to", message.To).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", response.StatusCode).Str("body", response.Body).Msg("sendgrid rejected email")

		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
