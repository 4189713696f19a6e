package services

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// smsBodyLimit keeps notifications within a few SMS segments.
const smsBodyLimit = 320

// messageCreator is the part of the Twilio REST client used here.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSender texts the site owner through Twilio.
type SMSSender struct {
	api  messageCreator
	from string
	to   string
}

func NewSMSSender(settings config.SMSSettings) (*SMSSender, error) {
	if settings.AccountSID == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_ACCOUNT_SID")
	}
	if settings.AuthToken == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_AUTH_TOKEN")
	}
	if settings.From == "" {
		return nil, errs.NewEnvironmentVariableError("TWILIO_FROM_NUMBER")
	}
	if settings.To == "" {
		return nil, errs.NewEnvironmentVariableError("CONTACT_NOTIFY_PHONE")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: settings.AccountSID,
		Password: settings.AuthToken,
	})
	return &SMSSender{api: client.Api, from: settings.From, to: settings.To}, nil
}

func (s *SMSSender) Name() string {
	return "sms"
}

// NotifyContact sends a short summary of the message.
// The Twilio client has no context support, so ctx is only checked up front.
func (s *SMSSender) NotifyContact(ctx context.Context, message models.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.to)
	params.SetFrom(s.from)
	params.SetBody(smsBody(message))

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return errs.NewServiceUnreachableError("twilio", err)
	}

	event := log.Info()
	if resp != nil && resp.Sid != nil {
		event = event.Str("messageSid", *resp.Sid)
	}
	event.Msg("Successfully sent SMS via Twilio")
	return nil
}

func smsBody(message models.ContactMessage) string {
	body := fmt.Sprintf("New contact from %s <%s>: %s - %s", message.Name, message.Email, message.Subject, message.Message)
	runes := []rune(body)
	if len(runes) > smsBodyLimit {
		return string(runes[:smsBodyLimit-3]) + "..."
	}
	return body
}
