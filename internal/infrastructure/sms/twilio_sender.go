package sms

import (
	"context"
	"errors"
	"fmt"

	"repair_desk/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	v2010 "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrTwilioNotConfigured = errors.New("twilio credentials not configured")

// MessageAPI is the Twilio call the sender makes.
type MessageAPI interface {
	CreateMessage(params *v2010.CreateMessageParams) (*v2010.ApiV2010Message, error)
}

type TwilioSender struct {
	api  MessageAPI
	from string
}

var _ interfaces.ISMSSender = (*TwilioSender)(nil)

func NewTwilioSender(accountSID, authToken, fromNumber string) (*TwilioSender, error) {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil, ErrTwilioNotConfigured
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{api: client.Api, from: fromNumber}, nil
}

func NewTwilioSenderWithAPI(api MessageAPI, fromNumber string) *TwilioSender {
	return &TwilioSender{api: api, from: fromNumber}
}

// Send ignores ctx; the Twilio client call is not cancellable.
func (s *TwilioSender) Send(_ context.Context, to, body string) (string, error) {
	params := &v2010.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("failed to send SMS via Twilio: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
