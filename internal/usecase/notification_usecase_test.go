package usecase

import (
	"context"
	"errors"
	"testing"

	"repair_desk/internal/domain/entities"
	mock_interfaces "repair_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0712 345 678", "+255712345678", true},
		{"712345678", "+255712345678", true},
		{"+255 712-345-678", "+255712345678", true},
		{"00255712345678", "+255712345678", true},
		{"+1 415 555 0100", "+14155550100", true},
		{"12345", "", false},
		{"", "", false},
		{"+1234567890123456", "", false},
		{"٠٧١٢٣٤٥٦٧٨", "", false},
		{"+255 ٧١٢ ٣٤٥ 678", "", false},
		{"０７１２３４５６７８", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizePhoneNumber(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("NormalizePhoneNumber(%q): expected (%q,%v), got (%q,%v)", tc.in, tc.want, tc.ok, got, ok)
		}
	}
}

func smsInput() SendSMSInput {
	return SendSMSInput{PhoneNumber: "0712345678", Message: " Your phone is ready ", DeviceID: "dev-1", CustomerID: "cust-1", Sender: customerCare}
}

func TestNotificationUseCase_SendSms_Validations(t *testing.T) {
	uc := NewNotificationUseCase(nil, nil, nil)
	ctx := context.Background()

	in := smsInput()
	in.PhoneNumber = "123"
	if _, err := uc.SendSms(ctx, in); !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
	}
	in = smsInput()
	in.Message = "  "
	if _, err := uc.SendSms(ctx, in); !errors.Is(err, ErrEmptySMSMessage) {
		t.Fatalf("expected ErrEmptySMSMessage, got %v", err)
	}
	in = smsInput()
	in.Sender = assignedTech
	if _, err := uc.SendSms(ctx, in); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNotificationUseCase_SendSms(t *testing.T) {
	ctx := context.Background()

	t.Run("sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockISMSSender(ctrl)
		logs := mock_interfaces.NewMockISMSLogRepository(ctrl)
		uc := NewNotificationUseCase(sender, logs, nil)

		sender.EXPECT().Send(gomock.Any(), "+255712345678", "Your phone is ready").Return("SM123", nil)
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.SMSLog) (entities.SMSLog, error) {
				if l.Status != entities.SMSStatusSent || l.ProviderID != "SM123" || l.SentAt.IsZero() {
					t.Fatalf("unexpected log: %+v", l)
				}
				if l.Direction != entities.SMSDirectionOutbound || l.SentBy != "cc-1" || l.DeviceID != "dev-1" {
					t.Fatalf("unexpected log fields: %+v", l)
				}
				return l, nil
			},
		)

		res, err := uc.SendSms(ctx, smsInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.ProviderID != "SM123" || res.LogID == "" || res.Error != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("provider failure is reported, not returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockISMSSender(ctrl)
		logs := mock_interfaces.NewMockISMSLogRepository(ctrl)
		uc := NewNotificationUseCase(sender, logs, nil)

		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("unreachable number"))
		logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.SMSLog) (entities.SMSLog, error) {
				if l.Status != entities.SMSStatusFailed || l.ErrorMessage != "unreachable number" || !l.SentAt.IsZero() {
					t.Fatalf("unexpected log: %+v", l)
				}
				return l, nil
			},
		)

		res, err := uc.SendSms(ctx, smsInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.Error != "unreachable number" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no provider configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		logs := mock_interfaces.NewMockISMSLogRepository(ctrl)
		uc := NewNotificationUseCase(nil, logs, nil)

		logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SMSLog{}, errors.New("log table down"))

		res, err := uc.SendSms(ctx, smsInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.Error != "sms provider not configured" || res.LogID != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
