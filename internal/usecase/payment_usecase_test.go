package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"repair_desk/internal/domain/entities"
	mock_interfaces "repair_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var frontDesk = entities.User{ID: "cc-1", Role: entities.RoleCustomerCare}

func cashInput() RecordPaymentInput {
	return RecordPaymentInput{DeviceID: "dev-1", Amount: 1500, Method: "cash", Actor: frontDesk}
}

func TestPaymentUseCase_RecordPayment_Validations(t *testing.T) {
	cases := []struct {
		name string
		edit func(*RecordPaymentInput)
		want error
	}{
		{"empty device id", func(in *RecordPaymentInput) { in.DeviceID = " " }, ErrInvalidDeviceID},
		{"zero amount", func(in *RecordPaymentInput) { in.Amount = 0 }, ErrInvalidPaymentAmount},
		{"negative amount", func(in *RecordPaymentInput) { in.Amount = -10 }, ErrInvalidPaymentAmount},
		{"nan amount", func(in *RecordPaymentInput) { in.Amount = math.NaN() }, ErrInvalidPaymentAmount},
		{"unknown method", func(in *RecordPaymentInput) { in.Method = "cheque" }, ErrInvalidPaymentMethod},
		{"unknown type", func(in *RecordPaymentInput) { in.PaymentType = "tip" }, ErrInvalidPaymentType},
		{"technician may not record", func(in *RecordPaymentInput) { in.Actor = entities.User{ID: "t-1", Role: entities.RoleTechnician} }, ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
			devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
			uc := NewPaymentUseCase(repo, devices, nil, nil, PaymentOptions{}, nil)

			in := cashInput()
			tc.edit(&in)
			_, err := uc.RecordPayment(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("device repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentRepository(ctrl), devices, nil, nil, PaymentOptions{}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{}, errors.New("db"))

		_, err := uc.RecordPayment(context.Background(), cashInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("device not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentRepository(ctrl), devices, nil, nil, PaymentOptions{}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{}, nil)

		_, err := uc.RecordPayment(context.Background(), cashInput())
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_RecordPayment_Offline(t *testing.T) {
	t.Run("cash payment defaults customer and records audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		auditRepo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewPaymentUseCase(repo, devices, nil, NewAuditTrail(auditRepo, nil), PaymentOptions{}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1", CustomerID: "cust-9"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" || p.CustomerID != "cust-9" || p.CreatedBy != "cc-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusCompleted || p.PaymentType != entities.PaymentTypePayment || p.Method != entities.PaymentMethodCash {
					t.Fatalf("unexpected payment fields: %+v", p)
				}
				if p.PaymentDate.IsZero() {
					t.Fatalf("payment date must be set")
				}
				return p, nil
			},
		)
		auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.AuditLog) (entities.AuditLog, error) {
				if a.Action != entities.AuditActionPaymentRecorded || a.EntityType != "device" || a.EntityID != "dev-1" || a.UserID != "cc-1" {
					t.Fatalf("unexpected audit entry: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.RecordPayment(context.Background(), cashInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mobile money alias and deposit type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewPaymentUseCase(repo, devices, nil, nil, PaymentOptions{}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		in := cashInput()
		in.Method = "MPESA"
		in.PaymentType = "Deposit"
		in.CustomerID = "cust-given"
		p, err := uc.RecordPayment(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Method != entities.PaymentMethodMPesa || p.PaymentType != entities.PaymentTypeDeposit || p.CustomerID != "cust-given" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("card without provider payload skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, devices, gateway, nil, PaymentOptions{}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		in := cashInput()
		in.Method = "card"
		p, err := uc.RecordPayment(context.Background(), in)
		if err != nil || p.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected result %+v err=%v", p, err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewPaymentUseCase(repo, devices, nil, nil, PaymentOptions{}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db-create"))

		_, err := uc.RecordPayment(context.Background(), cashInput())
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func cardInput(payload string) RecordPaymentInput {
	in := cashInput()
	in.Method = "card"
	in.Amount = 77.2
	in.ProviderPayload = json.RawMessage(payload)
	return in
}

func TestPaymentUseCase_RecordPayment_CardPayloadValidation(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentRepository(ctrl), devices, nil, nil, PaymentOptions{}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)

		_, err := uc.RecordPayment(context.Background(), cardInput(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	cases := []struct {
		name    string
		payload string
	}{
		{"invalid json", `{`},
		{"missing payment_method_id", `{"payer":{"email":"x@test.com"}}`},
		{"missing payer", `{"payment_method_id":"visa"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentRepository(ctrl), devices, gateway, nil, PaymentOptions{}, nil)

			devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)

			_, err := uc.RecordPayment(context.Background(), cardInput(tc.payload))
			if !errors.Is(err, ErrInvalidMPPayload) {
				t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
			}
		})
	}

	t.Run("mock mode tolerates an invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, devices, gateway, nil, PaymentOptions{GatewayMock: true}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mock-1", "approved", json.RawMessage(`{"id":"mock-1"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		p, err := uc.RecordPayment(context.Background(), cardInput(`{`))
		if err != nil || p.ProviderPaymentID != "mock-1" {
			t.Fatalf("unexpected result %+v err=%v", p, err)
		}
	})
}

func TestPaymentUseCase_RecordPayment_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentRepository(ctrl), devices, gateway, nil, PaymentOptions{}, nil)

			devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.RecordPayment(context.Background(), cardInput(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentRepository(ctrl), devices, gateway, nil, PaymentOptions{}, nil)

		devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.RecordPayment(context.Background(), cardInput(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestPaymentUseCase_RecordPayment_ProviderStatuses(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusCompleted, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusFailed, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusCompleted, providerResp: json.RawMessage(`{`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
			devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			opts := PaymentOptions{AccessToken: "TEST-token", TestPayerUserID: "123", TestPayerEmail: "sandbox@test.com"}
			uc := NewPaymentUseCase(repo, devices, gateway, nil, opts, nil)

			devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{ID: "dev-1"}, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "dev-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Device dev-1 repair" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the recorded amount")
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" || payer["id"] != nil {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "mp-1", tc.providerStatus, tc.providerResp, nil
				},
			)
			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
				func(_ context.Context, p entities.Payment) (entities.Payment, error) {
					if p.ProviderPaymentID != "mp-1" || p.Reference != "mp-1" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if !json.Valid(tc.providerResp) && p.ProviderPayloadRaw != nil {
						t.Fatalf("invalid provider response must not be stored")
					}
					return p, nil
				},
			)

			res, err := uc.RecordPayment(context.Background(), cardInput(`{"payment_method_id":"visa","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}
}

func TestPaymentUseCase_PayerDefaults(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{AccessToken: "TEST-abc"}, nil)
	m := map[string]any{}
	uc.ensurePayerDefaults(m)
	payer := m["payer"].(map[string]any)
	if payer["type"] != "customer" || payer["email"] != "test_user_br@testuser.com" {
		t.Fatalf("unexpected sandbox defaults: %v", payer)
	}

	prod := NewPaymentUseCase(nil, nil, nil, nil, PaymentOptions{AccessToken: "APP_USR-abc"}, nil)
	m = map[string]any{"payer": map[string]any{"id": 42}}
	prod.ensurePayerDefaults(m)
	if _, ok := m["payer"].(map[string]any)["email"]; ok {
		t.Fatalf("payer id must be enough outside sandbox")
	}
}
