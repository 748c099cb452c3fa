package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentAmount           = errors.New("invalid payment amount")
	ErrInvalidPaymentMethod           = errors.New("invalid payment method")
	ErrInvalidPaymentType             = errors.New("invalid payment type")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// RecordPaymentInput is one payment as entered at the front desk.
//
// ProviderPayload is only read for card payments; it is the Mercado Pago
// payment request (token, payment_method_id, payer).
type RecordPaymentInput struct {
	DeviceID        string
	CustomerID      string
	Amount          float64
	Method          string
	PaymentType     string
	Reference       string
	ProviderPayload json.RawMessage
	Actor           entities.User
}

// PaymentOptions configures card processing.
//
// In sandbox (access token "TEST-..."), payer defaults come from the
// configured test payer. Mock mode skips payload checks; the gateway itself
// answers approved.
type PaymentOptions struct {
	GatewayMock     bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IPaymentUseCase records customer payments.
//
// Validation happens before any write: amount, method, type, permissions and
// device existence. Card payments carrying a provider payload are charged
// through the gateway first and take its outcome as their status.

type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, in RecordPaymentInput) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	devices interfaces.IDeviceRepository
	gateway interfaces.IPaymentGateway
	audit   *AuditTrail
	opts    PaymentOptions
	logger  *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, devices interfaces.IDeviceRepository, gateway interfaces.IPaymentGateway, audit *AuditTrail, opts PaymentOptions, logger *zap.Logger) *PaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentUseCase{repo: repo, devices: devices, gateway: gateway, audit: audit, opts: opts, logger: logger}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, in RecordPaymentInput) (entities.Payment, error) {
	deviceID := strings.TrimSpace(in.DeviceID)
	u.logger.Info("[payment][usecase] record start",
		zap.String("device_id", deviceID),
		zap.String("method", in.Method),
		zap.Int("payload_len", len(in.ProviderPayload)),
	)
	if deviceID == "" {
		return entities.Payment{}, ErrInvalidDeviceID
	}
	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	method, ok := entities.ParsePaymentMethod(in.Method)
	if !ok {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	paymentType := entities.PaymentType(strings.ToLower(strings.TrimSpace(in.PaymentType)))
	if paymentType == "" {
		paymentType = entities.PaymentTypePayment
	}
	if !paymentType.IsValid() {
		return entities.Payment{}, ErrInvalidPaymentType
	}
	if !CanRecordPayment(in.Actor) {
		return entities.Payment{}, ErrForbidden
	}

	device, err := u.devices.GetByID(ctx, deviceID)
	if err != nil {
		u.logger.Error("[payment][usecase] device load failed", zap.String("device_id", deviceID), zap.Error(err))
		return entities.Payment{}, err
	}
	if device.ID == "" {
		return entities.Payment{}, ErrDeviceNotFound
	}

	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		customerID = device.CustomerID
	}

	p := entities.Payment{
		ID:          uuid.NewString(),
		DeviceID:    deviceID,
		CustomerID:  customerID,
		Amount:      in.Amount,
		Method:      method,
		PaymentType: paymentType,
		Status:      entities.PaymentStatusCompleted,
		PaymentDate: time.Now().UTC(),
		CreatedBy:   in.Actor.ID,
		Reference:   strings.TrimSpace(in.Reference),
	}

	if method == entities.PaymentMethodCard && len(in.ProviderPayload) > 0 {
		if err := u.chargeCard(ctx, &p, in.ProviderPayload); err != nil {
			return entities.Payment{}, err
		}
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("[payment][usecase] payment create failed",
			zap.String("device_id", deviceID),
			zap.String("payment_id", p.ID),
			zap.Error(err),
		)
		return entities.Payment{}, err
	}

	u.audit.Record(ctx, deviceID, entities.AuditActionPaymentRecorded, in.Actor.ID, map[string]any{
		"amount":      created.Amount,
		"method":      string(created.Method),
		"paymentType": string(created.PaymentType),
		"status":      string(created.Status),
	})
	u.logger.Info("[payment][usecase] record success",
		zap.String("device_id", deviceID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	return created, nil
}

// chargeCard sends the payment to the provider and copies its id, status and
// response onto p. The amount charged is always the recorded amount.
func (u *PaymentUseCase) chargeCard(ctx context.Context, p *entities.Payment, payload json.RawMessage) error {
	if u.gateway == nil {
		u.logger.Warn("[payment][usecase] gateway not configured", zap.String("device_id", p.DeviceID))
		return ErrPaymentGatewayNotConfigured
	}
	if !json.Valid(payload) {
		if !u.opts.GatewayMock {
			return ErrInvalidMPPayload
		}
		payload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.GatewayMock {
			return ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}

	if !u.opts.GatewayMock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.logger.Info("[payment][usecase] missing payment_method_id", zap.String("device_id", p.DeviceID))
			return ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			u.logger.Info("[payment][usecase] missing/invalid payer", zap.String("device_id", p.DeviceID))
			return ErrInvalidMPPayload
		}
	}

	// external_reference lets provider events be matched back to the device.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = p.DeviceID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Device %s repair", p.DeviceID)
	}
	reqMap["transaction_amount"] = p.Amount

	body, err := json.Marshal(reqMap)
	if err != nil {
		return err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		u.logger.Warn("[payment][usecase] payment gateway failed", zap.String("device_id", p.DeviceID), zap.Error(err))
		switch {
		case isGatewayCustomerNotFound(err):
			return ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return ErrPaymentGatewayBadRequest
		}
		return err
	}
	u.logger.Info("[payment][usecase] payment gateway success",
		zap.String("device_id", p.DeviceID),
		zap.String("provider_payment_id", providerID),
		zap.String("provider_status", providerStatus),
	)

	p.ProviderPaymentID = providerID
	p.Status = statusFromProvider(providerStatus)
	if len(providerResp) > 0 && json.Valid(providerResp) {
		p.ProviderPayloadRaw = providerResp
	}
	if p.Reference == "" {
		p.Reference = providerID
	}
	return nil
}

func statusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved":
		return entities.PaymentStatusCompleted
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusFailed
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Either payer.id or payer.email identifies the payer; fill email only
	// when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *PaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.sandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
