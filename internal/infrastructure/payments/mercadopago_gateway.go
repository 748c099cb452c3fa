package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"repair_desk/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// ErrInvalidCardCharge is returned before any provider call when the charge
// names no device or carries no positive amount.
var ErrInvalidCardCharge = errors.New("card charge needs a device reference and a positive amount")

// MercadoPagoGateway charges the card half of a front-desk payment. Cash and
// transfer payments are recorded by the payment use case and never reach it.
//
// The request body is a Mercado Pago payment request built by the use case:
// external_reference is the device id and transaction_amount is the amount
// customer care recorded against that device. The provider payment id and
// status come back so the device's payment row can be settled.
//
// In mock mode no request leaves the process and every charge is approved,
// which lets the desk run without provider credentials.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway needs an access token unless mockMode is set.
func NewMercadoPagoGateway(accessToken string, mockMode bool, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mockMode {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger, now: time.Now}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger, now: time.Now}, nil
}

// CreatePayment charges a repair to the card in requestPayload and returns
// the provider's payment id, its raw status and the full provider response.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, err
	}
	deviceID, err := cardCharge(req)
	if err != nil {
		g.logger.Info("[payment][gateway] card charge rejected", zap.String("device_id", deviceID), zap.Float64("amount", req.TransactionAmount))
		return "", "", nil, err
	}
	g.logger.Debug("[payment][gateway] card charge start",
		zap.String("device_id", deviceID),
		zap.Float64("amount", req.TransactionAmount),
		zap.String("payment_method_id", req.PaymentMethodID),
	)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Warn("[payment][gateway] sdk create failed", zap.String("device_id", deviceID), zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := strconv.Itoa(resp.ID)
	g.logger.Info("[payment][gateway] card charge created",
		zap.String("device_id", deviceID),
		zap.String("provider_payment_id", id),
		zap.String("provider_status", resp.Status),
	)

	return id, resp.Status, b, nil
}

// cardCharge returns the device a charge is for. A charge with no device
// reference could never be matched back to a repair.
func cardCharge(req payment.Request) (string, error) {
	deviceID := strings.TrimSpace(req.ExternalReference)
	if deviceID == "" || !(req.TransactionAmount > 0) {
		return deviceID, ErrInvalidCardCharge
	}
	return deviceID, nil
}

// mockCreate echoes the charge back as an approved, accredited payment with
// a time-based id, the shape the payment use case reads from a real response.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.logger.Info("[payment][gateway] mock create success", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
