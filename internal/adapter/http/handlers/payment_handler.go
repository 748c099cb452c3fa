package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "repair_desk/internal/adapter/http/dto/request"
	response "repair_desk/internal/adapter/http/dto/response"
	"repair_desk/internal/usecase"
	"repair_desk/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler records payments against a device.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

// NewPaymentHandler takes the gateway mock flag so a malformed mp_payload
// can fall back to an empty one while testing against the mock gateway.
func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, mockMode: mockMode, logger: logger}
}

// RecordPayment godoc
// @Summary  Record a payment, deposit or refund
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    device_id path string true "Device ID"
// @Param    body body request.RecordPaymentRequest true "Payment"
// @Success  201 {object} response.PaymentResponse
// @Router   /devices/{device_id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	deviceID := c.Param("device_id")
	h.logger.Info("[payment][handler] record start", zap.String("device_id", deviceID))

	payload, err := readPaymentRequest(c)
	if err != nil {
		h.logger.Info("[payment][handler] invalid payload", zap.String("device_id", deviceID), zap.Error(err))
		writeError(c, errInvalidRequest)
		return
	}
	amount, ok := payload.ParseAmount()
	if !ok {
		writeError(c, errInvalidAmount)
		return
	}
	mpPayload, err := normalizeMPPayload(payload.MPPayload)
	if err != nil {
		if !h.mockMode {
			h.logger.Info("[payment][handler] invalid mp_payload", zap.String("device_id", deviceID), zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		h.logger.Info("[payment][handler] mp_payload invalid in mock mode; using empty payload", zap.String("device_id", deviceID))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.RecordPayment(c.Request.Context(), usecase.RecordPaymentInput{
		DeviceID:        deviceID,
		CustomerID:      payload.CustomerID,
		Amount:          amount,
		Method:          payload.Method,
		PaymentType:     payload.PaymentType,
		Reference:       payload.Reference,
		ProviderPayload: mpPayload,
		Actor:           ActorFrom(c),
	})
	if err != nil {
		h.logger.Info("[payment][handler] record failed", zap.String("device_id", deviceID), zap.Error(err))
		writeError(c, mapPaymentError(err))
		return
	}
	h.logger.Info("[payment][handler] record success",
		zap.String("device_id", deviceID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	c.JSON(http.StatusCreated, response.FromPayment(created))
}

func readPaymentRequest(c *gin.Context) (request.RecordPaymentRequest, error) {
	var payload request.RecordPaymentRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, errors.New("request body is empty")
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// normalizeMPPayload treats an absent or null mp_payload as no payload and
// accepts it either as an object or as a JSON-encoded string.
func normalizeMPPayload(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, err
		}
		trimmed = strings.TrimSpace(inner)
		if !json.Valid([]byte(trimmed)) {
			return nil, errors.New("mp_payload is not valid json")
		}
	}
	if !strings.HasPrefix(trimmed, "{") {
		return nil, errors.New("mp_payload must be an object")
	}
	return json.RawMessage(trimmed), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return errInvalidAmount
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Select a valid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentType):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_TYPE", "Select a valid payment type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Card payments are not available", http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
