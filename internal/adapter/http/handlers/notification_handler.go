package handlers

import (
	"errors"
	"net/http"

	request "repair_desk/internal/adapter/http/dto/request"
	"repair_desk/internal/usecase"
	"repair_desk/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler sends customer SMS.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendSms godoc
// @Summary  Send an SMS to a customer
// @Tags     sms
// @Accept   json
// @Produce  json
// @Param    body body request.SendSMSRequest true "Message"
// @Success  200 {object} usecase.SMSResult
// @Router   /sms [post]
//
// Provider failures still answer 200 with success=false.
func (h *NotificationHandler) SendSms(c *gin.Context) {
	var payload request.SendSMSRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	result, err := h.usecase.SendSms(c.Request.Context(), usecase.SendSMSInput{
		PhoneNumber: payload.PhoneNumber,
		Message:     payload.Message,
		CustomerID:  payload.CustomerID,
		DeviceID:    payload.DeviceID,
		Sender:      ActorFrom(c),
	})
	if err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhoneNumber):
		return pkg.NewDomainErrorSimple("INVALID_PHONE_NUMBER", "Enter a valid phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptySMSMessage):
		return pkg.NewDomainErrorSimple("INVALID_MESSAGE", "Message is required", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
