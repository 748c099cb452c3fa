package handlers

import (
	"errors"
	"net/http"

	request "repair_desk/internal/adapter/http/dto/request"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase"
	"repair_desk/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler handles status changes and remarks.
type DeviceHandler struct {
	usecase usecase.IDeviceUseCase
	logger  *zap.Logger
}

func NewDeviceHandler(uc usecase.IDeviceUseCase, logger *zap.Logger) *DeviceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeviceHandler{usecase: uc, logger: logger}
}

// UpdateStatus godoc
// @Summary  Move a device to a new status
// @Tags     devices
// @Accept   json
// @Produce  json
// @Param    device_id path string true "Device ID"
// @Param    body body request.UpdateStatusRequest true "New status"
// @Router   /devices/{device_id}/status [patch]
func (h *DeviceHandler) UpdateStatus(c *gin.Context) {
	deviceID := c.Param("device_id")
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), deviceID, entities.DeviceStatus(payload.Status), ActorFrom(c), payload.Signature)
	if err != nil {
		h.logger.Info("[device][handler] status update failed", zap.String("device_id", deviceID), zap.Error(err))
		writeError(c, mapDeviceError(err))
		return
	}
	if !updated {
		writeError(c, mapDeviceError(usecase.ErrDeviceNotFound))
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true, "device_id": deviceID, "status": payload.Status})
}

// AddRemark godoc
// @Summary  Add a remark to a device
// @Tags     devices
// @Accept   json
// @Produce  json
// @Param    device_id path string true "Device ID"
// @Param    body body request.AddRemarkRequest true "Remark"
// @Success  201 {object} entities.Remark
// @Router   /devices/{device_id}/remarks [post]
func (h *DeviceHandler) AddRemark(c *gin.Context) {
	deviceID := c.Param("device_id")
	var payload request.AddRemarkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapDeviceError(usecase.ErrEmptyRemark))
		return
	}

	remark, err := h.usecase.AddRemark(c.Request.Context(), deviceID, payload.Content, ActorFrom(c), payload.RemarkType)
	if err != nil {
		writeError(c, mapDeviceError(err))
		return
	}
	c.JSON(http.StatusCreated, remark)
}

func mapDeviceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid device status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyRemark):
		return pkg.NewDomainErrorSimple("INVALID_REMARK", "Remark content is required", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
