package handlers

import (
	"errors"
	"net/http"
	"time"

	response "repair_desk/internal/adapter/http/dto/response"
	"repair_desk/internal/usecase"
	"repair_desk/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultCountdownTick = time.Second

// DeviceActivityHandler serves the device detail view and its live countdown.
type DeviceActivityHandler struct {
	usecase usecase.IDeviceActivityUseCase
	logger  *zap.Logger
	tick    time.Duration
	now     func() time.Time
}

func NewDeviceActivityHandler(uc usecase.IDeviceActivityUseCase, logger *zap.Logger) *DeviceActivityHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeviceActivityHandler{usecase: uc, logger: logger, tick: defaultCountdownTick, now: time.Now}
}

// GetActivity godoc
// @Summary  Device activity view
// @Tags     devices
// @Produce  json
// @Param    device_id path string true "Device ID"
// @Param    order query string false "asc or desc"
// @Success  200 {object} response.DeviceActivityResponse
// @Router   /devices/{device_id}/activity [get]
func (h *DeviceActivityHandler) GetActivity(c *gin.Context) {
	deviceID := c.Param("device_id")
	viewer := ActorFrom(c)
	order := usecase.ParseSortOrder(c.Query("order"))

	view, err := h.usecase.GetActivity(c.Request.Context(), c.GetHeader(HeaderSessionID), deviceID, viewer, order)
	if err != nil {
		h.logger.Info("[activity][handler] load failed", zap.String("device_id", deviceID), zap.Error(err))
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDeviceActivity(view))
}

// GetCountdown godoc
// @Summary  Countdown to the expected return date
// @Tags     devices
// @Produce  json
// @Param    device_id path string true "Device ID"
// @Success  200 {object} response.CountdownResponse
// @Router   /devices/{device_id}/countdown [get]
func (h *DeviceActivityHandler) GetCountdown(c *gin.Context) {
	deviceID := c.Param("device_id")
	target, err := h.usecase.GetCountdownTarget(c.Request.Context(), deviceID)
	if err != nil {
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCountdown(countdownAt(target, h.now())))
}

// StreamCountdown godoc
// @Summary  Live countdown as server-sent events
// @Tags     devices
// @Produce  text/event-stream
// @Param    device_id path string true "Device ID"
// @Router   /devices/{device_id}/countdown/stream [get]
//
// One "countdown" event is emitted per tick. The stream ends when the client
// goes away, when the device has no target or once it is overdue.
func (h *DeviceActivityHandler) StreamCountdown(c *gin.Context) {
	deviceID := c.Param("device_id")
	ctx := c.Request.Context()
	target, err := h.usecase.GetCountdownTarget(ctx, deviceID)
	if err != nil {
		writeError(c, mapActivityError(err))
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()
	for {
		cd := countdownAt(target, h.now())
		c.SSEvent("countdown", response.FromCountdown(cd))
		c.Writer.Flush()
		if cd == nil || cd.Overdue {
			return
		}
		select {
		case <-ctx.Done():
			h.logger.Debug("[activity][handler] countdown stream closed", zap.String("device_id", deviceID))
			return
		case <-ticker.C:
		}
	}
}

func countdownAt(target, now time.Time) *usecase.Countdown {
	if target.IsZero() {
		return nil
	}
	cd := usecase.MinimalCountdown(target, now)
	return &cd
}

func mapActivityError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrStaleView) {
		return pkg.NewDomainErrorSimple("STALE_VIEW", "A newer load replaced this request", http.StatusConflict)
	}
	return mapCommonError(err)
}
