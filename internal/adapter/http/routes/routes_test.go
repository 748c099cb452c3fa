package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"repair_desk/internal/adapter/http/handlers"
	"repair_desk/internal/adapter/http/handlers/mocks"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(ctrl *gomock.Controller) (*gin.Engine, *mocks.MockIDeviceActivityUseCase, *mocks.MockIDeviceUseCase) {
	activity := mocks.NewMockIDeviceActivityUseCase(ctrl)
	devices := mocks.NewMockIDeviceUseCase(ctrl)
	h := Handlers{
		Activity:     handlers.NewDeviceActivityHandler(activity, nil),
		Devices:      handlers.NewDeviceHandler(devices, nil),
		Payments:     handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), false, nil),
		Attachments:  handlers.NewAttachmentHandler(mocks.NewMockIAttachmentUseCase(ctrl), nil),
		Notification: handlers.NewNotificationHandler(mocks.NewMockINotificationUseCase(ctrl)),
	}
	return NewRouter(h, zap.NewNop()), activity, devices
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _, _ := newTestRouter(ctrl)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
			t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("metrics exposes request counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _, _ := newTestRouter(ctrl)

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "repairdesk_http_requests_total") {
			t.Fatalf("metrics missing request counter")
		}
	})

	t.Run("actor middleware feeds handlers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, activity, _ := newTestRouter(ctrl)

		viewer := entities.User{ID: "adm-1", Role: entities.RoleAdmin}
		activity.EXPECT().GetActivity(gomock.Any(), "s-1", "dev-1", viewer, usecase.SortAscending).Return(usecase.DeviceActivity{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/devices/dev-1/activity", nil)
		req.Header.Set(handlers.HeaderUserID, "adm-1")
		req.Header.Set(handlers.HeaderUserRole, "admin")
		req.Header.Set(handlers.HeaderSessionID, "s-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _, devices := newTestRouter(ctrl)

		devices.EXPECT().UpdateStatus(gomock.Any(), "dev-1", entities.DeviceStatusDone, gomock.Any(), "").Return(true, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/devices/dev-1/status", strings.NewReader(`{"status":"done"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
