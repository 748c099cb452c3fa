package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"repair_desk/internal/adapter/http/handlers/mocks"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDeviceRouter(h *DeviceHandler) *gin.Engine {
	r := gin.New()
	r.Use(ActorMiddleware())
	r.PATCH("/v1/devices/:device_id/status", h.UpdateStatus)
	r.POST("/v1/devices/:device_id/remarks", h.AddRemark)
	return r
}

func TestDeviceHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tech := entities.User{ID: "tech-1", Role: entities.RoleTechnician}

	patch := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/v1/devices/dev-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, tech.ID)
		req.Header.Set(HeaderUserRole, string(tech.Role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newDeviceRouter(NewDeviceHandler(mocks.NewMockIDeviceUseCase(ctrl), nil))

		if w := patch(r, `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeviceUseCase(ctrl)
		r := newDeviceRouter(NewDeviceHandler(uc, nil))

		uc.EXPECT().UpdateStatus(gomock.Any(), "dev-1", entities.DeviceStatusRepairComplete, tech, "sig").Return(true, nil)

		if w := patch(r, `{"status":"repair-complete","signature":"sig"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeviceUseCase(ctrl)
		r := newDeviceRouter(NewDeviceHandler(uc, nil))

		uc.EXPECT().UpdateStatus(gomock.Any(), "dev-1", entities.DeviceStatusDone, tech, "").Return(false, nil)

		if w := patch(r, `{"status":"done"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrInvalidDeviceStatus, http.StatusBadRequest},
			{usecase.ErrForbidden, http.StatusForbidden},
			{errors.New("db"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIDeviceUseCase(ctrl)
			r := newDeviceRouter(NewDeviceHandler(uc, nil))
			uc.EXPECT().UpdateStatus(gomock.Any(), "dev-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(false, tc.err)

			if w := patch(r, `{"status":"bogus"}`); w.Code != tc.code {
				t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, w.Code)
			}
			ctrl.Finish()
		}
	})
}

func TestDeviceHandler_AddRemark(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newDeviceRouter(NewDeviceHandler(mocks.NewMockIDeviceUseCase(ctrl), nil))

		w := postJSON(r, "/v1/devices/dev-1/remarks", `{"remark_type":"note"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code, _ := errorCode(t, w); code != "INVALID_REMARK" {
			t.Fatalf("unexpected code %q", code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeviceUseCase(ctrl)
		r := newDeviceRouter(NewDeviceHandler(uc, nil))

		uc.EXPECT().AddRemark(gomock.Any(), "dev-1", "screen replaced", gomock.Any(), "").
			Return(entities.Remark{ID: "r1", DeviceID: "dev-1", Content: "screen replaced"}, nil)

		w := postJSON(r, "/v1/devices/dev-1/remarks", `{"content":"screen replaced"}`, map[string]string{HeaderUserID: "tech-1", HeaderUserRole: "technician"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
