package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"repair_desk/internal/adapter/http/handlers/mocks"
	"repair_desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_SendSms(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newRouter := func(h *NotificationHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/sms", h.SendSms)
		return r
	}

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(NewNotificationHandler(mocks.NewMockINotificationUseCase(ctrl)))

		if w := postJSON(r, "/v1/sms", `{"phone_number":"0712345678"}`, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc))

		uc.EXPECT().SendSms(gomock.Any(), gomock.Any()).Return(usecase.SMSResult{}, usecase.ErrInvalidPhoneNumber)

		w := postJSON(r, "/v1/sms", `{"phone_number":"12","message":"hi"}`, nil)
		if code, _ := errorCode(t, w); w.Code != http.StatusBadRequest || code != "INVALID_PHONE_NUMBER" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("provider failure is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newRouter(NewNotificationHandler(uc))

		uc.EXPECT().SendSms(gomock.Any(), gomock.Any()).Return(usecase.SMSResult{Success: false, Error: "sms provider not configured", LogID: "log-1"}, nil)

		w := postJSON(r, "/v1/sms", `{"phone_number":"0712345678","message":"Your device is ready","device_id":"dev-1"}`,
			map[string]string{HeaderUserID: "cc-1", HeaderUserRole: "customer-care"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false || body["error"] != "sms provider not configured" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
