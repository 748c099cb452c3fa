package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repair_desk/internal/adapter/http/handlers/mocks"
	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.Use(ActorMiddleware())
	r.POST("/v1/devices/:device_id/payments", h.RecordPayment)
	return r
}

func postJSON(r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body.Error.Code, body.Error.Message
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	front := map[string]string{HeaderUserID: "cc-1", HeaderUserRole: "customer-care"}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, false, nil))

		w := postJSON(r, "/v1/devices/dev-1/payments", "{", front)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid amount never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, false, nil))

		for _, body := range []string{`{"amount":"abc","method":"cash"}`, `{"amount":0,"method":"cash"}`, `{"method":"cash"}`} {
			w := postJSON(r, "/v1/devices/dev-1/payments", body, front)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
			if _, msg := errorCode(t, w); msg != "Enter a valid amount" {
				t.Fatalf("body %s: unexpected message %q", body, msg)
			}
		}
	})

	t.Run("invalid mp_payload outside mock mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, false, nil))

		w := postJSON(r, "/v1/devices/dev-1/payments", `{"amount":10,"method":"card","mp_payload":[1]}`, front)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid mp_payload in mock mode falls back to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, true, nil))

		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.RecordPaymentInput) (entities.Payment, error) {
			if string(in.ProviderPayload) != "{}" {
				t.Fatalf("expected empty payload, got %s", in.ProviderPayload)
			}
			return entities.Payment{ID: "pay-1", DeviceID: in.DeviceID, Amount: in.Amount}, nil
		})

		w := postJSON(r, "/v1/devices/dev-1/payments", `{"amount":10,"method":"card","mp_payload":[1]}`, front)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, false, nil))

		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrForbidden)

		w := postJSON(r, "/v1/devices/dev-1/payments", `{"amount":10,"method":"cash"}`, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, false, nil))

		now := time.Now().UTC()
		uc.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.RecordPaymentInput) (entities.Payment, error) {
			if in.DeviceID != "dev-1" || in.Amount != 1500 || in.Method != "m-pesa" || in.PaymentType != "deposit" {
				t.Fatalf("unexpected input %+v", in)
			}
			if in.Actor.ID != "cc-1" || in.Actor.Role != entities.RoleCustomerCare {
				t.Fatalf("unexpected actor %+v", in.Actor)
			}
			if in.ProviderPayload != nil {
				t.Fatalf("expected no provider payload, got %s", in.ProviderPayload)
			}
			return entities.Payment{
				ID:          "pay-1",
				DeviceID:    "dev-1",
				Amount:      1500,
				Method:      entities.PaymentMethodMPesa,
				PaymentType: entities.PaymentTypeDeposit,
				Status:      entities.PaymentStatusCompleted,
				PaymentDate: now,
			}, nil
		})

		w := postJSON(r, "/v1/devices/dev-1/payments", `{"amount":"1500","method":"m-pesa","payment_type":"deposit"}`, front)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" || body["amount_label"] != "TSh 1,500.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReadPaymentRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readPaymentRequest(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}
	if _, err := readPaymentRequest(makeCtx("   ")); err == nil {
		t.Fatalf("expected empty body error")
	}
	if _, err := readPaymentRequest(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}
	payload, err := readPaymentRequest(makeCtx(`{"amount":5,"method":"cash","mp_payload":{"a":1}}`))
	if err != nil || payload.Method != "cash" || string(payload.MPPayload) != `{"a":1}` {
		t.Fatalf("unexpected payload %+v err=%v", payload, err)
	}
}

func TestNormalizeMPPayload(t *testing.T) {
	cases := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{``, ``, false},
		{`null`, ``, false},
		{`{"a":1}`, `{"a":1}`, false},
		{`"{\"a\":1}"`, `{"a":1}`, false},
		{`"x"`, ``, true},
		{`[1]`, ``, true},
	}
	for _, tc := range cases {
		got, err := normalizeMPPayload(json.RawMessage(tc.raw))
		if (err != nil) != tc.wantErr {
			t.Fatalf("normalizeMPPayload(%s) err=%v, wantErr=%v", tc.raw, err, tc.wantErr)
		}
		if string(got) != tc.want {
			t.Fatalf("normalizeMPPayload(%s) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidDeviceID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentAmount, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentType, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrDeviceNotFound, http.StatusNotFound},
		{usecase.ErrForbidden, http.StatusForbidden},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
