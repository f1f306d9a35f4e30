package httpv1_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpv1 "github.com/altiguard/altiguard/internal/controller/http/v1"
	"github.com/altiguard/altiguard/internal/domain"
	service_mock "github.com/altiguard/altiguard/internal/mocks/service"
	"github.com/altiguard/altiguard/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, ls service.Log) *echo.Echo {
	t.Helper()
	handler := echo.New()
	httpv1.RegisterRoutes(handler, &service.Services{Log: ls})
	return handler
}

func doIngest(handler *echo.Echo, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/log", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLogController_Ingest(t *testing.T) {
	validBody := `{"input": "What is 2+2?", "output": "The answer is 4."}`

	t.Run("success echoes the stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLog := service_mock.NewMockLog(ctrl)
		mockLog.EXPECT().
			Ingest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, record *domain.LogRecord) (*domain.LogRecord, error) {
				assert.Equal(t, "sk_test_123", record.ApiKey)
				assert.Equal(t, "What is 2+2?", record.Input)
				stored := *record
				stored.Id = 7
				return &stored, nil
			})

		rec := doIngest(newTestServer(t, mockLog), "Bearer sk_test_123", validBody)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp httpv1.IngestResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Log stored successfully", resp.Message)
		assert.NotNil(t, resp.Data)
		assert.Equal(t, int64(7), resp.Data.Id)
	})

	t.Run("wrong auth scheme is unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rec := doIngest(newTestServer(t, service_mock.NewMockLog(ctrl)),
			"Token abc", validBody)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing auth header is unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rec := doIngest(newTestServer(t, service_mock.NewMockLog(ctrl)),
			"", validBody)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing output field is unprocessable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rec := doIngest(newTestServer(t, service_mock.NewMockLog(ctrl)),
			"Bearer sk_test_123", `{"input": "hi"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("empty fields are accepted as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLog := service_mock.NewMockLog(ctrl)
		mockLog.EXPECT().
			Ingest(gomock.Any(), gomock.Any()).
			Return(&domain.LogRecord{ApiKey: "k"}, nil)

		rec := doIngest(newTestServer(t, mockLog),
			"Bearer k", `{"input": "", "output": ""}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ambiguous store ack reports success with a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLog := service_mock.NewMockLog(ctrl)
		mockLog.EXPECT().
			Ingest(gomock.Any(), gomock.Any()).
			Return(nil, service.ErrAmbiguousWriteAck)

		rec := doIngest(newTestServer(t, mockLog), "Bearer sk_test_123", validBody)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp httpv1.IngestResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Message, "Warning")
		assert.Nil(t, resp.Data)
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLog := service_mock.NewMockLog(ctrl)
		mockLog.EXPECT().
			Ingest(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		rec := doIngest(newTestServer(t, mockLog), "Bearer sk_test_123", validBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
