package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/altiguard/altiguard/internal/domain"
	"github.com/altiguard/altiguard/internal/metrics"
	repository_mock "github.com/altiguard/altiguard/internal/mocks/repository"
	"github.com/altiguard/altiguard/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogService_Ingest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository_mock.NewMockLog(ctrl)

	svc := service.NewLogService(mockRepo, metrics.NewTestCounters())

	ctx := context.Background()
	record := &domain.LogRecord{
		ApiKey: "sk_test_123",
		Input:  "What is 2+2?",
		Output: "The answer is 4.",
	}

	tcs := []struct {
		name         string
		mockBehavior func()
		wantStored   bool
		wantErr      error
	}{
		{
			name: "success",
			mockBehavior: func() {
				stored := *record
				stored.Id = 42
				mockRepo.EXPECT().
					Store(ctx, record).
					Return(&stored, nil)
			},
			wantStored: true,
		},
		{
			name: "ack without payload",
			mockBehavior: func() {
				mockRepo.EXPECT().
					Store(ctx, record).
					Return(nil, nil)
			},
			wantErr: service.ErrAmbiguousWriteAck,
		},
		{
			name: "repository error",
			mockBehavior: func() {
				mockRepo.EXPECT().
					Store(ctx, record).
					Return(nil, errors.New("db error"))
			},
			wantErr: service.ErrCannotStoreLog,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockBehavior()

			stored, err := svc.Ingest(ctx, record)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, stored)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(42), stored.Id)
			assert.Equal(t, record.ApiKey, stored.ApiKey)
		})
	}
}
