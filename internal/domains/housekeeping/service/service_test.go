package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	hkMocks "lodge/internal/domains/housekeeping/mocks"
	"lodge/internal/domains/housekeeping/model"
	"lodge/internal/domains/housekeeping/model/dto"
	"lodge/internal/domains/housekeeping/service"
	"lodge/shared/timezone"
)

func TestHousekeepingService_RequestTurnover(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hkMocks.NewMockHousekeeping(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockKafka, mockOtel)

	req := dto.TurnoverRequest{
		RoomID:    "room-1",
		GuestName: "Jane Smith",
		TaskDate:  timezone.Now(),
	}

	t.Run("successful enqueue", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task model.Task) error {
				assert.Equal(t, "room-1", task.RoomID)
				assert.Equal(t, model.TaskTypeFullTurnover, task.TaskType)
				assert.Equal(t, model.PriorityUrgent, task.Priority)
				assert.Equal(t, model.StatusPending, task.Status)
				assert.Equal(t, "Prepare for guest Jane Smith - Check-in at 14:00", task.Notes)
				assert.False(t, task.Dispatched)

				return nil
			})

		svc.RequestTurnover(context.Background(), req)
	})

	t.Run("enqueue failure is swallowed", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		svc.RequestTurnover(context.Background(), req)
	})
}

func TestHousekeepingService_DispatchPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := hkMocks.NewMockHousekeeping(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Relay.BatchSize = 50
	cfg.Kafka.TurnoverTopic = "housekeeping.turnover"

	svc := service.New(mockRepo, cfg, mockKafka, mockOtel)

	tasks := []model.Task{
		{ID: "task-1", RoomID: "room-1", TaskType: model.TaskTypeFullTurnover},
		{ID: "task-2", RoomID: "room-2", TaskType: model.TaskTypeFullTurnover},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantCount int
		wantErr   bool
	}{
		{
			name: "dispatches pending tasks",
			setupMock: func() {
				mockRepo.EXPECT().
					GetPending(gomock.Any(), 50).
					Return(tasks, nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "housekeeping.turnover", gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					MarkDispatched(gomock.Any(), []string{"task-1", "task-2"}).
					Return(nil)
			},
			wantCount: 2,
		},
		{
			name: "nothing pending",
			setupMock: func() {
				mockRepo.EXPECT().
					GetPending(gomock.Any(), 50).
					Return(nil, nil)
			},
			wantCount: 0,
		},
		{
			name: "publish failure leaves tasks pending",
			setupMock: func() {
				mockRepo.EXPECT().
					GetPending(gomock.Any(), 50).
					Return(tasks, nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "housekeeping.turnover", gomock.Any(), gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			wantErr: true,
		},
		{
			name: "read failure",
			setupMock: func() {
				mockRepo.EXPECT().
					GetPending(gomock.Any(), 50).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			count, err := svc.DispatchPending(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCount, count)
			}
		})
	}
}
