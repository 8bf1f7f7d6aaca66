package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/internal/domains/housekeeping/model/dto"
	"lodge/internal/domains/housekeeping/repository"
	"lodge/shared/constant"
)

type Notifier interface {
	RequestTurnover(ctx context.Context, req dto.TurnoverRequest)
	DispatchPending(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo  repository.Housekeeping
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Housekeeping, cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Notifier {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafkaClient,
		otel:  otel,
	}
}

// RequestTurnover enqueues a turnover task for the relay. Housekeeping is a
// courtesy signal: a failed enqueue is logged and the booking flow carries on.
func (s *serviceImpl) RequestTurnover(ctx context.Context, req dto.TurnoverRequest) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestTurnover")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err := s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("roomID", req.RoomID).Msg("failed to enqueue housekeeping turnover")
	}
}

// DispatchPending publishes undelivered outbox rows to the turnover topic and
// marks them dispatched. It returns how many rows went out.
func (s *serviceImpl) DispatchPending(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRelayScopeName, constant.OtelRelayScopeName+".DispatchPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	tasks, err := s.repo.GetPending(ctx, s.cfg.Relay.BatchSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to read pending housekeeping tasks")

		return 0, fmt.Errorf("failed to read pending housekeeping tasks: %w", err)
	}

	if len(tasks) == 0 {
		return 0, nil
	}

	messages := make([]kafka.Message, len(tasks))
	ids := make([]string, len(tasks))

	for i, task := range tasks {
		event := dto.TurnoverEvent{}
		event.FromModel(task)

		messages[i] = kafka.Message{Key: task.RoomID, Value: event}
		ids[i] = task.ID
	}

	topic := s.cfg.Kafka.TurnoverTopic

	if err = s.kafka.SendMessages(ctx, topic, messages...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish housekeeping turnovers")

		return 0, fmt.Errorf("failed to publish housekeeping turnovers: %w", err)
	}

	if err = s.repo.MarkDispatched(ctx, ids); err != nil {
		log.Error().Err(err).Msg("failed to mark housekeeping tasks dispatched")

		return 0, fmt.Errorf("failed to mark housekeeping tasks dispatched: %w", err)
	}

	log.Info().Int("count", len(tasks)).Str("topic", topic).Msg("housekeeping turnovers dispatched")

	return len(tasks), nil
}
