package event

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"wbrent/config"
	"wbrent/infras/kafka"
	"wbrent/infras/otel"
	"wbrent/internal/domains/reservation/model"
	"wbrent/shared/constant"
	"wbrent/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Publisher interface {
	// Released announces that reservation no longer occupies its product.
	Released(ctx context.Context, reservation model.Reservation, from model.Status)
}

type kafkaPublisher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *kafkaPublisher) Released(ctx context.Context, reservation model.Reservation, from model.Status) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Released")
	defer scope.End()

	message := kafka.Message{
		Key: reservation.ID,
		Value: model.ReleasedEvent{
			ReservationID: reservation.ID,
			ProductID:     reservation.ProductID,
			From:          from,
			To:            reservation.Status,
			OccurredAt:    timezone.Now(),
		},
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := p.client.SendMessages(c, p.cfg.Kafka.Topics.ReservationEvents, message); err != nil {
			log.Error().Err(err).Str("reservationId", reservation.ID).Msg("failed to publish reservation released event")
		}
	}()
}
