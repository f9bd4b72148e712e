package worker

import (
	"context"
	"sync"
	"wbrent/config"
	"wbrent/infras/kafka"
	"wbrent/infras/otel"
	notification "wbrent/internal/domains/notification/service"
	"wbrent/internal/domains/reservation/model"
	stocknotify "wbrent/internal/domains/stocknotify/service"
	"wbrent/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker consumes reservation events and tells stock subscribers when a
// product they wait for becomes free again.
type Worker struct {
	client   kafka.Client
	stock    stocknotify.StockNotification
	notifier notification.Notifier
	cfg      *config.Config
	otel     otel.Otel
	inflight sync.WaitGroup
}

func New(client kafka.Client, stock stocknotify.StockNotification, notifier notification.Notifier, cfg *config.Config, otel otel.Otel) *Worker {
	return &Worker{
		client:   client,
		stock:    stock,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

// Run blocks until ctx is cancelled and every message already received has
// been handled.
func (w *Worker) Run(ctx context.Context) {
	topic := w.cfg.Kafka.Topics.ReservationEvents

	log.Info().Str("topic", topic).Str("group", w.cfg.Kafka.ConsumerGroup).Msg("worker consuming reservation events")

	w.client.Consume(ctx, w.cfg.Kafka.ConsumerGroup, topic, w.dispatch)

	w.inflight.Wait()
}

// dispatch handles message in its own goroutine. Handlers outlive ctx so a
// claimed subscription is always followed by its email.
func (w *Worker) dispatch(ctx context.Context, message kafkaGo.Message) {
	w.inflight.Add(1)

	go func() {
		defer w.inflight.Done()

		w.HandleReservationEvent(context.WithoutCancel(ctx), message)
	}()
}

func (w *Worker) HandleReservationEvent(ctx context.Context, message kafkaGo.Message) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".HandleReservationEvent")
	defer scope.End()

	event, err := kafka.Decode[model.ReleasedEvent](message)
	if err != nil {
		scope.TraceError(err)

		return
	}

	if !event.To.Releases() || event.ProductID == constant.Empty {
		log.Debug().Str("reservationId", event.ReservationID).Str("to", event.To.String()).Msg("event does not release stock, skipping")

		return
	}

	notified, err := w.stock.NotifyReleased(ctx, event.ProductID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("productId", event.ProductID).Msg("failed to notify stock subscribers")

		return
	}

	log.Info().Str("productId", event.ProductID).Int("notified", notified).Msg("stock subscribers notified")
}

// Shutdown drains running handlers before the emails they queued, then
// closes the Kafka client and flushes traces.
func (w *Worker) Shutdown(ctx context.Context) {
	w.inflight.Wait()
	w.notifier.Wait()

	if err := w.client.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka client")
	}

	if err := w.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}
