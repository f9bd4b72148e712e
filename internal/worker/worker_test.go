package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wbrent/config"
	"wbrent/infras/kafka"
	kafkaMocks "wbrent/infras/kafka/mocks"
	otelMocks "wbrent/infras/otel/mocks"
	notificationMocks "wbrent/internal/domains/notification/mocks"
	"wbrent/internal/domains/reservation/model"
	stockMocks "wbrent/internal/domains/stocknotify/mocks"
	"wbrent/internal/worker"
)

type fixture struct {
	worker   *worker.Worker
	client   *kafkaMocks.MockClient
	stock    *stockMocks.MockStockNotification
	notifier *notificationMocks.MockNotifier
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		client:   kafkaMocks.NewMockClient(ctrl),
		stock:    stockMocks.NewMockStockNotification(ctrl),
		notifier: notificationMocks.NewMockNotifier(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "wbrent-worker"
	cfg.Kafka.Topics.ReservationEvents = "reservation.events"

	f.worker = worker.New(f.client, f.stock, f.notifier, cfg, otelMocks.NewOtel())

	return f
}

func eventMessage(t *testing.T, to model.Status) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(model.ReleasedEvent{
		ReservationID: "res-1",
		ProductID:     "minikoparka",
		From:          model.StatusPickedUp,
		To:            to,
		OccurredAt:    time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return kafkaGo.Message{Topic: "reservation.events", Key: []byte("res-1"), Value: value}
}

func TestWorker_HandleReservationEvent(t *testing.T) {
	t.Run("released product notifies subscribers", func(t *testing.T) {
		f := setup(t)

		f.stock.EXPECT().NotifyReleased(gomock.Any(), "minikoparka").Return(3, nil)

		f.worker.HandleReservationEvent(context.Background(), eventMessage(t, model.StatusReturned))
	})

	t.Run("non releasing status is ignored", func(t *testing.T) {
		f := setup(t)

		f.worker.HandleReservationEvent(context.Background(), eventMessage(t, model.StatusConfirmed))
	})

	t.Run("malformed message is dropped", func(t *testing.T) {
		f := setup(t)

		f.worker.HandleReservationEvent(context.Background(), kafkaGo.Message{Value: []byte("{")})
	})

	t.Run("notify failure is logged", func(t *testing.T) {
		f := setup(t)

		f.stock.EXPECT().NotifyReleased(gomock.Any(), "minikoparka").Return(0, errors.New("db down"))

		f.worker.HandleReservationEvent(context.Background(), eventMessage(t, model.StatusCancelled))
	})
}

func TestWorker_Run(t *testing.T) {
	f := setup(t)

	f.client.EXPECT().Consume(gomock.Any(), "wbrent-worker", "reservation.events", gomock.Any())

	f.worker.Run(context.Background())
}

func TestWorker_RunDrainsHandlersBeforeShutdown(t *testing.T) {
	f := setup(t)

	var handled atomic.Bool

	ctx, cancel := context.WithCancel(context.Background())

	f.client.EXPECT().Consume(gomock.Any(), "wbrent-worker", "reservation.events", gomock.Any()).Do(
		func(ctx context.Context, _, _ string, handler kafka.Handler) {
			handler(ctx, eventMessage(t, model.StatusReturned))
			cancel()
			<-ctx.Done()
		})
	f.stock.EXPECT().NotifyReleased(gomock.Any(), "minikoparka").DoAndReturn(
		func(ctx context.Context, _ string) (int, error) {
			time.Sleep(100 * time.Millisecond)
			handled.Store(ctx.Err() == nil)

			return 1, nil
		})

	gomock.InOrder(
		f.notifier.EXPECT().Wait().Do(func() {
			require.True(t, handled.Load(), "emails drained before the handler finished")
		}),
		f.client.EXPECT().Close().Return(nil),
	)

	f.worker.Run(ctx)
	require.True(t, handled.Load())

	f.worker.Shutdown(context.Background())
}

func TestWorker_Shutdown(t *testing.T) {
	f := setup(t)

	gomock.InOrder(
		f.notifier.EXPECT().Wait(),
		f.client.EXPECT().Close().Return(nil),
	)

	f.worker.Shutdown(context.Background())
}
