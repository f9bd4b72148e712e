package kafka_test

import (
	"testing"
	"time"
	"wbrent/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	ReservationID string    `json:"reservationId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func TestMessageRoundTrip(t *testing.T) {
	at := time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC)
	msg := kafka.Message{Key: "res-1", Value: event{ReservationID: "res-1", OccurredAt: at}}

	raw, err := msg.ToKafkaMessage("reservation.events")
	require.NoError(t, err)

	assert.Equal(t, "reservation.events", raw.Topic)
	assert.Equal(t, []byte("res-1"), raw.Key)
	assert.JSONEq(t, `{"reservationId":"res-1","occurredAt":"2026-01-21T10:00:00Z"}`, string(raw.Value))

	decoded, err := kafka.Decode[event](raw)
	require.NoError(t, err)
	assert.Equal(t, "res-1", decoded.ReservationID)
	assert.True(t, at.Equal(decoded.OccurredAt))
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("t")

	assert.Error(t, err)
}

func TestDecode_Garbage(t *testing.T) {
	raw, err := (&kafka.Message{Key: "k", Value: "plain"}).ToKafkaMessage("t")
	require.NoError(t, err)

	_, err = kafka.Decode[event](raw)

	assert.Error(t, err)
}
