package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newTestProducer(w *fakeWriter) *Producer {
	return &Producer{
		writer: w,
		logger: ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}),
		topic:  "clover.migrations",
	}
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newTestProducer(w)

	err := p.Publish(context.Background(), "4698", "project.migrated", map[string]any{"areas": 2})
	require.NoError(t, err)

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "clover.migrations", msg.Topic)
	assert.Equal(t, "4698", string(msg.Key))
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "project.migrated", string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.EqualValues(t, 2, body["areas"])
}

func TestProducer_PublishError(t *testing.T) {
	p := newTestProducer(&fakeWriter{err: errors.New("broker down")})

	err := p.Publish(context.Background(), "1", "project.migrated", struct{}{})
	assert.EqualError(t, err, "broker down")
}

func TestProducer_PingWithoutBrokers(t *testing.T) {
	p := newTestProducer(&fakeWriter{})
	assert.Error(t, p.Ping(context.Background()))
}
