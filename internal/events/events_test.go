package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"demo/ordermanager/internal/logger"
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

func TestPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &Publisher{w: w, log: logger.NewNop()}

	p.Publish(context.Background(), OrderCreated, 7)

	require.Len(t, w.messages, 1)
	require.Equal(t, "7", string(w.messages[0].Key))

	var evt Event
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &evt))
	require.Equal(t, OrderCreated, evt.Type)
	require.Equal(t, int64(7), evt.OrderID)
	require.False(t, evt.At.IsZero())
}

func TestPublish_WriterFailureIsSwallowed(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unreachable")}
	p := &Publisher{w: w, log: logger.NewNop()}

	// Must not panic or surface the error to the caller.
	p.Publish(context.Background(), OrderDeleted, 7)
	require.Empty(t, w.messages)
}

func TestCloseWithoutCloser(t *testing.T) {
	p := &Publisher{w: &fakeWriter{}, log: logger.NewNop()}
	require.NoError(t, p.Close())
}
