package relay_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/hub"
	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
	"github.com/tuanvumaihuynh/inventory-hub/internal/relay"
	"github.com/tuanvumaihuynh/inventory-hub/internal/storage/mq"
)

type fakeProducer struct {
	mu   sync.Mutex
	err  error
	msgs []mq.ProduceMsg
}

func (p *fakeProducer) Produce(_ context.Context, msg mq.ProduceMsg) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *fakeProducer) produced() []mq.ProduceMsg {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]mq.ProduceMsg(nil), p.msgs...)
}

func newHub(t *testing.T) *hub.Hub {
	t.Helper()
	h := hub.New(config.Hub{}, slog.New(slog.DiscardHandler), hub.NewMetrics(prometheus.NewRegistry()))
	t.Cleanup(h.Run(context.Background()))
	return h
}

func TestService_RelaysHubMessages(t *testing.T) {
	h := newHub(t)
	producer := &fakeProducer{}
	svc := relay.NewService("changes", slog.New(slog.DiscardHandler), producer)

	cleanup, err := svc.Run(h)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	h.Broadcast(model.ActionCreate, "p-1", map[string]string{"name": "Milk"})

	require.Eventually(t, func() bool { return len(producer.produced()) == 1 }, time.Second, 5*time.Millisecond)

	msg := producer.produced()[0]
	assert.Equal(t, "changes", msg.Topic)
	require.NotNil(t, msg.PartitionKey)
	assert.Equal(t, "p-1", *msg.PartitionKey)
	assert.Equal(t, hub.EventProductUpdate, msg.Headers["event"])

	var decoded hub.Message
	require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
	assert.Equal(t, hub.EventProductUpdate, decoded.Event)
	assert.Equal(t, "p-1", decoded.ProductID)
}

func TestService_StaysSubscribedOnProduceError(t *testing.T) {
	h := newHub(t)
	producer := &fakeProducer{err: errors.New("broker down")}
	svc := relay.NewService("changes", slog.New(slog.DiscardHandler), producer)

	cleanup, err := svc.Run(h)
	require.NoError(t, err)

	assert.NoError(t, svc.Send(context.Background(), hub.Message{Event: hub.EventProductUpdate}))
	assert.Equal(t, 1, h.Len())

	cleanup()
	assert.Equal(t, 0, h.Len())
}

func TestService_RunTwice(t *testing.T) {
	h := newHub(t)
	svc := relay.NewService("changes", slog.New(slog.DiscardHandler), &fakeProducer{})

	cleanup, err := svc.Run(h)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	_, err = svc.Run(h)
	assert.ErrorIs(t, err, hub.ErrDuplicateSubscriber)
}
