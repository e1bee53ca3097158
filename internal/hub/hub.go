// Package hub fans product change notifications out to connected
// subscribers.
//
// Publishing never blocks: messages go into a bounded inbox drained by a
// single dispatcher, which copies each message into the bounded queue of
// every subscriber in the target groups. Each subscriber has its own writer
// goroutine, so a slow connection only ever loses its own messages.
// Delivery is best-effort and at-most-once.
package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/model"
)

var (
	ErrUnknownSubscriber   = errors.New("unknown subscriber")
	ErrDuplicateSubscriber = errors.New("subscriber already registered")
)

// Conn is a subscriber connection. Send is only ever called from one
// goroutine at a time; Close is called once, after the last Send.
type Conn interface {
	ID() string
	Send(ctx context.Context, msg Message) error
	Close() error
}

type subscriber struct {
	conn   Conn
	queue  chan Message
	groups map[string]struct{}
}

type Hub struct {
	logger    *slog.Logger
	metrics   *Metrics
	queueSize int
	inbox     chan Message
	now       func() time.Time

	// sendCtx is handed to Conn.Send and cancelled on shutdown.
	sendCtx    context.Context
	cancelSend context.CancelFunc

	mu          sync.RWMutex
	subscribers map[string]*subscriber
	groups      map[string]map[string]struct{}
	writers     sync.WaitGroup
}

func New(cfg config.Hub, logger *slog.Logger, metrics *Metrics) *Hub {
	inboxSize := cfg.InboxSize
	if inboxSize <= 0 {
		inboxSize = 256
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}

	sendCtx, cancel := context.WithCancel(context.Background())

	return &Hub{
		logger:      logger.With(slog.String("service", "hub")),
		metrics:     metrics,
		queueSize:   queueSize,
		inbox:       make(chan Message, inboxSize),
		now:         func() time.Time { return time.Now().UTC() },
		sendCtx:     sendCtx,
		cancelSend:  cancel,
		subscribers: make(map[string]*subscriber),
		groups:      make(map[string]map[string]struct{}),
	}
}

type CleanupFunc func()

// Run starts the dispatcher. The returned cleanup stops it, disconnects
// every subscriber and waits for their writers to finish.
func (h *Hub) Run(ctx context.Context) CleanupFunc {
	ctx, cancel := context.WithCancel(ctx)

	stoppedChan := make(chan struct{})
	go func() {
		defer close(stoppedChan)
		h.run(ctx)
	}()

	return func() {
		cancel()
		<-stoppedChan

		h.mu.RLock()
		ids := make([]string, 0, len(h.subscribers))
		for id := range h.subscribers {
			ids = append(ids, id)
		}
		h.mu.RUnlock()

		for _, id := range ids {
			h.Unsubscribe(id)
		}

		h.cancelSend()
		h.writers.Wait()
	}
}

func (h *Hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-h.inbox:
			h.dispatch(msg)
		}
	}
}

func (h *Hub) dispatch(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, group := range msg.groups {
		for id := range h.groups[group] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			sub, ok := h.subscribers[id]
			if !ok {
				continue
			}

			// queues are only closed under the write lock, so this send is safe
			select {
			case sub.queue <- msg:
			default:
				h.metrics.Dropped.WithLabelValues("subscriber_queue_full").Inc()
				h.logger.Warn("subscriber queue full, dropping message",
					slog.String("subscriber_id", id),
					slog.String("event", msg.Event),
				)
			}
		}
	}
}

// Subscribe registers conn and joins it to AllProductsGroup.
func (h *Hub) Subscribe(conn Conn) error {
	id := conn.ID()
	sub := &subscriber{
		conn:   conn,
		queue:  make(chan Message, h.queueSize),
		groups: make(map[string]struct{}),
	}

	h.mu.Lock()
	if _, exists := h.subscribers[id]; exists {
		h.mu.Unlock()
		return fmt.Errorf("subscribe %s: %w", id, ErrDuplicateSubscriber)
	}
	h.subscribers[id] = sub
	h.joinLocked(sub, id, AllProductsGroup)
	h.writers.Add(1)
	h.mu.Unlock()

	h.metrics.Subscribers.Inc()
	h.logger.Debug("subscriber connected", slog.String("subscriber_id", id))

	go h.write(sub)

	return nil
}

// Unsubscribe removes the subscriber from the registry and all its groups.
// Unknown ids are ignored, so it is safe to call more than once.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subscribers, id)
	for group := range sub.groups {
		delete(h.groups[group], id)
	}
	close(sub.queue)
	h.mu.Unlock()

	h.metrics.Subscribers.Dec()
	h.logger.Debug("subscriber disconnected", slog.String("subscriber_id", id))
}

func (h *Hub) write(sub *subscriber) {
	defer h.writers.Done()
	defer func() {
		if err := sub.conn.Close(); err != nil {
			h.logger.Debug("error closing subscriber connection",
				slog.String("subscriber_id", sub.conn.ID()),
				slog.Any("error", err),
			)
		}
	}()

	for msg := range sub.queue {
		if err := sub.conn.Send(h.sendCtx, msg); err != nil {
			h.metrics.Dropped.WithLabelValues("send_failed").Inc()
			h.logger.Warn("error sending to subscriber, disconnecting",
				slog.String("subscriber_id", sub.conn.ID()),
				slog.String("event", msg.Event),
				slog.Any("error", err),
			)
			h.Unsubscribe(sub.conn.ID())
			return
		}
		h.metrics.Delivered.Inc()
	}
}

// JoinGroup adds the subscriber to group, creating the group if needed.
func (h *Hub) JoinGroup(id, group string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[id]
	if !ok {
		return fmt.Errorf("join group %s: %w", group, ErrUnknownSubscriber)
	}
	h.joinLocked(sub, id, group)
	return nil
}

func (h *Hub) joinLocked(sub *subscriber, id, group string) {
	members, ok := h.groups[group]
	if !ok {
		members = make(map[string]struct{})
		h.groups[group] = members
	}
	members[id] = struct{}{}
	sub.groups[group] = struct{}{}
}

// LeaveGroup removes the subscriber from group. Empty groups are kept.
func (h *Hub) LeaveGroup(id, group string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[id]
	if !ok {
		return fmt.Errorf("leave group %s: %w", group, ErrUnknownSubscriber)
	}
	delete(h.groups[group], id)
	delete(sub.groups, group)
	return nil
}

// Broadcast announces a product mutation to AllProductsGroup and to the
// product's own group.
func (h *Hub) Broadcast(action model.Action, productID string, payload any) {
	h.publish(Message{
		Event:     EventProductUpdate,
		ProductID: productID,
		Data: ProductUpdate{
			Type:      action,
			ID:        productID,
			Data:      payload,
			Timestamp: h.now(),
		},
		groups: []string{AllProductsGroup, ProductGroup(productID)},
	})
}

// PublishActivity announces a new journal entry to AllProductsGroup.
func (h *Hub) PublishActivity(activity model.Activity) {
	h.publish(Message{
		Event:     EventActivityUpdate,
		ProductID: activity.ProductID,
		Data:      activity,
		groups:    []string{AllProductsGroup},
	})
}

func (h *Hub) publish(msg Message) {
	select {
	case h.inbox <- msg:
		h.metrics.Published.Inc()
	default:
		h.metrics.Dropped.WithLabelValues("inbox_full").Inc()
		h.logger.Warn("hub inbox full, dropping message",
			slog.String("event", msg.Event),
			slog.String("product_id", msg.ProductID),
		)
	}
}

// Len returns the number of connected subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// GroupLen returns the number of members in group.
func (h *Hub) GroupLen(group string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[group])
}
