package analytics

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	EventVisit         = "visit"
	EventWhatsAppClick = "whatsapp_click"
)

// Sub-types of EventWhatsAppClick, carried in the payload's "type" field.
const (
	ClickOrder   = "order"
	ClickContact = "contact"
)

const defaultSendTimeout = 5 * time.Second

type Event struct {
	StoreID string         `json:"storeId"`
	Event   string         `json:"event"`
	Data    map[string]any `json:"data"`
}

func IsKnownEvent(event string) bool {
	return event == EventVisit || event == EventWhatsAppClick
}

// Sink receives analytics events. The tracker only cares whether Send failed.
type Sink interface {
	Send(ctx context.Context, event Event) error
}

// Client owns the sink and the in-flight sends shared by every Tracker it creates.
type Client struct {
	sink    Sink
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewClient(sink Sink, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{sink: sink, logger: logger, timeout: defaultSendTimeout}
}

// NewTracker returns a tracker for one mounted storefront page.
func (c *Client) NewTracker() *Tracker {
	return &Tracker{client: c}
}

// Wait blocks until every send issued so far has finished.
func (c *Client) Wait() {
	c.wg.Wait()
}

func (c *Client) send(event Event) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				c.logger.Error("analytics sink panicked",
					zap.String("store_id", event.StoreID),
					zap.String("event", event.Event),
					zap.String("panic", fmt.Sprint(r)))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		if err := c.sink.Send(ctx, event); err != nil {
			c.logger.Warn("analytics event dropped",
				zap.String("store_id", event.StoreID),
				zap.String("event", event.Event),
				zap.Error(err))
		}
	}()
}

// Tracker emits fire-and-forget events for one page mount. TrackVisit fires at most
// once per Tracker: the first call wins and later calls are suppressed whatever their
// arguments. The flag is never reset.
type Tracker struct {
	client  *Client
	visited atomic.Bool
}

// TrackVisit reports whether this call issued the visit event.
func (t *Tracker) TrackVisit(storeID, slug string) bool {
	if !t.visited.CompareAndSwap(false, true) {
		return false
	}
	t.client.send(Event{
		StoreID: storeID,
		Event:   EventVisit,
		Data:    map[string]any{"slug": slug},
	})
	return true
}

func (t *Tracker) TrackInteraction(storeID, kind string, payload map[string]any) {
	data := maps.Clone(payload)
	if data == nil {
		data = map[string]any{}
	}
	t.client.send(Event{StoreID: storeID, Event: kind, Data: data})
}
