package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
	panics bool
}

func (s *recordingSink) Send(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.panics {
		panic("sink exploded")
	}
	s.events = append(s.events, event)
	return s.err
}

func (s *recordingSink) received() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func TestTrackVisit_FiresOnce(t *testing.T) {
	sink := &recordingSink{}
	client := NewClient(sink, nil)
	tracker := client.NewTracker()

	assert.True(t, tracker.TrackVisit("store-1", "lanchonete"))
	assert.False(t, tracker.TrackVisit("store-1", "lanchonete"))
	assert.False(t, tracker.TrackVisit("store-2", "outra"), "later calls are suppressed whatever their arguments")
	client.Wait()

	events := sink.received()
	require.Len(t, events, 1)
	assert.Equal(t, Event{
		StoreID: "store-1",
		Event:   EventVisit,
		Data:    map[string]any{"slug": "lanchonete"},
	}, events[0])
}

func TestTrackVisit_ConcurrentCallsFireOnce(t *testing.T) {
	sink := &recordingSink{}
	client := NewClient(sink, nil)
	tracker := client.NewTracker()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tracker.TrackVisit("store-1", "loja") {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	client.Wait()

	assert.Equal(t, 1, won)
	assert.Len(t, sink.received(), 1)
}

func TestTrackInteraction_CopiesPayload(t *testing.T) {
	sink := &recordingSink{}
	client := NewClient(sink, nil)
	tracker := client.NewTracker()

	payload := map[string]any{"type": ClickOrder}
	tracker.TrackInteraction("store-1", EventWhatsAppClick, payload)
	tracker.TrackInteraction("store-1", EventWhatsAppClick, payload)
	payload["type"] = "mutated"
	client.Wait()

	events := sink.received()
	require.Len(t, events, 2, "interactions are never de-duplicated")
	for _, e := range events {
		assert.Equal(t, EventWhatsAppClick, e.Event)
		assert.Equal(t, ClickOrder, e.Data["type"])
	}
}

func TestTrackInteraction_NilPayload(t *testing.T) {
	sink := &recordingSink{}
	client := NewClient(sink, nil)

	client.NewTracker().TrackInteraction("store-1", EventWhatsAppClick, nil)
	client.Wait()

	events := sink.received()
	require.Len(t, events, 1)
	assert.NotNil(t, events[0].Data)
	assert.Empty(t, events[0].Data)
}

func TestSendFailure_IsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sink := &recordingSink{err: errors.New("connection refused")}
	client := NewClient(sink, zap.New(core))
	tracker := client.NewTracker()

	assert.NotPanics(t, func() {
		assert.True(t, tracker.TrackVisit("store-1", "loja"))
	})
	client.Wait()

	entries := logs.FilterMessage("analytics event dropped").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "store-1", fields["store_id"])
	assert.Equal(t, EventVisit, fields["event"])
	assert.Equal(t, "connection refused", fields["error"])
}

func TestSinkPanic_IsRecovered(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	client := NewClient(&recordingSink{panics: true}, zap.New(core))

	client.NewTracker().TrackInteraction("store-1", EventWhatsAppClick, map[string]any{"type": ClickContact})
	client.Wait()

	assert.Equal(t, 1, logs.FilterMessage("analytics sink panicked").Len())
}

func TestIsKnownEvent(t *testing.T) {
	assert.True(t, IsKnownEvent(EventVisit))
	assert.True(t, IsKnownEvent(EventWhatsAppClick))
	assert.False(t, IsKnownEvent("purchase"))
	assert.False(t, IsKnownEvent(""))
}
