package storefront

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/junaidrashid-git/menu-api/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardSink struct{}

func (discardSink) Send(context.Context, analytics.Event) error { return nil }

func newTestSessions(capacity int, ttl time.Duration) *Sessions {
	return NewSessions(capacity, ttl, analytics.NewClient(discardSink{}, nil))
}

func TestSessions_OpenAndGet(t *testing.T) {
	sessions := newTestSessions(10, time.Hour)

	sess := sessions.Open("store-1", "lanchonete")
	require.NotEmpty(t, sess.ID)
	assert.NotNil(t, sess.Tracker)
	assert.True(t, sess.Cart().IsEmpty())
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)

	got, ok := sessions.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, sessions.Len())
}

func TestSessions_GetUnknown(t *testing.T) {
	sessions := newTestSessions(10, time.Hour)

	_, ok := sessions.Get("")
	assert.False(t, ok)
	_, ok = sessions.Get("missing")
	assert.False(t, ok)
}

func TestSessions_Close(t *testing.T) {
	sessions := newTestSessions(10, time.Hour)
	sess := sessions.Open("store-1", "loja")

	sessions.Close(sess.ID)

	_, ok := sessions.Get(sess.ID)
	assert.False(t, ok)
}

func TestSessions_Expire(t *testing.T) {
	sessions := newTestSessions(10, 20*time.Millisecond)
	sess := sessions.Open("store-1", "loja")

	assert.Eventually(t, func() bool {
		_, ok := sessions.Get(sess.ID)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestSessions_EvictsOldestOverCapacity(t *testing.T) {
	sessions := newTestSessions(2, time.Hour)
	first := sessions.Open("s", "loja")
	sessions.Open("s", "loja")
	sessions.Open("s", "loja")

	_, ok := sessions.Get(first.ID)
	assert.False(t, ok)
	assert.Equal(t, 2, sessions.Len())
}

func TestSessions_TrackersAreIndependent(t *testing.T) {
	sessions := newTestSessions(10, time.Hour)
	a := sessions.Open("s", "loja")
	b := sessions.Open("s", "loja")

	assert.True(t, a.Tracker.TrackVisit("s", "loja"))
	assert.False(t, a.Tracker.TrackVisit("s", "loja"))
	assert.True(t, b.Tracker.TrackVisit("s", "loja"))
}

func TestSession_ConcurrentUpdates(t *testing.T) {
	sessions := newTestSessions(10, time.Hour)
	sess := sessions.Open("s", "loja")
	item := priced("a", 2)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Update(func(c Cart) Cart { return c.Add(item) })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, sess.Cart().Quantity("a"))
	assert.Equal(t, "100", sess.Cart().Total().String())
}
