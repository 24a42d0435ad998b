package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Write(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

func TestDispatcher_DrainsOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: "appointment_booked", EntityID: "a1"})
	d.Dispatch(Event{Action: "appointment_cancelled", EntityID: "a1"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	assert.Equal(t, []string{"appointment_booked", "appointment_cancelled"}, sink.actions())
}

func TestDispatcher_DispatchAfterCloseIsIgnored(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "appointment_booked"})
	})
	assert.Empty(t, sink.actions())
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "appointment_booked"})
	})
}

func TestEncodeMetadata(t *testing.T) {
	assert.Equal(t, "", encodeMetadata(nil))
	assert.JSONEq(t, `{"date":"2024-06-03","time":"09:00"}`,
		encodeMetadata(map[string]string{"date": "2024-06-03", "time": "09:00"}))
}
