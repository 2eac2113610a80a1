package realtime

import (
	"context"
	"sync"
)

// Changes is a stream of change notifications. *mongo.ChangeStream satisfies
// it directly.
type Changes interface {
	Next(ctx context.Context) bool
	Close(ctx context.Context) error
}

// WatchFunc opens a change stream for one logical subscription key.
type WatchFunc func(ctx context.Context) (Changes, error)

// DeliverFunc is called after each change with the re-queried result set.
type DeliverFunc func(ctx context.Context)

type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Manager holds at most one live change-stream subscription per key. A new
// Subscribe on the same key tears the old one down and waits for its
// goroutine to exit before starting the replacement, so two streams never
// deliver for the same key at once.
type Manager struct {
	mu   sync.Mutex
	subs map[string]*subscription
}

func NewManager() *Manager {
	return &Manager{subs: make(map[string]*subscription)}
}

// Subscribe opens a change stream for key and invokes deliver after every
// change until the stream ends or the subscription is replaced or cancelled.
// deliver is also invoked once immediately so the subscriber starts from the
// current state.
func (m *Manager) Subscribe(ctx context.Context, key string, watch WatchFunc, deliver DeliverFunc) error {
	subCtx, cancel := context.WithCancel(ctx)

	changes, err := watch(subCtx)
	if err != nil {
		cancel()
		return err
	}

	sub := &subscription{cancel: cancel, done: make(chan struct{})}

	m.mu.Lock()
	if old, ok := m.subs[key]; ok {
		old.cancel()
		<-old.done
	}
	m.subs[key] = sub
	m.mu.Unlock()

	go func() {
		deliver(subCtx)
		for changes.Next(subCtx) {
			deliver(subCtx)
		}

		// done must close before taking the lock: a replacing Subscribe
		// waits on done while holding it.
		changes.Close(context.Background())
		close(sub.done)

		m.mu.Lock()
		if m.subs[key] == sub {
			delete(m.subs, key)
		}
		m.mu.Unlock()
	}()

	return nil
}

// Cancel stops the subscription for key, if any, and waits for it to finish.
func (m *Manager) Cancel(key string) {
	m.mu.Lock()
	sub, ok := m.subs[key]
	if ok {
		delete(m.subs, key)
	}
	m.mu.Unlock()

	if ok {
		sub.cancel()
		<-sub.done
	}
}

// Wait blocks until the subscription for key ends. It returns immediately if
// no subscription is live.
func (m *Manager) Wait(key string) {
	m.mu.Lock()
	sub, ok := m.subs[key]
	m.mu.Unlock()

	if ok {
		<-sub.done
	}
}
