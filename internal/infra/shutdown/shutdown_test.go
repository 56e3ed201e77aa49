package shutdown

import (
	"context"
	"errors"
	"sync"
	"syscall"
	"testing"
	"time"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler(5 * time.Second)
	if h.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", h.timeout)
	}
	if h.hooks == nil {
		t.Error("hooks should be initialized")
	}
	select {
	case <-h.Done():
		t.Error("Done() closed before Wait")
	default:
	}
}

func waitResult(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() did not complete in time")
		return nil
	}
}

func TestHandler_Wait_Trigger(t *testing.T) {
	h := NewHandler(time.Second)

	var mu sync.Mutex
	var order []int
	for i := 1; i <= 3; i++ {
		h.OnShutdown(func(ctx context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
	}

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait(context.Background()) }()
	h.Trigger()

	if err := waitResult(t, errCh); err != nil {
		t.Errorf("Wait() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("hooks called in order %v, want [3 2 1]", order)
	}

	select {
	case <-h.Done():
	default:
		t.Error("Done channel should be closed after Wait completes")
	}
}

func TestHandler_Wait_Signal(t *testing.T) {
	h := NewHandler(time.Second)

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait(context.Background()) }()

	// Give Wait time to set up signal handler
	time.Sleep(50 * time.Millisecond)
	syscall.Kill(syscall.Getpid(), syscall.SIGTERM)

	if err := waitResult(t, errCh); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}

func TestHandler_Wait_ContextDone(t *testing.T) {
	h := NewHandler(time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait(ctx) }()
	cancel()

	if err := waitResult(t, errCh); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}

func TestHandler_Wait_HookError(t *testing.T) {
	h := NewHandler(time.Second)
	hookErr := errors.New("hook error")

	called := false
	h.OnShutdown(func(ctx context.Context) error {
		called = true
		return nil
	})
	h.OnShutdown(func(ctx context.Context) error { return hookErr })

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait(context.Background()) }()
	h.Trigger()

	if err := waitResult(t, errCh); !errors.Is(err, hookErr) {
		t.Errorf("Wait() error = %v, want %v", err, hookErr)
	}
	if !called {
		t.Error("hook after the failing one was not called")
	}
}

func TestHandler_Context(t *testing.T) {
	h := NewHandler(time.Second)
	ctx := h.Context(context.Background())

	select {
	case <-ctx.Done():
		t.Fatal("context canceled before shutdown")
	default:
	}

	h.Trigger()
	h.Trigger()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled after Trigger")
	}
}

func TestHandler_ConcurrentOnShutdown(t *testing.T) {
	h := NewHandler(5 * time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.OnShutdown(func(ctx context.Context) error { return nil })
		}()
	}
	wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.hooks) != 10 {
		t.Errorf("expected 10 hooks, got %d", len(h.hooks))
	}
}
