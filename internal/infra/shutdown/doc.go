// Package shutdown stops long-running commands on SIGINT or SIGTERM.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx := h.Context(context.Background())
//	h.OnShutdown(func(ctx context.Context) error { return w.Close() })
//	go run(ctx)
//	return h.Wait(ctx)
package shutdown
