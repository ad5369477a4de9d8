// Package metrics serves live runtime charts (heap, goroutines, GC) for a
// running game.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/arl/statsviz"
)

// Handler returns a mux with the statsviz UI mounted at /debug/statsviz/.
func Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return nil, fmt.Errorf("failed to register statsviz: %w", err)
	}
	return mux, nil
}

// Serve blocks serving Handler on addr.
func Serve(addr string) error {
	h, err := Handler()
	if err != nil {
		return err
	}
	return http.ListenAndServe(addr, h)
}

// Start runs Serve in the background when port is non-zero. Failures are
// reported to onErr.
func Start(port int, onErr func(error)) {
	if port == 0 {
		return
	}
	go func() {
		if err := Serve(fmt.Sprintf("0.0.0.0:%d", port)); err != nil && onErr != nil {
			onErr(err)
		}
	}()
}
