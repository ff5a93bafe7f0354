// Package timing measures how long named sections of work take.
package timing

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Measure starts a timer for the named section. The returned function stops
// it, logs "<ms> ms <name>" and returns the elapsed time. Calling it more
// than once logs again with the time measured from the same start.
//
//	defer timing.Measure(logger, "render")()
func Measure(logger core.Logger, name string) func() time.Duration {
	if logger == nil {
		logger = core.NopLogger{}
	}
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		logger.Printf("%d ms %s", elapsed.Milliseconds(), name)
		return elapsed
	}
}

// Func runs fn inside a measured section and returns its error
func Func(logger core.Logger, name string, fn func() error) (time.Duration, error) {
	stop := Measure(logger, name)
	err := fn()
	return stop(), err
}
