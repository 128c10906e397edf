package navigation

import "github.com/aukilabs/go-tooling/pkg/errors"

// ErrTypeNotConfigured is the error type returned when a key press arrives
// before the context is fully set up.
const ErrTypeNotConfigured = "navigation-not-configured"

func notConfigured(missing string) error {
	return errors.New("navigation context is not configured").
		WithType(ErrTypeNotConfigured).
		WithTag("missing", missing)
}
