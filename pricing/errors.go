package pricing

import "errors"

// ErrNoBackend is returned by FromName for an unrecognized backend name.
var ErrNoBackend = errors.New("pricing: unknown backend name")
