package delegate

import "errors"

// ErrNoDelegate signals a configuration error: a field's declared type has
// no built-in delegate and no override was registered. It surfaces at form
// construction time and is not recoverable by this layer.
var ErrNoDelegate = errors.New("delegate: no delegate available")
