// Package delegate defines the per-field strategy that bridges one schema
// field to its form widget. A delegate creates the default widget for the
// field's declared type, optionally creates a validator, and synchronizes
// the value between the form state and the widget in both directions.
//
// Synchronization runs over two mutually exclusive paths. Widgets exposing
// the canonical text accessor use the typed path, whose default copies text
// verbatim; widgets without one use the generic path, whose default opts
// out with SyncNotHandled so that non-participation is an explicit signal
// rather than a silent fallthrough. The Registry maps declared types to
// built-in delegates and accepts per-field and per-type overrides, resolved
// in that order.
package delegate
