// Package form builds editable forms from field descriptors. The Builder
// resolves one delegate per field through the registry, invokes its widget
// and validator factories exactly once, and returns a Form that routes
// later synchronization calls to the typed or generic path based on the
// static capability of each widget. Unresolvable fields abort construction;
// a partially built form is never returned.
package form
