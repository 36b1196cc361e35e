// Package driven defines the driven ports (infrastructure interfaces)
// that the core services depend on. Adapters under
// internal/adapters/driven implement them.
package driven
