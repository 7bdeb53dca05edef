// Package middleware composes cross-cutting behavior around a
// ports.SnapshotStore without the adapters knowing about it.
package middleware

import "github.com/fourline/fourline/pkg/ports"

// Middleware wraps a SnapshotStore to add behavior.
type Middleware func(ports.SnapshotStore) ports.SnapshotStore

// Chain wraps store with the given middlewares. The first middleware listed
// becomes the outermost layer.
func Chain(store ports.SnapshotStore, middlewares ...Middleware) ports.SnapshotStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
