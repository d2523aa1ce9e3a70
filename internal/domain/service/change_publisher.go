// Package service declares the ports consumed by the use cases and
// implemented under internal/infra.
package service

// ChangeListener receives the key of a storage slot that just changed.
// The event carries identity only, never a payload diff; listeners are
// expected to re-query the owning service themselves.
type ChangeListener func(key string)

// ChangePublisher is the process-wide publish point fired after every
// successful record-store mutation. Publishing is fire-and-forget:
// there is no acknowledgement, no delivery guarantee, and listeners
// not subscribed at call time simply miss the event.
type ChangePublisher interface {
	// StorageChanged announces that the collection under key changed.
	StorageChanged(key string)

	// Subscribe registers a listener and returns its deregistration
	// function. Deregistering twice is a no-op.
	Subscribe(listener ChangeListener) (unsubscribe func())
}
