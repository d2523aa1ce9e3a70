package service

// Notifier surfaces a user-facing notice, e.g. a session-expiry
// banner. Implementations decide the channel; callers only supply the
// message. Debouncing of repeated notices is the caller's concern.
type Notifier interface {
	Notify(message string)
}
