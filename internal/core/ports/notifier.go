package ports

// Notifier is the shell-facing feedback channel. Notify is fire-and-forget:
// the core never waits for delivery and never learns whether anyone listened.
type Notifier interface {
	Notify(message string, isError bool)
}
