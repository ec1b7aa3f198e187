package file

// BufferObserver implementations can register themselves
// with a TextBuffer so the observers can be notified of
// every append made to it.
type BufferObserver interface {

	// Inserted informs the implementer that runes r were appended at position q0.
	Inserted(q0 int, r []rune)
}
