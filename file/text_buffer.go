package file

// TextBuffer is an append-only text store. Line structure is never
// stored here: consumers derive it from the content, or keep their own
// index current by registering a BufferObserver.
type TextBuffer struct {
	b         RuneArray
	observers map[BufferObserver]struct{}
	order     []BufferObserver
}

// NewTextBuffer returns a TextBuffer holding s.
func NewTextBuffer(s string) *TextBuffer {
	return &TextBuffer{
		b: RuneArray([]rune(s)),
	}
}

// AddObserver adds observer to the set notified of appends. The observer
// is first told about any content already present so that it starts in
// step with the buffer.
func (t *TextBuffer) AddObserver(observer BufferObserver) {
	if t.observers == nil {
		t.observers = make(map[BufferObserver]struct{})
	}
	if _, exists := t.observers[observer]; exists {
		return
	}
	t.observers[observer] = struct{}{}
	t.order = append(t.order, observer)
	if t.b.Nc() > 0 {
		observer.Inserted(0, t.b.View(0, t.b.Nc()))
	}
}

// DelObserver removes observer. It reports false if observer was not registered.
func (t *TextBuffer) DelObserver(observer BufferObserver) bool {
	if _, exists := t.observers[observer]; !exists {
		return false
	}
	delete(t.observers, observer)
	for i, o := range t.order {
		if o == observer {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// HasObservers returns true if any observer is registered.
func (t *TextBuffer) HasObservers() bool {
	return len(t.observers) > 0
}

// Append adds s to the end of the buffer and notifies the observers in
// registration order. Appending the empty string is permitted and still
// notifies.
func (t *TextBuffer) Append(s string) {
	r := []rune(s)
	q0 := t.b.Nc()
	t.b.Append(r)
	for _, o := range t.order {
		o.Inserted(q0, t.b.View(q0, q0+len(r)))
	}
}

// Nc returns the number of runes in the buffer.
func (t *TextBuffer) Nc() int { return t.b.Nc() }

// Nbyte returns the UTF-8 size of the buffer.
func (t *TextBuffer) Nbyte() int { return t.b.Nbyte() }

// ReadC returns the rune at q.
func (t *TextBuffer) ReadC(q int) rune { return t.b.ReadC(q) }

// View returns the runes in [q0, q1). The result must not be modified.
func (t *TextBuffer) View(q0, q1 int) []rune { return t.b.View(q0, q1) }

// Substring returns [q0, q1) as a string. The range must be in bounds.
func (t *TextBuffer) Substring(q0, q1 int) string { return t.b.Substring(q0, q1) }

func (t *TextBuffer) String() string { return t.b.String() }
