package access

// Notification tells a traversal engine that something it may have
// cached is stale.
type Notification string

const (
	ValueChanged           Notification = "AXValueChanged"
	SelectedTextChanged    Notification = "AXSelectedTextChanged"
	SelectedRowsChanged    Notification = "AXSelectedRowsChanged"
	SelectedColumnsChanged Notification = "AXSelectedColumnsChanged"
)

// Notifier delivers notifications about an element.
type Notifier interface {
	Post(el Element, n Notification)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(el Element, n Notification)

func (f NotifierFunc) Post(el Element, n Notification) { f(el, n) }

// Notifiers posts to each of its members in order.
type Notifiers []Notifier

func (ns Notifiers) Post(el Element, n Notification) {
	for _, nt := range ns {
		nt.Post(el, n)
	}
}

type nopNotifier struct{}

func (nopNotifier) Post(Element, Notification) {}
