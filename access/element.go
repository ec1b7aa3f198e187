// Package access is the accessibility query surface a traversal engine
// (a screen reader, or a test standing in for one) polls to read a text
// area. Two implementations are provided. Computed answers every query
// from its own buffer on a fixed character grid. Delegating forwards
// every query to a RichTextHost and reports the host's answer unchanged.
// Both log each distinct query once per mutation of the text.
package access

import "github.com/rjkroege/axtoy/coord"

// Role is the accessibility role of an element.
type Role string

const (
	RoleTextArea   Role = "textArea"
	RoleStaticText Role = "staticText"
)

var roleDescriptions = map[Role]string{
	RoleTextArea:   "text entry area",
	RoleStaticText: "text",
}

// RoleDescription returns the human readable description of role.
func RoleDescription(role Role) (string, bool) {
	d, ok := roleDescriptions[role]
	return d, ok
}

// AttributedString is text plus its attributes. Computed reports plain
// text with no attributes.
type AttributedString struct {
	String     string
	Attributes map[string]string
}

// Queries are the read operations of the surface. Optional answers are
// returned with a flag that is false when the answer is absent.
type Queries interface {
	IsElement() bool
	Label() (string, bool)
	Role() (Role, bool)
	RoleDescription() (string, bool)
	Help() (string, bool)
	IsFocused() bool
	Value() (string, bool)
	NumberOfCharacters() int
	SelectedText() (string, bool)
	SelectedTextRange() coord.Range
	// SelectedTextRanges returns nil when absent.
	SelectedTextRanges() []coord.Range
	LineForIndex(q int) int
	RangeForLine(n int) coord.Range
	StringForRange(r coord.Range) (string, bool)
	AttributedStringForRange(r coord.Range) (AttributedString, bool)
	RangeForPoint(p coord.Point) coord.Range
	RangeForIndex(q int) coord.Range
	FrameForRange(r coord.Range) coord.Rect
	InsertionPointLine() int
	VisibleCharacterRange() coord.Range
	Document() (string, bool)
}

// Element is the capability surface a traversal engine sees. The setters
// are part of the platform contract but this surface is read-only to the
// engine: calling any of them panics with a *ContractViolation.
type Element interface {
	Queries
	SetContents(contents []any)
	SetValue(value any)
	SetSelectedTextRange(r coord.Range)
}

// Surface is an Element whose text can be extended.
type Surface interface {
	Element
	Append(s string)
}

// RichTextHost is a text widget with its own layout engine whose default
// answers the Delegating backend reports. Append is the host's own
// content-mutation path.
type RichTextHost interface {
	Queries
	Append(s string)
}
