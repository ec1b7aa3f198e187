// Package driver feeds a surface its text one scripted stage at a time.
package driver

// Appender receives the text of each stage.
type Appender interface {
	Append(s string)
}

// Beeper signals that a trigger had nothing left to do.
type Beeper interface {
	Beep()
}

// DefaultStages is a shell exchange: a prompt and command, the newline
// that submits it, the command's output, and the next prompt.
var DefaultStages = []string{
	"> Date",
	"\n",
	"Monday December 1\n",
	"> ",
}

// Driver appends its stages in order, one per Advance.
type Driver struct {
	target Appender
	bell   Beeper
	stages []string
	next   int
}

// New returns a Driver for target. With no stages it uses DefaultStages.
func New(target Appender, bell Beeper, stages ...string) *Driver {
	if len(stages) == 0 {
		stages = DefaultStages
	}
	return &Driver{
		target: target,
		bell:   bell,
		stages: append([]string(nil), stages...),
	}
}

// Advance appends the next stage and reports true. Once every stage has
// been appended it rings the bell instead and reports false.
func (d *Driver) Advance() bool {
	if d.next >= len(d.stages) {
		if d.bell != nil {
			d.bell.Beep()
		}
		return false
	}
	s := d.stages[d.next]
	d.next++
	d.target.Append(s)
	return true
}

// Remaining returns the number of stages not yet appended.
func (d *Driver) Remaining() int { return len(d.stages) - d.next }
