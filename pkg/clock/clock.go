package clock

import "time"

// IClock abstracts wall-clock reads so statistics windows can be pinned in
// tests instead of depending on the machine's current month.
type IClock interface {
	Now() time.Time
}

type realClock struct{}

func New() IClock {
	return &realClock{}
}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) IClock {
	return &fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}
