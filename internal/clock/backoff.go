package clock

import "time"

// Backoff yields exponentially growing delays between Min and Max.
// The zero value is not usable; use NewBackoff.
type Backoff struct {
	min, max time.Duration
	next     time.Duration
}

func NewBackoff(min, max time.Duration) *Backoff {
	if min <= 0 {
		min = time.Millisecond
	}
	if max < min {
		max = min
	}
	return &Backoff{min: min, max: max, next: min}
}

// Next returns the current delay and doubles it for the following call.
func (b *Backoff) Next() time.Duration {
	d := b.next
	if b.next < b.max {
		b.next *= 2
		if b.next > b.max {
			b.next = b.max
		}
	}
	return d
}

// Reset restarts the sequence at Min.
func (b *Backoff) Reset() {
	b.next = b.min
}
