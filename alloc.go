package mysqlq

import "math"

// DefaultCeiling is the largest number an Allocator hands out before wrapping to 1.
const DefaultCeiling = math.MaxInt32

// Allocator produces the numbers behind table aliases (T<n>) and bind names (value_<n>).
// Both come from the same sequence, so within one session no alias number is reused as a bind number.
//
// An Allocator is not safe for concurrent use; every Session owns its own.
type Allocator struct {
	next    int
	ceiling int
	wraps   int
	spent   bool // the ceiling was handed out; the next call restarts at 1
}

// NewAllocator returns an allocator that starts at 1 and wraps back to 1 once ceiling has been handed out.
// A non-positive ceiling means DefaultCeiling.
func NewAllocator(ceiling int) *Allocator {
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	return &Allocator{next: 1, ceiling: ceiling}
}

// Allocate returns the next number in the sequence.
// Numbers are distinct until the sequence wraps.
func (a *Allocator) Allocate() int {
	if a.ceiling <= 0 {
		a.ceiling = DefaultCeiling
	}
	if a.next < 1 {
		a.next = 1
	}
	if a.spent {
		a.next, a.spent = 1, false
		a.wraps++
	}
	n := a.next
	if n >= a.ceiling {
		a.spent = true
	} else {
		a.next++
	}
	return n
}

// Wraps reports how many times the sequence restarted from 1 after handing out the ceiling.
func (a *Allocator) Wraps() int { return a.wraps }
