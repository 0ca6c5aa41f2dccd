// Package timing measures whole-run wall-clock time at microsecond precision.
package timing

import (
	"fmt"
	"time"
)

const usecPerSec = 1000000

// Timeval is a wall-clock instant or span split into seconds and microseconds
type Timeval struct {
	Sec  int64
	Usec int64 // 0 <= Usec < 1000000
}

// FromTime converts t to a Timeval truncated to microseconds.
func FromTime(t time.Time) Timeval {
	return Timeval{Sec: t.Unix(), Usec: int64(t.Nanosecond() / 1000)}
}

// Diff returns x - y. When x's microsecond component is smaller than y's,
// one second is borrowed and 1000000 added to the microsecond difference.
func Diff(x, y Timeval) Timeval {
	udiff := x.Usec - y.Usec
	res := Timeval{Sec: x.Sec - y.Sec, Usec: udiff}
	if udiff < 0 {
		res.Sec--
		res.Usec += usecPerSec
	}
	return res
}

// Duration converts the span to a time.Duration.
func (tv Timeval) Duration() time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}

// String formats the span as seconds with six fractional digits.
func (tv Timeval) String() string {
	return fmt.Sprintf("%d.%06d", tv.Sec, tv.Usec)
}

// Clock returns the current time
type Clock func() time.Time

// Stopwatch captures a start instant and reports the span to a later one
type Stopwatch struct {
	clock Clock
	begin Timeval
}

// Start begins measuring with clock. A nil clock uses time.Now.
func Start(clock Clock) *Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	return &Stopwatch{clock: clock, begin: FromTime(clock())}
}

// Elapsed returns the span between Start and now.
func (s *Stopwatch) Elapsed() Timeval {
	return Diff(FromTime(s.clock()), s.begin)
}
