// Package selftest holds the suite the bbunit binary runs: unit tests for
// the harness's own building blocks.
package selftest

import (
	"time"

	"bbunit/internal/domain"
	"bbunit/internal/registry"
	"bbunit/internal/timing"
)

// Register adds every built-in test to b in a fixed order.
func Register(b *registry.Builder) {
	b.Add("timeval_diff_no_borrow", testTimevalDiffNoBorrow)
	b.Add("timeval_diff_borrow", testTimevalDiffBorrow)
	b.Add("timeval_string", testTimevalString)
	b.Add("timeval_from_time", testTimevalFromTime)
	b.Add("match_name_wildcard", testMatchNameWildcard)
	b.Add("match_name_substring", testMatchNameSubstring)
	b.Add("registry_pop_order", testRegistryPopOrder)
	b.Add("registry_count_monotonic", testRegistryCountMonotonic)
	b.Add("handle_fail_idempotent", testHandleFailIdempotent)
}

func expectTimeval(t *domain.T, got, want timing.Timeval) {
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func testTimevalDiffNoBorrow(t *domain.T) {
	got := timing.Diff(timing.Timeval{Sec: 10, Usec: 500000}, timing.Timeval{Sec: 8, Usec: 200000})
	expectTimeval(t, got, timing.Timeval{Sec: 2, Usec: 300000})
}

func testTimevalDiffBorrow(t *domain.T) {
	got := timing.Diff(timing.Timeval{Sec: 10, Usec: 100000}, timing.Timeval{Sec: 8, Usec: 900000})
	expectTimeval(t, got, timing.Timeval{Sec: 1, Usec: 200000})
}

func testTimevalString(t *domain.T) {
	if s := (timing.Timeval{Sec: 3, Usec: 42}).String(); s != "3.000042" {
		t.Errorf("got %q, want %q", s, "3.000042")
	}
}

func testTimevalFromTime(t *domain.T) {
	got := timing.FromTime(time.Unix(5, 999999999))
	expectTimeval(t, got, timing.Timeval{Sec: 5, Usec: 999999})
}

func testMatchNameWildcard(t *domain.T) {
	if !registry.MatchName("timeval_diff_borrow", "timeval_*") {
		t.Errorf("prefix wildcard did not match")
	}
	if registry.MatchName("registry_pop_order", "timeval_*") {
		t.Errorf("prefix wildcard matched an unrelated name")
	}
}

func testMatchNameSubstring(t *domain.T) {
	if !registry.MatchName("registry_pop_order", "pop") {
		t.Errorf("substring pattern did not match")
	}
}

func testRegistryPopOrder(t *domain.T) {
	noop := func(*domain.T) {}
	r := registry.New()
	r.Add("first", noop)
	r.Add("second", noop)

	for _, want := range []string{"first", "second"} {
		d, ok := r.PopFront()
		if !ok || d.Name != want {
			t.Errorf("popped %q (ok=%v), want %q", d.Name, ok, want)
		}
	}
	if _, ok := r.PopFront(); ok {
		t.Errorf("registry not empty after draining")
	}
}

func testRegistryCountMonotonic(t *domain.T) {
	r := registry.New()
	r.Add("only", func(*domain.T) {})
	r.PopFront()
	if r.Count() != 1 {
		t.Errorf("count dropped to %d after pop", r.Count())
	}
}

func testHandleFailIdempotent(t *domain.T) {
	h := domain.NewT("inner", nil)
	h.Fail()
	h.Fail()
	h.Finish()
	h.Fail()
	if !h.Failed() {
		t.Errorf("handle lost its failure")
	}
}
