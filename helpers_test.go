package holdmenu

import (
	"testing"
	"time"
)

// frame is one tick at 60 TPS.
const frame = float32(1.0 / 60)

// advanceFor steps s in whole frames until at least d has elapsed.
func advanceFor(s *Scene, d time.Duration) {
	end := s.Runner().Now() + d
	for s.Runner().Now() < end {
		s.Advance(frame)
	}
}

// stepUntil steps s one frame at a time until cond holds, failing the test
// if it does not within limit.
func stepUntil(t *testing.T, s *Scene, limit time.Duration, what string, cond func() bool) {
	t.Helper()
	end := s.Runner().Now() + limit
	for !cond() {
		if s.Runner().Now() >= end {
			t.Fatalf("timed out after %v waiting for %s", limit, what)
		}
		s.Advance(frame)
	}
}
