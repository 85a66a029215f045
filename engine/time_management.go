package engine

import "time"

// TimeHandler decides, between iterations, whether another iteration fits
// in the move budget. A running iteration is never interrupted, so a search
// overruns the budget by at most one iteration.
type TimeHandler struct {
	budget    time.Duration
	unlimited bool
	start     time.Time
	lastIter  time.Duration
	iterStart time.Time
}

// startSearch arms the handler. A non-positive budget has no time limit
// only when unlimited is set; otherwise it allows a single iteration.
func (th *TimeHandler) startSearch(budget time.Duration, unlimited bool) {
	th.budget = budget
	th.unlimited = unlimited
	th.start = time.Now()
	th.lastIter = 0
}

func (th *TimeHandler) startIteration() {
	th.iterStart = time.Now()
}

func (th *TimeHandler) endIteration() {
	th.lastIter = time.Since(th.iterStart)
}

// Elapsed is the time since the search started.
func (th *TimeHandler) Elapsed() time.Duration {
	return time.Since(th.start)
}

// TimeStatus is true when no further iteration should start: the budget is
// spent, or the last iteration took longer than what remains.
func (th *TimeHandler) TimeStatus() bool {
	if th.budget <= 0 {
		return !th.unlimited
	}
	elapsed := th.Elapsed()
	if elapsed >= th.budget {
		return true
	}
	return th.lastIter > th.budget-elapsed
}
