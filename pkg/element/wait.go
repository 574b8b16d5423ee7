package element

import "time"

// DefaultTimeout is the poll budget, in ticks, used when an operation is
// called without an explicit timeout.
const DefaultTimeout = 15

// DefaultPollInterval is the sleep between poll attempts. Tests shrink it
// via WithPollInterval.
const DefaultPollInterval = time.Second

// TimeoutError reports a polled condition that never became true within its
// tick budget.
type TimeoutError struct {
	Desc string
}

func (e *TimeoutError) Error() string {
	return "timeout waiting for " + e.Desc
}

// waitFor evaluates cond up to timeout times, sleeping one poll interval
// between attempts. A timeout of 0 (or less) is coerced to 1 so the
// condition is always evaluated at least once. The first truthy evaluation
// stops the loop immediately; a success on attempt k sleeps k-1 times.
//
// On exhaustion, raise selects between a *TimeoutError and a plain false
// result. A successful wait logs desc; this is the engine's only logging
// point besides operation entry.
func (e *Element) waitFor(cond func() bool, timeout int, desc string, raise bool) (bool, error) {
	if timeout < 1 {
		timeout = 1
	}
	for attempt := 0; attempt < timeout; attempt++ {
		if attempt > 0 {
			time.Sleep(e.interval)
		}
		if cond() {
			e.log.Info(desc)
			return true, nil
		}
	}
	if raise {
		return false, &TimeoutError{Desc: desc}
	}
	return false, nil
}

// pickTimeout resolves an optional trailing timeout argument.
func pickTimeout(timeout []int) int {
	if len(timeout) > 0 {
		return timeout[0]
	}
	return DefaultTimeout
}
