package breach

import "fmt"

// Status is the outcome of a breach lookup.
type Status int

const (
	StatusUnknown Status = iota
	StatusClean
	StatusBreached
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusBreached:
		return "breached"
	default:
		return "unknown"
	}
}

// Result is what a lookup tells the caller.
type Result struct {
	Status  Status
	Count   int
	Message string
}

// Breached returns true/false for a completed lookup and nil when unknown.
func (r Result) Breached() *bool {
	if r.Status == StatusUnknown {
		return nil
	}
	b := r.Status == StatusBreached
	return &b
}

func Breached(count int) Result {
	return Result{
		Status:  StatusBreached,
		Count:   count,
		Message: fmt.Sprintf("This password has been found %d times in data breaches!", count),
	}
}

func Clean() Result {
	return Result{
		Status:  StatusClean,
		Message: "Good news! This password hasn't been found in any known breaches.",
	}
}

func Unknown() Result {
	return Result{
		Status:  StatusUnknown,
		Message: "Unable to check breach status. Please try again later.",
	}
}
