package period

import (
	"errors"
	"fmt"
)

// Status is the filing state of a GST period.
type Status string

const (
	StatusOpen        Status = "open"
	StatusReadyToFile Status = "ready_to_file"
	StatusFiled       Status = "filed"
)

// LockedMessage is shown to users who try to change a filed period.
const LockedMessage = "This GST period has been filed. Changes are not allowed. Please create an adjustment in a later period instead."

var (
	ErrPeriodLocked      = errors.New(LockedMessage)
	ErrInvalidTransition = errors.New("invalid gst period status transition")
)

// ParseStatus validates a status value.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusOpen, StatusReadyToFile, StatusFiled:
		return Status(value), nil
	}
	return "", fmt.Errorf("unknown gst period status %q", value)
}

func (s Status) String() string {
	return string(s)
}

var transitions = map[Status][]Status{
	StatusOpen:        {StatusReadyToFile},
	StatusReadyToFile: {StatusOpen, StatusFiled},
	StatusFiled:       {StatusReadyToFile},
}

// CanTransition reports whether a period may move from one status to another.
// Setting the current status again is allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		_, known := transitions[from]
		return known
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition wraps CanTransition with a descriptive error.
func ValidateTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// CheckStatusAllowsWrite is the precondition for any change to a transaction
// dated inside a period with the given status.
func CheckStatusAllowsWrite(status Status) error {
	if status == StatusFiled {
		return ErrPeriodLocked
	}
	return nil
}
