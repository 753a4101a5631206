package booking

import "fmt"

// ConflictError is the soft business-rule rejection for a duplicate
// (email, appointmentDate, treatment) tuple. It is not a storage fault;
// handlers report it with acknowledged:false and a 200 status.
type ConflictError struct {
	Date string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("You already have an appointment booked on %s", e.Date)
}

// NewConflictError builds the rejection for the given appointment date.
func NewConflictError(date string) error {
	return &ConflictError{Date: date}
}
