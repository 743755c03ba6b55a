package domain

import "fmt"

// TaskNotFoundError carries the missing identifier so callers can report
// which task a request referenced.
type TaskNotFoundError struct {
	ID int64
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found with id: %d", e.ID)
}

// UnknownReferenceTypeError signals that no task-kind mapping exists for a
// reference type. It indicates misconfiguration, not bad user input.
type UnknownReferenceTypeError struct {
	ReferenceType ReferenceType
}

func (e *UnknownReferenceTypeError) Error() string {
	return fmt.Sprintf("no task kinds mapped for reference type: %s", e.ReferenceType)
}
