package domain

import "time"

type TaskStatus string

const (
	TaskStatusAssigned  TaskStatus = "ASSIGNED"
	TaskStatusStarted   TaskStatus = "STARTED"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusCancelled TaskStatus = "CANCELLED"
)

// Terminal reports whether the status ends a task's lifecycle. Terminal
// tasks are never reassigned but stay in the store for historical queries.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type ReferenceType string

const (
	ReferenceTypeOrder  ReferenceType = "ORDER"
	ReferenceTypeEntity ReferenceType = "ENTITY"
)

type TaskKind string

const (
	TaskKindCreateInvoice               TaskKind = "CREATE_INVOICE"
	TaskKindArrangePickup               TaskKind = "ARRANGE_PICKUP"
	TaskKindCollectPayment              TaskKind = "COLLECT_PAYMENT"
	TaskKindAssignCustomerToSalesPerson TaskKind = "ASSIGN_CUSTOMER_TO_SALES_PERSON"
)

// Task is one unit of work attached to a business reference.
// Activities and Comments are populated by read paths that request
// history; they are never written through the task itself.
type Task struct {
	ID            int64
	ReferenceID   int64
	ReferenceType ReferenceType
	Kind          TaskKind
	AssigneeID    int64
	Status        TaskStatus
	Priority      Priority
	Description   string
	Deadline      time.Time
	Activities    []Activity
	Comments      []Comment
}

// Activity is one immutable audit record owned by a single task.
type Activity struct {
	At          time.Time
	UserName    string
	Description string
}

// Comment is one immutable discussion record owned by a single task.
// Its timestamp is always assigned by the server at write time.
type Comment struct {
	At       time.Time
	UserName string
	Body     string
}
