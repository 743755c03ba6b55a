package store

import (
	"context"
	"time"

	"workforce/internal/core/domain"
)

// Seed loads the demo data set used by local runs and tests: two ORDER
// references, a duplicated active ENTITY task pair and one cancelled task
// due tomorrow.
func (s *TaskStore) Seed() {
	ctx := context.Background()
	deadline := time.Now().Add(24 * time.Hour)

	seeds := []domain.Task{
		{ReferenceID: 101, ReferenceType: domain.ReferenceTypeOrder, Kind: domain.TaskKindCreateInvoice, AssigneeID: 1, Status: domain.TaskStatusAssigned, Priority: domain.PriorityHigh},
		{ReferenceID: 101, ReferenceType: domain.ReferenceTypeOrder, Kind: domain.TaskKindArrangePickup, AssigneeID: 1, Status: domain.TaskStatusCompleted, Priority: domain.PriorityHigh},
		{ReferenceID: 102, ReferenceType: domain.ReferenceTypeOrder, Kind: domain.TaskKindCreateInvoice, AssigneeID: 2, Status: domain.TaskStatusAssigned, Priority: domain.PriorityMedium},
		{ReferenceID: 201, ReferenceType: domain.ReferenceTypeEntity, Kind: domain.TaskKindAssignCustomerToSalesPerson, AssigneeID: 2, Status: domain.TaskStatusAssigned, Priority: domain.PriorityLow},
		{ReferenceID: 201, ReferenceType: domain.ReferenceTypeEntity, Kind: domain.TaskKindAssignCustomerToSalesPerson, AssigneeID: 3, Status: domain.TaskStatusAssigned, Priority: domain.PriorityLow},
		{ReferenceID: 103, ReferenceType: domain.ReferenceTypeOrder, Kind: domain.TaskKindCollectPayment, AssigneeID: 1, Status: domain.TaskStatusCancelled, Priority: domain.PriorityMedium},
	}

	for _, task := range seeds {
		task.Description = "This is a seed task."
		task.Deadline = deadline
		// Save never fails for the in-memory backing.
		_, _ = s.SaveTask(ctx, task)
	}
}
