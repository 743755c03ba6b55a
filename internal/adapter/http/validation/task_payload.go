package validation

import (
	"errors"
	"time"

	"workforce/internal/adapter/http/dto"
	"workforce/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskItems(req dto.CreateTaskRequest) ([]domain.CreateTaskItem, error) {
	items := make([]domain.CreateTaskItem, 0, len(req.Requests))
	for _, item := range req.Requests {
		if item.TaskDeadlineTime < 0 {
			return nil, ErrInvalidTaskPayload
		}
		items = append(items, domain.CreateTaskItem{
			ReferenceID:   item.ReferenceID,
			ReferenceType: domain.ReferenceType(item.ReferenceType),
			Kind:          domain.TaskKind(item.Task),
			AssigneeID:    item.AssigneeID,
			Priority:      domain.Priority(item.Priority),
			Deadline:      time.UnixMilli(item.TaskDeadlineTime),
		})
	}
	return items, nil
}

// BuildUpdateTaskItems rejects items carrying nothing to change; absent
// fields stay nil so the core leaves them untouched.
func BuildUpdateTaskItems(req dto.UpdateTaskRequest) ([]domain.UpdateTaskItem, error) {
	items := make([]domain.UpdateTaskItem, 0, len(req.Requests))
	for _, item := range req.Requests {
		if item.TaskStatus == nil && item.Description == nil {
			return nil, ErrInvalidTaskPayload
		}

		update := domain.UpdateTaskItem{TaskID: item.TaskID, Description: item.Description}
		if item.TaskStatus != nil {
			status := domain.TaskStatus(*item.TaskStatus)
			update.Status = &status
		}
		items = append(items, update)
	}
	return items, nil
}

func BuildPriorityUpdateItems(req dto.UpdatePriorityRequest) []domain.PriorityUpdateItem {
	items := make([]domain.PriorityUpdateItem, 0, len(req.UpdatePriorityList))
	for _, item := range req.UpdatePriorityList {
		items = append(items, domain.PriorityUpdateItem{
			TaskID:   item.TaskID,
			Priority: domain.Priority(item.Priority),
		})
	}
	return items
}

func BuildDateWindow(req dto.FetchByDateRequest) (domain.DateWindow, error) {
	if req.EndDate < req.StartDate {
		return domain.DateWindow{}, ErrInvalidTaskPayload
	}
	return domain.DateWindow{
		AssigneeIDs: req.AssigneeIDs,
		Start:       time.UnixMilli(req.StartDate),
		End:         time.UnixMilli(req.EndDate),
	}, nil
}
