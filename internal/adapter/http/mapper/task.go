package mapper

import (
	"workforce/internal/adapter/http/dto"
	"workforce/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:            task.ID,
		ReferenceID:   task.ReferenceID,
		ReferenceType: string(task.ReferenceType),
		Task:          string(task.Kind),
		AssigneeID:    task.AssigneeID,
		Status:        string(task.Status),
		Priority:      string(task.Priority),
		Description:   task.Description,
	}

	if !task.Deadline.IsZero() {
		item.TaskDeadlineTime = task.Deadline.UnixMilli()
	}

	for _, entry := range task.Activities {
		item.Activities = append(item.Activities, dto.ActivityItem{
			At:          entry.At.UnixMilli(),
			UserName:    entry.UserName,
			Description: entry.Description,
		})
	}

	for _, comment := range task.Comments {
		item.Comments = append(item.Comments, dto.CommentItem{
			At:       comment.At.UnixMilli(),
			UserName: comment.UserName,
			Comment:  comment.Body,
		})
	}

	return item
}
