package audit

import (
	"fmt"
	"time"

	"workforce/internal/core/domain"
)

// Composer builds the activity entries and comment stamps the lifecycle
// service appends. Every description the audit trail contains is formatted
// here, nowhere else.
type Composer struct {
	now func() time.Time
}

func NewComposer(now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	return &Composer{now: now}
}

func (c *Composer) TaskCreated(userName string, taskID int64) domain.Activity {
	return c.entry(userName, fmt.Sprintf("User %s created the task_id %d.", userName, taskID))
}

func (c *Composer) TaskUpdated(userName string, taskID int64) domain.Activity {
	return c.entry(userName, fmt.Sprintf("User %s updated the task_id %d.", userName, taskID))
}

func (c *Composer) PriorityChanged(userName string, priority domain.Priority, taskID int64) domain.Activity {
	return c.entry(userName, fmt.Sprintf("User %s changed the priority to %s of task_id %d.", userName, priority, taskID))
}

func (c *Composer) TaskReassigned(userName string, taskID int64, kind domain.TaskKind, assigneeID int64) domain.Activity {
	return c.entry(userName, fmt.Sprintf("User %s assigned the task_id %d (%s) to assignee_id %d.", userName, taskID, kind, assigneeID))
}

// StampComment overrides any client-supplied time with the server clock.
func (c *Composer) StampComment(userName, body string) domain.Comment {
	return domain.Comment{
		At:       c.now(),
		UserName: userName,
		Body:     body,
	}
}

func (c *Composer) entry(userName, description string) domain.Activity {
	return domain.Activity{
		At:          c.now(),
		UserName:    userName,
		Description: description,
	}
}
