package dto

type TaskItem struct {
	ID               int64          `json:"id"`
	ReferenceID      int64          `json:"reference_id"`
	ReferenceType    string         `json:"reference_type"`
	Task             string         `json:"task"`
	AssigneeID       int64          `json:"assignee_id"`
	Status           string         `json:"status"`
	Priority         string         `json:"priority,omitempty"`
	Description      string         `json:"description"`
	TaskDeadlineTime int64          `json:"task_deadline_time"`
	Activities       []ActivityItem `json:"activities,omitempty"`
	Comments         []CommentItem  `json:"comments,omitempty"`
}

type ActivityItem struct {
	At          int64  `json:"at"`
	UserName    string `json:"user_name"`
	Description string `json:"description"`
}

type CommentItem struct {
	At       int64  `json:"at"`
	UserName string `json:"user_name"`
	Comment  string `json:"comment"`
}

type CreateTaskRequest struct {
	UserName string                  `json:"user_name" binding:"required"`
	Requests []CreateTaskRequestItem `json:"requests" binding:"required,min=1,dive"`
}

type CreateTaskRequestItem struct {
	ReferenceID      int64  `json:"reference_id" binding:"required"`
	ReferenceType    string `json:"reference_type" binding:"required,oneof=ORDER ENTITY"`
	Task             string `json:"task" binding:"required,oneof=CREATE_INVOICE ARRANGE_PICKUP COLLECT_PAYMENT ASSIGN_CUSTOMER_TO_SALES_PERSON"`
	AssigneeID       int64  `json:"assignee_id" binding:"required"`
	Priority         string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
	TaskDeadlineTime int64  `json:"task_deadline_time" binding:"required"`
}

type UpdateTaskRequest struct {
	UserName string                  `json:"user_name" binding:"required"`
	Requests []UpdateTaskRequestItem `json:"requests" binding:"required,min=1,dive"`
}

type UpdateTaskRequestItem struct {
	TaskID      int64   `json:"task_id" binding:"required"`
	TaskStatus  *string `json:"task_status" binding:"omitempty,oneof=ASSIGNED STARTED COMPLETED CANCELLED"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
}

type UpdatePriorityRequest struct {
	UserName           string               `json:"user_name" binding:"required"`
	UpdatePriorityList []UpdatePriorityItem `json:"update_priority_list" binding:"required,min=1,dive"`
}

type UpdatePriorityItem struct {
	TaskID   int64  `json:"task_id" binding:"required"`
	Priority string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
}

// ReferenceType is deliberately not constrained to the known values here:
// an unmapped type is a policy decision the core reports, not a payload
// shape problem.
type AssignByReferenceRequest struct {
	UserName      string `json:"user_name" binding:"required"`
	ReferenceID   int64  `json:"reference_id" binding:"required"`
	ReferenceType string `json:"reference_type" binding:"required"`
	AssigneeID    int64  `json:"assignee_id" binding:"required"`
}

type AssignByReferenceResponse struct {
	Message string `json:"message"`
}

type FetchByDateRequest struct {
	AssigneeIDs []int64 `json:"assignee_ids" binding:"required,min=1"`
	StartDate   int64   `json:"start_date" binding:"required"`
	EndDate     int64   `json:"end_date" binding:"required"`
}

type CommentRequest struct {
	TaskID   int64  `json:"task_id" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
	Comment  string `json:"comment" binding:"required,max=65535"`
}

type CommentResponse struct {
	Message string `json:"message"`
}
