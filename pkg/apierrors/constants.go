package apierrors

const (
	MsgInvalidTaskID         = "invalidTaskID"
	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgInvalidPriority       = "invalidPriority"
	MsgTaskNotFound          = "taskNotFound"
	MsgUnknownReferenceType  = "unknownReferenceType"
	MsgFailFetchTask         = "failFetchTask"
	MsgFailListTasks         = "failListTasks"
	MsgFailCreateTask        = "failCreateTask"
	MsgFailUpdateTask        = "failUpdateTask"
	MsgFailUpdatePriority    = "failUpdatePriority"
	MsgFailAssignByReference = "failAssignByReference"
	MsgFailFetchByDate       = "failFetchByDate"
	MsgFailCommentTask       = "failCommentTask"
)
