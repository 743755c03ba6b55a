//go:build integration
// +build integration

package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "workforce/internal/adapter/db"
	httpadapter "workforce/internal/adapter/http"
	"workforce/internal/adapter/http/dto"
	"workforce/internal/adapter/http/handlers"
	"workforce/internal/app/audit"
	appservice "workforce/internal/app/service"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	router := gin.New()
	healthHandler := handlers.NewHealthHandler(s.DB)
	taskStore := dbadapter.NewTaskStore(s.DB)
	taskService := appservice.NewTaskService(taskStore, audit.NewComposer(time.Now))
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(router, healthHandler, taskHandler)

	s.router = router
}

func (s *TasksIntegrationSuite) postJSON(path string, payload any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) getJSON(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) createTask(referenceID int64, referenceType, kind string, assigneeID int64, priority string) dto.TaskItem {
	rec := s.postJSON("/api/task-mgmt/create", dto.CreateTaskRequest{
		UserName: "integration",
		Requests: []dto.CreateTaskRequestItem{{
			ReferenceID:      referenceID,
			ReferenceType:    referenceType,
			Task:             kind,
			AssigneeID:       assigneeID,
			Priority:         priority,
			TaskDeadlineTime: time.Now().Add(24 * time.Hour).UnixMilli(),
		}},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().Len(created, 1)
	return created[0]
}

func (s *TasksIntegrationSuite) TestCreateThenGetTask_RoundTrip() {
	created := s.createTask(101, "ORDER", "CREATE_INVOICE", 1, "HIGH")
	s.Require().Equal("ASSIGNED", created.Status)
	s.Require().Len(created.Activities, 1)

	rec := s.getJSON("/api/task-mgmt/task/" + itoa(created.ID))
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(created.ID, got.ID)
	s.Require().Equal("CREATE_INVOICE", got.Task)
	s.Require().Len(got.Activities, 1)
}

func (s *TasksIntegrationSuite) TestAssignByReference_DeduplicatesActiveTasks() {
	first := s.createTask(201, "ENTITY", "ASSIGN_CUSTOMER_TO_SALES_PERSON", 2, "LOW")
	second := s.createTask(201, "ENTITY", "ASSIGN_CUSTOMER_TO_SALES_PERSON", 3, "LOW")

	rec := s.postJSON("/api/task-mgmt/assign-by-ref", dto.AssignByReferenceRequest{
		UserName:      "integration",
		ReferenceID:   201,
		ReferenceType: "ENTITY",
		AssigneeID:    5,
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	survivor := s.getJSON("/api/task-mgmt/task/" + itoa(first.ID))
	s.Require().Equal(http.StatusOK, survivor.Code)
	var survivorItem dto.TaskItem
	s.Require().NoError(json.Unmarshal(survivor.Body.Bytes(), &survivorItem))
	s.Require().Equal("ASSIGNED", survivorItem.Status)
	s.Require().Equal(int64(5), survivorItem.AssigneeID)

	cancelled := s.getJSON("/api/task-mgmt/task/" + itoa(second.ID))
	s.Require().Equal(http.StatusOK, cancelled.Code)
	var cancelledItem dto.TaskItem
	s.Require().NoError(json.Unmarshal(cancelled.Body.Bytes(), &cancelledItem))
	s.Require().Equal("CANCELLED", cancelledItem.Status)
}

func (s *TasksIntegrationSuite) TestFetchByDate_ExcludesCancelled() {
	active := s.createTask(102, "ORDER", "COLLECT_PAYMENT", 1, "MEDIUM")
	cancelled := s.createTask(103, "ORDER", "COLLECT_PAYMENT", 1, "MEDIUM")

	status := "CANCELLED"
	rec := s.postJSON("/api/task-mgmt/update", dto.UpdateTaskRequest{
		UserName: "integration",
		Requests: []dto.UpdateTaskRequestItem{{TaskID: cancelled.ID, TaskStatus: &status}},
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.postJSON("/api/task-mgmt/fetch-by-date", dto.FetchByDateRequest{
		AssigneeIDs: []int64{1},
		StartDate:   time.Now().UnixMilli(),
		EndDate:     time.Now().Add(48 * time.Hour).UnixMilli(),
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Require().Equal(active.ID, got[0].ID)
}

func (s *TasksIntegrationSuite) TestCommentOnTask_AppearsInTaskView() {
	created := s.createTask(104, "ORDER", "ARRANGE_PICKUP", 2, "LOW")

	rec := s.postJSON("/api/task-mgmt/comment", dto.CommentRequest{
		TaskID:   created.ID,
		UserName: "integration",
		Comment:  "driver confirmed",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	view := s.getJSON("/api/task-mgmt/task/" + itoa(created.ID))
	s.Require().Equal(http.StatusOK, view.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(view.Body.Bytes(), &got))
	s.Require().Len(got.Comments, 1)
	s.Require().Equal("driver confirmed", got.Comments[0].Comment)
	// Commenting must not grow the audit trail.
	s.Require().Len(got.Activities, 1)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
