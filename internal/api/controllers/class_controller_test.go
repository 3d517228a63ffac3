package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"learnhive/internal/api/controllers"
	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/models/response_models"
	"learnhive/internal/services"
)

type fakeClassService struct {
	lastPage  int
	lastLimit int
	lastSort  string
}

var _ services.ClassServiceInterface = (*fakeClassService)(nil)

func (f *fakeClassService) CreateClass(ctx context.Context, req request_models.CreateClassRequest) (*response_models.InsertResult, error) {
	return &response_models.InsertResult{Acknowledged: true}, nil
}

func (f *fakeClassService) ListClasses(ctx context.Context) ([]db_models.Class, error) {
	return []db_models.Class{}, nil
}

func (f *fakeClassService) ListByTeacher(ctx context.Context, email string) ([]db_models.Class, error) {
	return []db_models.Class{}, nil
}

func (f *fakeClassService) ListAccepted(ctx context.Context, page, limit int, sort string) (*response_models.PaginatedClassesResponse, error) {
	f.lastPage = page
	f.lastLimit = limit
	f.lastSort = sort
	return &response_models.PaginatedClassesResponse{Total: 0, Classes: []db_models.Class{}}, nil
}

func (f *fakeClassService) GetAccepted(ctx context.Context, id string) (*db_models.Class, error) {
	return nil, nil
}

func (f *fakeClassService) GetDetails(ctx context.Context, id string) (*db_models.Class, error) {
	return nil, nil
}

func (f *fakeClassService) SetStatus(ctx context.Context, id string, status db_models.ClassStatus) (*response_models.UpdateResult, error) {
	return &response_models.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeClassService) UpdateClass(ctx context.Context, id string, req request_models.UpdateClassRequest) (*response_models.UpdateResult, error) {
	return &response_models.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeClassService) AppendAssignment(ctx context.Context, id string, req request_models.AddAssignmentRequest) (*response_models.UpdateResult, error) {
	return &response_models.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeClassService) DeleteClass(ctx context.Context, id string) (*response_models.DeleteResult, error) {
	return &response_models.DeleteResult{Acknowledged: true}, nil
}

func newClassRouter(svc services.ClassServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cc := controllers.NewClassController(svc)
	r.GET("/all-classes", cc.ListAccepted)
	return r
}

func TestListAccepted_Defaults(t *testing.T) {
	svc := &fakeClassService{}
	r := newClassRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/all-classes", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.lastPage != 1 || svc.lastLimit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got page=%d limit=%d", svc.lastPage, svc.lastLimit)
	}
	if svc.lastSort != "" {
		t.Fatalf("expected empty sort, got %q", svc.lastSort)
	}
}

func TestListAccepted_PassesQueryParams(t *testing.T) {
	svc := &fakeClassService{}
	r := newClassRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/all-classes?page=2&limit=5&sort=desc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.lastPage != 2 || svc.lastLimit != 5 || svc.lastSort != "desc" {
		t.Fatalf("params not forwarded: page=%d limit=%d sort=%q", svc.lastPage, svc.lastLimit, svc.lastSort)
	}
}

func TestListAccepted_NonNumericPageIs400(t *testing.T) {
	r := newClassRouter(&fakeClassService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/all-classes?page=abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
