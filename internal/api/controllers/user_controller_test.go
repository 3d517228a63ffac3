package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"learnhive/internal/api/controllers"
	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/models/response_models"
	"learnhive/internal/services"
)

type fakeUserService struct {
	roles map[string]db_models.Role
	users map[string]*db_models.User
}

var _ services.UserServiceInterface = (*fakeUserService)(nil)

func (f *fakeUserService) ListUsers(ctx context.Context, search string) ([]db_models.User, error) {
	return []db_models.User{}, nil
}

func (f *fakeUserService) GetByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserService) GetRole(ctx context.Context, email string) (db_models.Role, error) {
	return f.roles[email], nil
}

func (f *fakeUserService) CreateIfAbsent(ctx context.Context, req request_models.CreateUserRequest) (*response_models.InsertResult, error) {
	if _, ok := f.users[req.Email]; ok {
		return &response_models.InsertResult{Message: "user already exists", InsertedID: nil}, nil
	}
	return &response_models.InsertResult{Acknowledged: true, InsertedID: "00000000-0000-0000-0000-000000000001"}, nil
}

func (f *fakeUserService) PromoteToAdmin(ctx context.Context, id string) (*response_models.UpdateResult, error) {
	return &response_models.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeUserService) PromoteToTeacher(ctx context.Context, email string) (*response_models.UpdateResult, error) {
	return &response_models.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeUserService) DeleteByID(ctx context.Context, id string) (*response_models.DeleteResult, error) {
	return &response_models.DeleteResult{Acknowledged: true}, nil
}

func newUserRouter(svc services.UserServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	uc := controllers.NewUserController(svc)
	r.GET("/users/admin/:email", uc.IsAdmin)
	r.GET("/users/teacher/:email", uc.IsTeacher)
	r.GET("/users/:email", uc.GetUserByEmail)
	r.POST("/users", uc.CreateUser)
	return r
}

func TestIsAdmin_UnknownEmailIsFalse(t *testing.T) {
	r := newUserRouter(&fakeUserService{roles: map[string]db_models.Role{}, users: map[string]*db_models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/nonexistent@x.com", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["admin"] {
		t.Fatalf("expected admin=false, got %v", body)
	}
}

func TestIsTeacher_ProjectsRole(t *testing.T) {
	r := newUserRouter(&fakeUserService{
		roles: map[string]db_models.Role{"t@x.com": db_models.RoleTeacher},
		users: map[string]*db_models.User{},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/teacher/t@x.com", nil)
	r.ServeHTTP(w, req)

	var body map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body["teacher"] {
		t.Fatalf("expected teacher=true, got %v", body)
	}
}

func TestGetUserByEmail_MissIsNullNot404(t *testing.T) {
	r := newUserRouter(&fakeUserService{roles: map[string]db_models.Role{}, users: map[string]*db_models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/nobody@x.com", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("expected null body, got %q", w.Body.String())
	}
}

func TestCreateUser_DuplicateSentinelBody(t *testing.T) {
	r := newUserRouter(&fakeUserService{
		roles: map[string]db_models.Role{},
		users: map[string]*db_models.User{"dup@x.com": {Email: "dup@x.com"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"dup@x.com","name":"Dup"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("duplicate registration must answer 200, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "user already exists" {
		t.Fatalf("expected sentinel message, got %v", body)
	}
	if id, present := body["insertedId"]; !present || id != nil {
		t.Fatalf("expected insertedId:null, got %v", body)
	}
}

func TestCreateUser_RejectsMalformedBody(t *testing.T) {
	r := newUserRouter(&fakeUserService{roles: map[string]db_models.Role{}, users: map[string]*db_models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
