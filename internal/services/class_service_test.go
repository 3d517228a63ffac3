package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"learnhive/internal/models/db_models"
	"learnhive/internal/models/request_models"
	"learnhive/internal/services"
	"learnhive/pkg/utils"
)

type fakeClassRepo struct {
	classes map[uuid.UUID]*db_models.Class

	lastPage      int
	lastLimit     int
	lastPriceDesc bool
	acceptedTotal int64
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: map[uuid.UUID]*db_models.Class{}}
}

func (f *fakeClassRepo) Insert(ctx context.Context, class *db_models.Class) error {
	if class.ID == uuid.Nil {
		class.ID = uuid.New()
	}
	f.classes[class.ID] = class
	return nil
}

func (f *fakeClassRepo) FindAll(ctx context.Context) ([]db_models.Class, error) {
	var out []db_models.Class
	for _, c := range f.classes {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeClassRepo) FindByTeacher(ctx context.Context, email string) ([]db_models.Class, error) {
	var out []db_models.Class
	for _, c := range f.classes {
		if c.Email == email {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Class, error) {
	return f.classes[id], nil
}

func (f *fakeClassRepo) FindAccepted(ctx context.Context, page, limit int, priceDesc bool) ([]db_models.Class, error) {
	f.lastPage = page
	f.lastLimit = limit
	f.lastPriceDesc = priceDesc

	var accepted []db_models.Class
	for _, c := range f.classes {
		if c.Status == db_models.ClassAccepted {
			accepted = append(accepted, *c)
		}
	}
	start := (page - 1) * limit
	if start >= len(accepted) {
		return nil, nil
	}
	end := start + limit
	if end > len(accepted) {
		end = len(accepted)
	}
	return accepted[start:end], nil
}

func (f *fakeClassRepo) FindAcceptedByID(ctx context.Context, id uuid.UUID) (*db_models.Class, error) {
	c := f.classes[id]
	if c == nil || c.Status != db_models.ClassAccepted {
		return nil, nil
	}
	return c, nil
}

func (f *fakeClassRepo) CountAccepted(ctx context.Context) (int64, error) {
	var total int64
	for _, c := range f.classes {
		if c.Status == db_models.ClassAccepted {
			total++
		}
	}
	return total, nil
}

func (f *fakeClassRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ClassStatus) (int64, error) {
	c, ok := f.classes[id]
	if !ok {
		return 0, nil
	}
	c.Status = status
	return 1, nil
}

func (f *fakeClassRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	if _, ok := f.classes[id]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeClassRepo) AppendAssignment(ctx context.Context, id uuid.UUID, assignment db_models.ClassAssignment) (int64, error) {
	return 1, nil
}

func (f *fakeClassRepo) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.classes[id]; !ok {
		return 0, nil
	}
	delete(f.classes, id)
	return 1, nil
}

func seedAccepted(t *testing.T, repo *fakeClassRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := repo.Insert(context.Background(), &db_models.Class{
			Email:  "teacher@example.com",
			Title:  "class",
			Status: db_models.ClassAccepted,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestListAccepted_TotalIndependentOfPage(t *testing.T) {
	repo := newFakeClassRepo()
	svc := services.NewClassService(repo)
	seedAccepted(t, repo, 12)

	page2, err := svc.ListAccepted(context.Background(), 2, 5, "")
	if err != nil {
		t.Fatal(err)
	}
	if page2.Total != 12 {
		t.Fatalf("expected total 12 regardless of page, got %d", page2.Total)
	}
	if len(page2.Classes) > 5 {
		t.Fatalf("page must hold at most limit entries, got %d", len(page2.Classes))
	}

	page3, err := svc.ListAccepted(context.Background(), 3, 5, "")
	if err != nil {
		t.Fatal(err)
	}
	if page3.Total != page2.Total {
		t.Fatalf("total changed across pages: %d vs %d", page3.Total, page2.Total)
	}
}

func TestListAccepted_SortParameter(t *testing.T) {
	repo := newFakeClassRepo()
	svc := services.NewClassService(repo)
	seedAccepted(t, repo, 3)

	if _, err := svc.ListAccepted(context.Background(), 1, 10, "desc"); err != nil {
		t.Fatal(err)
	}
	if !repo.lastPriceDesc {
		t.Fatal("sort=desc must order by price descending")
	}

	for _, sort := range []string{"", "asc", "anything"} {
		if _, err := svc.ListAccepted(context.Background(), 1, 10, sort); err != nil {
			t.Fatal(err)
		}
		if repo.lastPriceDesc {
			t.Fatalf("sort=%q must order by price ascending", sort)
		}
	}
}

func TestListAccepted_RejectsBadPaging(t *testing.T) {
	svc := services.NewClassService(newFakeClassRepo())

	if _, err := svc.ListAccepted(context.Background(), 0, 10, ""); !errors.Is(err, utils.ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
	if _, err := svc.ListAccepted(context.Background(), 1, 0, ""); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	if _, err := svc.ListAccepted(context.Background(), 1, 101, ""); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
}

// The transition handlers are unconditional overwrites: approve then reject
// leaves the class rejected, no validation error in either direction.
func TestSetStatus_LastWriteWins(t *testing.T) {
	repo := newFakeClassRepo()
	svc := services.NewClassService(repo)

	class := &db_models.Class{Email: "teacher@example.com", Status: db_models.ClassPending}
	if err := repo.Insert(context.Background(), class); err != nil {
		t.Fatal(err)
	}
	id := class.ID.String()

	if _, err := svc.SetStatus(context.Background(), id, db_models.ClassAccepted); err != nil {
		t.Fatal(err)
	}
	res, err := svc.SetStatus(context.Background(), id, db_models.ClassRejected)
	if err != nil {
		t.Fatal(err)
	}
	if res.ModifiedCount != 1 {
		t.Fatalf("expected the second transition to apply, got %+v", res)
	}
	if repo.classes[class.ID].Status != db_models.ClassRejected {
		t.Fatalf("final called state must win, got %q", repo.classes[class.ID].Status)
	}
}

func TestSetStatus_MalformedIDMatchesNothing(t *testing.T) {
	svc := services.NewClassService(newFakeClassRepo())

	res, err := svc.SetStatus(context.Background(), "garbage", db_models.ClassAccepted)
	if err != nil {
		t.Fatal(err)
	}
	if res.MatchedCount != 0 {
		t.Fatalf("expected zero matches, got %+v", res)
	}
}

func TestCreateClass_StartsPending(t *testing.T) {
	repo := newFakeClassRepo()
	svc := services.NewClassService(repo)

	res, err := svc.CreateClass(context.Background(), request_models.CreateClassRequest{
		Email: "teacher@example.com",
		Title: "Intro to Go",
		Price: 49.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	id, err := uuid.Parse(res.InsertedID.(string))
	if err != nil {
		t.Fatal(err)
	}
	if repo.classes[id].Status != db_models.ClassPending {
		t.Fatalf("new class must be pending, got %q", repo.classes[id].Status)
	}
}
