package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"woofer/internal/app/service"
	"woofer/internal/common"
	"woofer/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type fakeUserRepo struct {
	users map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (r *fakeUserRepo) Insert(ctx context.Context, user *model.User) error {
	if _, ok := r.users[user.Username]; ok {
		return &common.ConflictError{Resource: user.Username}
	}
	r.users[user.Username] = *user
	return nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	all := []model.User{}
	for _, u := range r.users {
		all = append(all, u)
	}
	return all, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) UpdateByUsername(ctx context.Context, username string, user *model.User) (*model.User, error) {
	existing, ok := r.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	updated := existing
	updated.Username = user.Username
	updated.Password = user.Password
	updated.Email = user.Email
	updated.Birthday = user.Birthday
	delete(r.users, username)
	r.users[updated.Username] = updated
	return &updated, nil
}

func newUserRouter(repo *fakeUserRepo) http.Handler {
	h := NewUserHandler(service.NewUserService(repo))
	r := chi.NewRouter()
	r.Route("/users", h.RegisterRoutes)
	return r
}

const validUserBody = `{"username":"alice1","password":"hunter2","email":"alice@example.com","birthday":"1990-04-21"}`

func TestCreateUserResponds201(t *testing.T) {
	router := newUserRouter(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(validUserBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var user model.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ID == "" || user.Username != "alice1" {
		t.Fatalf("unexpected created user: %+v", user)
	}
}

func TestCreateUserRespondsValidationErrors(t *testing.T) {
	router := newUserRouter(newFakeUserRepo())

	body := `{"username":"ab!","password":"","email":"nope","birthday":"soon"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Every violated constraint reports, not just the first.
	if len(resp.Errors) != 6 {
		t.Fatalf("expected 6 violations, got %d: %+v", len(resp.Errors), resp.Errors)
	}
	if resp.Errors[0].Field != "username" || resp.Errors[0].Message != "Username must be minimum 5 characters" {
		t.Fatalf("unexpected first violation: %+v", resp.Errors[0])
	}
}

func TestCreateUserDuplicateResponds400(t *testing.T) {
	repo := newFakeUserRepo()
	router := newUserRouter(repo)

	first := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(validUserBody))
	router.ServeHTTP(httptest.NewRecorder(), first)

	second := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(validUserBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, second)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "alice1 already exists") {
		t.Fatalf("expected the legacy conflict message, got %s", rec.Body.String())
	}
}

func TestListUsersResponds201(t *testing.T) {
	repo := newFakeUserRepo()
	router := newUserRouter(repo)

	seed := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(validUserBody))
	router.ServeHTTP(httptest.NewRecorder(), seed)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Legacy wire quirk: the list endpoint answers 201.
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var users []model.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestGetUserByUsername(t *testing.T) {
	repo := newFakeUserRepo()
	router := newUserRouter(repo)

	seed := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(validUserBody))
	router.ServeHTTP(httptest.NewRecorder(), seed)

	req := httptest.NewRequest(http.MethodGet, "/users/alice1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var user model.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Username != "alice1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGetMissingUserRespondsNull(t *testing.T) {
	router := newUserRouter(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/users/ghost1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected a JSON null body, got %s", rec.Body.String())
	}
}

func TestUpdateUserByPathUsername(t *testing.T) {
	repo := newFakeUserRepo()
	router := newUserRouter(repo)

	seed := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(validUserBody))
	router.ServeHTTP(httptest.NewRecorder(), seed)

	body := `{"username":"alice2","password":"newpass1","email":"alice2@example.com","birthday":"1990-04-22"}`
	req := httptest.NewRequest(http.MethodPut, "/users/alice1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var user model.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Username != "alice2" || user.Password != "newpass1" {
		t.Fatalf("unexpected updated user: %+v", user)
	}
	if _, ok := repo.users["alice1"]; ok {
		t.Fatal("the record keyed by the path username should have been replaced")
	}
}

func TestUpdateMissingUserRespondsNull(t *testing.T) {
	router := newUserRouter(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodPut, "/users/ghost1", strings.NewReader(validUserBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected a JSON null body, got %s", rec.Body.String())
	}
}

func TestUpdateUserRespondsValidationErrors(t *testing.T) {
	repo := newFakeUserRepo()
	router := newUserRouter(repo)

	seed := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(validUserBody))
	router.ServeHTTP(httptest.NewRecorder(), seed)

	body := `{"username":"alice1","password":"hunter2","email":"alice@example.com","birthday":"not-a-date"}`
	req := httptest.NewRequest(http.MethodPut, "/users/alice1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Not a valid date -- enter as YYYY-MM-DD") {
		t.Fatalf("expected the date violation, got %s", rec.Body.String())
	}
}
