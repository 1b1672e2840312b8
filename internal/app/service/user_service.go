package service

import (
	"context"
	"errors"
	"fmt"

	"woofer/internal/common"
	"woofer/internal/common/validation"
	"woofer/internal/domain/model"
	"woofer/internal/domain/repository"

	"github.com/google/uuid"
)

// userRules is the declarative constraint list shared by user creation and
// update. Every rule runs on every request; messages go to the client
// verbatim.
var userRules = validation.RuleSet{
	{Field: "username", Check: validation.MinLength(5), Message: "Username must be minimum 5 characters"},
	{Field: "username", Check: validation.Alphanumeric, Message: "Username cannot contain non-alphanumeric characters"},
	{Field: "password", Check: validation.NotEmpty, Message: "Password is required"},
	{Field: "password", Check: validation.Alphanumeric, Message: "Password cannot contain non-alphanumeric characters"},
	{Field: "email", Check: validation.Email, Message: "Not a valid email address - incorrect format"},
	{Field: "birthday", Check: validation.ISODate, Message: "Not a valid date -- enter as YYYY-MM-DD"},
}

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
}

func (r UserRequest) payload() map[string]string {
	return map[string]string{
		"username": r.Username,
		"password": r.Password,
		"email":    r.Email,
		"birthday": r.Birthday,
	}
}

// Create validates the payload, rejects duplicate usernames, and persists a
// new user. The pre-check read gives the friendly conflict message; the
// unique index on username is the actual guarantee, so a concurrent insert
// that slips past the check still surfaces as a conflict.
func (s *UserService) Create(ctx context.Context, req UserRequest) (*model.User, error) {
	if verr := userRules.Validate(req.payload()); verr != nil {
		return nil, verr
	}

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing != nil {
		return nil, &common.ConflictError{Resource: req.Username}
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

// UpdateByUsername validates the full replacement payload and applies it to
// the row matching the path username. Returns common.ErrNotFound when no
// such user exists.
func (s *UserService) UpdateByUsername(ctx context.Context, username string, req UserRequest) (*model.User, error) {
	if verr := userRules.Validate(req.payload()); verr != nil {
		return nil, verr
	}

	user := &model.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	}
	return s.userRepo.UpdateByUsername(ctx, username, user)
}
