package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adjei-dev/stagepress/internal/models"
)

const bcryptCost = 10

type UserService struct {
	users models.UsersRepo
}

func NewUserService(users models.UsersRepo) *UserService {
	return &UserService{users: users}
}

// Authenticate checks credentials and returns the account. Both unknown email
// and bad password collapse into the same Unauthorized error so the response
// does not leak which one was wrong.
func (us *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", models.ErrValidation)
	}
	user, err := us.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}
	return user, nil
}

func (us *UserService) CreateUser(ctx context.Context, in models.CreateUserInput) (*models.User, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = models.RoleEditor
	}
	user := &models.User{
		ID:       uuid.New(),
		Email:    in.Email,
		Password: string(hashed),
		Name:     in.Name,
		Role:     role,
	}
	if err := us.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid user ID", models.ErrValidation)
	}
	return us.users.GetByID(ctx, id)
}

func (us *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return us.users.List(ctx)
}

// UpdateUser re-hashes the password only when the payload carries a new one.
func (us *UserService) UpdateUser(ctx context.Context, id uuid.UUID, in models.UpdateUserInput) (*models.User, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	user, err := us.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Email = in.Email
	user.Name = in.Name
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if err := us.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: invalid user ID", models.ErrValidation)
	}
	return us.users.Delete(ctx, id)
}
