// Package service holds the business rules between the HTTP handlers and
// the repositories.
package service

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	address, err := requireText("address", in.Address)
	if err != nil {
		return nil, err
	}
	email, err := requireText("email", in.Email)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Address: address, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser applies the present patch fields and leaves the rest as stored.
func (s *UserService) UpdateUser(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error) {
	var err error
	if patch.Name, err = patchText("name", patch.Name); err != nil {
		return nil, err
	}
	if patch.Address, err = patchText("address", patch.Address); err != nil {
		return nil, err
	}
	if patch.Email, err = patchText("email", patch.Email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user together with its orders.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
