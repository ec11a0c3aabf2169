package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffbook/staffbook-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	_, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return user.UserResponse{}, user.ErrUsernameExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(created), nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}

	return result, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	account, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Username != nil && *req.Username != account.Username {
		_, err := s.userRepo.GetByUsername(ctx, *req.Username)
		if err == nil {
			return user.UserResponse{}, user.ErrUsernameExists
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, err
		}

		if err := s.userRepo.UpdateUsername(ctx, req.ID, *req.Username); err != nil {
			return user.UserResponse{}, err
		}
		account.Username = *req.Username
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, err
		}
		if err := s.userRepo.UpdatePasswordHash(ctx, req.ID, string(hash)); err != nil {
			return user.UserResponse{}, err
		}
	}

	return toUserResponse(account), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, id)
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}
