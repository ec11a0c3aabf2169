package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateUsername(ctx context.Context, id int64, username string) error
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
