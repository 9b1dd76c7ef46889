package user

import "context"

// Repository defines persistence operations for staff accounts.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, id, role string) error
	SetSuspended(ctx context.Context, id string, suspended bool) error
	DeleteUser(ctx context.Context, id string) error
}
