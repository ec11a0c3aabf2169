package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already exists")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
