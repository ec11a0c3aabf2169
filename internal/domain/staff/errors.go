package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrPhoneExists   = errors.New("a staff member with this phone number already exists")
)
