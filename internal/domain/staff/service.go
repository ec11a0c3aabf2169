package staff

import "context"

// StaffService defines business logic for staff management
type StaffService interface {
	// CreateStaff registers a staff member, rejecting duplicate phone numbers
	CreateStaff(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)

	// GetStaff retrieves a staff member by id, hidden included
	GetStaff(ctx context.Context, id int64) (StaffResponse, error)

	// ListStaff retrieves active staff ordered by name
	ListStaff(ctx context.Context) ([]StaffResponse, error)

	// UpdateStaff updates name and phone
	UpdateStaff(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)

	// DeleteStaff soft-deletes a staff member; history stays intact
	DeleteStaff(ctx context.Context, id int64) error

	// UpdateSalary records a salary change, closing the open history record
	// and opening a new one in a single transaction
	UpdateSalary(ctx context.Context, req UpdateSalaryRequest) (StaffResponse, error)

	// GetSalaryHistory lists salary records, newest first
	GetSalaryHistory(ctx context.Context, staffID int64) ([]SalaryRecordResponse, error)

	// GetSalaryCycle retrieves the per-staff payroll window
	GetSalaryCycle(ctx context.Context, staffID int64) (SalaryCycle, error)

	// UpdateSalaryCycle sets the per-staff payroll window
	UpdateSalaryCycle(ctx context.Context, req UpdateSalaryCycleRequest) error
}
