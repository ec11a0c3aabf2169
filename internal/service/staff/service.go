package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffbook/staffbook-backend-go/internal/domain/staff"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/calendar"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
)

type StaffServiceImpl struct {
	db        *database.DB
	staffRepo staff.StaffRepository
}

func NewStaffService(db *database.DB, staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{
		db:        db,
		staffRepo: staffRepo,
	}
}

func (s *StaffServiceImpl) CreateStaff(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Phone != nil {
		_, err := s.staffRepo.GetByPhone(ctx, *req.Phone)
		if err == nil {
			return staff.StaffResponse{}, staff.ErrPhoneExists
		}
		if !errors.Is(err, staff.ErrStaffNotFound) {
			return staff.StaffResponse{}, err
		}
	}

	newStaff := staff.Staff{
		Name:             req.Name,
		Phone:            req.Phone,
		MonthlySalary:    req.MonthlySalary,
		SalaryCycleStart: staff.DefaultCycleStart,
		SalaryCycleEnd:   staff.DefaultCycleEnd,
	}
	if req.SalaryCycleStart != nil {
		newStaff.SalaryCycleStart = *req.SalaryCycleStart
	}
	if req.SalaryCycleEnd != nil {
		newStaff.SalaryCycleEnd = *req.SalaryCycleEnd
	}

	var created staff.Staff
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		c, err := s.staffRepo.Create(txCtx, newStaff)
		if err != nil {
			return fmt.Errorf("failed to create staff: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(created), nil
}

func (s *StaffServiceImpl) GetStaff(ctx context.Context, id int64) (staff.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(member), nil
}

func (s *StaffServiceImpl) ListStaff(ctx context.Context) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		result = append(result, toStaffResponse(m))
	}

	return result, nil
}

func (s *StaffServiceImpl) UpdateStaff(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Phone != nil {
		existing, err := s.staffRepo.GetByPhone(ctx, *req.Phone)
		if err == nil && existing.ID != req.ID {
			return staff.StaffResponse{}, staff.ErrPhoneExists
		}
		if err != nil && !errors.Is(err, staff.ErrStaffNotFound) {
			return staff.StaffResponse{}, err
		}
	}

	member.Name = req.Name
	member.Phone = req.Phone

	if err := s.staffRepo.Update(ctx, member); err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(member), nil
}

func (s *StaffServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	if _, err := s.staffRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.staffRepo.Hide(ctx, id)
}

func (s *StaffServiceImpl) UpdateSalary(ctx context.Context, req staff.UpdateSalaryRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	effectiveFrom, _ := time.Parse(calendar.DateFormat, req.EffectiveFrom)

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.staffRepo.CloseCurrentSalary(txCtx, req.StaffID, effectiveFrom); err != nil {
			return fmt.Errorf("failed to close current salary: %w", err)
		}
		if err := s.staffRepo.InsertSalaryRecord(txCtx, req.StaffID, req.Salary, effectiveFrom); err != nil {
			return fmt.Errorf("failed to insert salary record: %w", err)
		}
		return nil
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	member.MonthlySalary = req.Salary
	return toStaffResponse(member), nil
}

func (s *StaffServiceImpl) GetSalaryHistory(ctx context.Context, staffID int64) ([]staff.SalaryRecordResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	records, err := s.staffRepo.SalaryHistory(ctx, staffID)
	if err != nil {
		return nil, err
	}

	result := make([]staff.SalaryRecordResponse, 0, len(records))
	for _, rec := range records {
		resp := staff.SalaryRecordResponse{
			ID:            rec.ID,
			Salary:        rec.Salary,
			EffectiveFrom: rec.EffectiveFrom.Format(calendar.DateFormat),
		}
		if rec.EffectiveTo != nil {
			to := rec.EffectiveTo.Format(calendar.DateFormat)
			resp.EffectiveTo = &to
		}
		result = append(result, resp)
	}

	return result, nil
}

func (s *StaffServiceImpl) GetSalaryCycle(ctx context.Context, staffID int64) (staff.SalaryCycle, error) {
	return s.staffRepo.GetSalaryCycle(ctx, staffID)
}

func (s *StaffServiceImpl) UpdateSalaryCycle(ctx context.Context, req staff.UpdateSalaryCycleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.staffRepo.SetSalaryCycle(ctx, req.StaffID, staff.SalaryCycle{Start: req.Start, End: req.End})
}

func toStaffResponse(m staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:               m.ID,
		Name:             m.Name,
		Phone:            m.Phone,
		MonthlySalary:    m.MonthlySalary,
		SalaryCycleStart: m.SalaryCycleStart,
		SalaryCycleEnd:   m.SalaryCycleEnd,
	}
}
