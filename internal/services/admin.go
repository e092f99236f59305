package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"symposiumadmin/internal/domain"
)

type adminService struct {
	userRepo         domain.UserRepository
	registrationRepo domain.RegistrationRepository
	paymentRepo      domain.PaymentRepository
}

// NewAdminService creates an AdminService with the given repositories.
func NewAdminService(
	userRepo domain.UserRepository,
	registrationRepo domain.RegistrationRepository,
	paymentRepo domain.PaymentRepository,
) domain.AdminService {
	return &adminService{
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
		paymentRepo:      paymentRepo,
	}
}

func (s *adminService) CheckIn(ctx context.Context, uniqueCode string) (*domain.User, error) {
	code := strings.TrimSpace(uniqueCode)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUniqueCode(ctx, code)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by code: %w", err)
	}
	if user.CheckedIn {
		return nil, fmt.Errorf("%w: already checked in", domain.ErrConflict)
	}

	now := time.Now()
	if err := s.userRepo.SetCheckedIn(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("set checked in: %w", err)
	}
	user.CheckedIn = true
	user.CheckInTime = &now
	return user, nil
}

func (s *adminService) SetAttendance(ctx context.Context, userID, eventID, status string) (*domain.EventRegistration, error) {
	if userID == "" || eventID == "" || status == "" {
		return nil, fmt.Errorf("%w: userId, eventId and status are required", domain.ErrInvalidInput)
	}
	if !domain.ValidAttendanceUpdate(status) {
		return nil, fmt.Errorf("%w: invalid attendance status %q", domain.ErrInvalidInput, status)
	}

	// Attendance marking is gated on venue check-in.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !user.CheckedIn {
		return nil, domain.ErrNotCheckedIn
	}

	if err := s.registrationRepo.SetAttendance(ctx, userID, eventID, status); err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set attendance: %w", err)
	}

	reg, err := s.registrationRepo.GetForReview(ctx, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("reload registration: %w", err)
	}
	return &reg.EventRegistration, nil
}

func (s *adminService) SetPaymentStatus(ctx context.Context, userID, status string) (*domain.Payment, error) {
	if userID == "" || status == "" {
		return nil, fmt.Errorf("%w: userId and status are required", domain.ErrInvalidInput)
	}
	if !domain.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: invalid payment status %q", domain.ErrInvalidInput, status)
	}

	payment, err := s.paymentRepo.SetStatusByUserID(ctx, userID, status)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set payment status: %w", err)
	}
	return payment, nil
}
