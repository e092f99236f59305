package services

import (
	"context"
	"fmt"
	"log/slog"

	"symposiumadmin/internal/domain"
)

type reviewService struct {
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewReviewService creates a ReviewService with the given repository and
// email service.
func NewReviewService(
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.ReviewService {
	return &reviewService{
		registrationRepo: registrationRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

// Review transitions an abstract-track registration to APPROVED or REJECTED.
// Rejection additionally enrolls the registrant in the configured fallback
// event; both writes happen in one repository transaction. The rejection
// email is sent only after the transaction has committed and its failure
// never fails the operation.
func (s *reviewService) Review(ctx context.Context, userID, eventID string, action domain.ReviewAction) (*domain.ReviewResult, error) {
	if userID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: userId and eventId are required", domain.ErrInvalidInput)
	}
	if action != domain.ReviewApproved && action != domain.ReviewRejected {
		return nil, fmt.Errorf("%w: action must be APPROVED or REJECTED", domain.ErrInvalidInput)
	}

	reg, err := s.registrationRepo.GetForReview(ctx, userID, eventID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	result := &domain.ReviewResult{
		Action:    action,
		EventID:   eventID,
		UserName:  reg.UserName,
		UserEmail: reg.UserEmail,
	}

	if action == domain.ReviewApproved {
		if err := s.registrationRepo.Approve(ctx, userID, eventID); err != nil {
			return nil, fmt.Errorf("approve registration: %w", err)
		}
		return result, nil
	}

	if reg.FallbackEventID == nil || *reg.FallbackEventID == "" {
		return nil, fmt.Errorf("%w: no fallback event configured", domain.ErrInvalidState)
	}
	if reg.Status == domain.RegistrationRejected {
		return nil, fmt.Errorf("%w: registration already rejected", domain.ErrConflict)
	}

	fallbackID := *reg.FallbackEventID
	attendance := domain.FallbackAttendanceStatus(fallbackID)
	if err := s.registrationRepo.RejectWithFallback(ctx, userID, eventID, fallbackID, attendance); err != nil {
		if err == domain.ErrConflict {
			return nil, fmt.Errorf("%w: fallback enrollment already exists", domain.ErrConflict)
		}
		return nil, fmt.Errorf("reject registration: %w", err)
	}
	result.FallbackEventID = fallbackID

	// The state transition is committed; notification is best-effort.
	if err := s.emailService.SendAbstractRejection(ctx, &domain.AbstractRejectionEmailData{
		Email:         reg.UserEmail,
		Name:          reg.UserName,
		EventTitle:    domain.EventTitle(eventID),
		FallbackTitle: domain.EventTitle(fallbackID),
	}); err != nil {
		s.logger.WarnContext(ctx, "rejection email failed",
			"user_id", userID, "event_id", eventID, "err", err)
	}

	return result, nil
}
