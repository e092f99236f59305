package services

import (
	"context"
	"fmt"
	"strings"

	"symposiumadmin/internal/domain"
)

const searchResultLimit = 25

type rosterService struct {
	rosterRepo       domain.RosterRepository
	userRepo         domain.UserRepository
	registrationRepo domain.RegistrationRepository
	paymentRepo      domain.PaymentRepository
	statsRepo        domain.StatsRepository
}

// NewRosterService creates a RosterService with the given repositories.
func NewRosterService(
	rosterRepo domain.RosterRepository,
	userRepo domain.UserRepository,
	registrationRepo domain.RegistrationRepository,
	paymentRepo domain.PaymentRepository,
	statsRepo domain.StatsRepository,
) domain.RosterService {
	return &rosterService{
		rosterRepo:       rosterRepo,
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
		paymentRepo:      paymentRepo,
		statsRepo:        statsRepo,
	}
}

func (s *rosterService) ListRegistrations(ctx context.Context, f domain.RosterFilters, p domain.PaginationParams) ([]*domain.RosterEntry, int, error) {
	total, err := s.rosterRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("count registrations: %w", err)
	}

	entries, err := s.rosterRepo.List(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}

	// Resolve catalog titles; unknown event ids keep the raw id.
	for _, entry := range entries {
		for _, reg := range entry.Registrations {
			reg.EventTitle = domain.EventTitle(reg.EventID)
		}
	}
	return entries, total, nil
}

func (s *rosterService) SearchByQuery(ctx context.Context, query string) ([]*domain.User, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidInput)
	}
	users, err := s.userRepo.Search(ctx, q, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (s *rosterService) LookupByCode(ctx context.Context, code string) (*domain.SearchResult, error) {
	c := strings.TrimSpace(code)
	if c == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUniqueCode(ctx, c)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by code: %w", err)
	}

	regs, err := s.registrationRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	payment, err := s.paymentRepo.GetByUserID(ctx, user.ID)
	if err != nil && err != domain.ErrNotFound {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &domain.SearchResult{
		User:          user,
		Registrations: regs,
		Payment:       payment,
	}, nil
}

func (s *rosterService) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.statsRepo.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect stats: %w", err)
	}
	return stats, nil
}
