package services

import (
	"context"
	"strings"

	dbm "invoicemanager/internal/models/db_models"
	req "invoicemanager/internal/models/request_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/utils"
)

type WaitlistServiceInterface interface {
	Signup(ctx context.Context, request req.WaitlistSignupRequest) error
	Count(ctx context.Context) (int64, error)
}

type WaitlistService struct {
	waitlistRepo repositories.WaitlistRepository
}

func NewWaitlistService(waitlistRepo repositories.WaitlistRepository) WaitlistServiceInterface {
	return &WaitlistService{waitlistRepo: waitlistRepo}
}

func (s *WaitlistService) Signup(ctx context.Context, request req.WaitlistSignupRequest) error {
	entry := &dbm.WaitlistEntry{
		Name:  strings.TrimSpace(request.Name),
		Email: strings.ToLower(strings.TrimSpace(request.Email)),
	}
	if err := s.waitlistRepo.Add(ctx, entry); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *WaitlistService) Count(ctx context.Context) (int64, error) {
	count, err := s.waitlistRepo.Count(ctx)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}
