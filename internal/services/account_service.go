package services

import (
	"context"
	"log"
	"time"

	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/memcache"
	"invoicemanager/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetTokens memcache.ResetTokenStore
	mailService MailServiceInterface
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens memcache.ResetTokenStore,
	mailService MailServiceInterface,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
		mailService: mailService,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &dbm.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashed,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

// ForgotPassword always succeeds from the caller's point of view so
// account existence is not leaked.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, 30*time.Minute)

	mail := OutboundMail{
		To:        account.Email,
		FromEmail: "no-reply@invoicemanager.app",
		FromName:  "Invoice Manager",
		Subject:   "Reset your password",
		TextBody: "We received a request to reset your password.\n\n" +
			"Your reset code: " + token + "\n\n" +
			"The code expires in 30 minutes. If you didn't request this, you can ignore this email.",
	}
	if err := a.mailService.Send(mail); err != nil {
		log.Printf("password reset mail failed for %s: %v", account.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(req.Token)
	if email == "" || email != req.Email {
		return utils.ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, email, hashed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
