package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/memcache"
	"invoicemanager/pkg/utils"
)

func newTestAccountService(t *testing.T) (AccountServiceInterface, *fakeMailService, *memcache.ResetTokens) {
	t.Helper()
	db := setupTestDB(t)
	mail := &fakeMailService{}
	tokens := memcache.NewResetTokens()
	svc := NewAccountService(repositories.NewAccountRepository(db), tokens, mail)
	return svc, mail, tokens
}

func signUp(t *testing.T, svc AccountServiceInterface, email string) {
	t.Helper()
	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alex",
		Email:       email,
		Password:    "hunter22",
	})
	if err != nil {
		t.Fatalf("sign up %s: %v", email, err)
	}
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAccountService(t)
	signUp(t, svc, "alex@example.com")

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Other Alex",
		Email:       "alex@example.com",
		Password:    "different",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestAccountService(t)
	signUp(t, svc, "alex@example.com")
	ctx := context.Background()

	token, err := svc.Login(ctx, request_models.LoginRequest{Email: "alex@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID == "" {
		t.Fatalf("token missing user id")
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "alex@example.com", Password: "wrong"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "hunter22"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestForgotPasswordDoesNotLeakAccounts(t *testing.T) {
	svc, mail, _ := newTestAccountService(t)
	signUp(t, svc, "alex@example.com")
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "nobody@example.com"); err != nil {
		t.Fatalf("unknown email must not error: %v", err)
	}
	if len(mail.sent) != 0 {
		t.Fatalf("no mail expected for unknown email")
	}

	if err := svc.ForgotPassword(ctx, "alex@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected one reset mail, got %d", len(mail.sent))
	}
	if mail.sent[0].To != "alex@example.com" {
		t.Fatalf("reset mail addressed to %s", mail.sent[0].To)
	}
}

func TestResetPasswordFlow(t *testing.T) {
	svc, mail, _ := newTestAccountService(t)
	signUp(t, svc, "alex@example.com")
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "alex@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	token := extractResetToken(t, mail.sent[0].TextBody)

	// Token issued for one email cannot reset another.
	err := svc.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Email:       "other@example.com",
		NewPassword: "newpassword",
		Token:       token,
	})
	if !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken for wrong email, got %v", err)
	}

	// The failed attempt consumed the token; request a fresh one.
	if err := svc.ForgotPassword(ctx, "alex@example.com"); err != nil {
		t.Fatalf("second forgot password: %v", err)
	}
	token = extractResetToken(t, mail.sent[1].TextBody)

	if err := svc.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Email:       "alex@example.com",
		NewPassword: "newpassword",
		Token:       token,
	}); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "alex@example.com", Password: "hunter22"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("old password should be rejected, got %v", err)
	}
	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "alex@example.com", Password: "newpassword"}); err != nil {
		t.Fatalf("new password login: %v", err)
	}

	// Single use.
	if err := svc.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Email:       "alex@example.com",
		NewPassword: "again",
		Token:       token,
	}); !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken on reuse, got %v", err)
	}
}

func extractResetToken(t *testing.T, body string) string {
	t.Helper()
	const marker = "Your reset code: "
	idx := strings.Index(body, marker)
	if idx < 0 {
		t.Fatalf("reset mail missing code: %q", body)
	}
	rest := body[idx+len(marker):]
	end := strings.Index(rest, "\n")
	if end < 0 {
		t.Fatalf("malformed reset mail: %q", body)
	}
	return rest[:end]
}
