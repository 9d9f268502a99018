package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/repositories"
)

func TestWaitlistSignupIdempotentOnEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWaitlistService(repositories.NewWaitlistRepository(db))
	ctx := context.Background()

	if err := svc.Signup(ctx, request_models.WaitlistSignupRequest{Name: "Alex", Email: "Alex@Example.com"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	// Same email again, different casing and whitespace.
	if err := svc.Signup(ctx, request_models.WaitlistSignupRequest{Email: "  alex@example.com "}); err != nil {
		t.Fatalf("repeat signup: %v", err)
	}
	if err := svc.Signup(ctx, request_models.WaitlistSignupRequest{Email: "sam@example.com"}); err != nil {
		t.Fatalf("second signup: %v", err)
	}

	count, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 entries, got %d", count)
	}
}

func TestFeedbackRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedbackService(repositories.NewFeedbackRepository(db))
	ctx := context.Background()
	userID := uuid.New()

	if err := svc.AddFeedback(ctx, userID, "love it", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.AddFeedback(ctx, userID, "meh", 0); err == nil {
		t.Fatalf("rating 0 should be rejected")
	}
	if err := svc.AddFeedback(ctx, userID, "too good", 6); err == nil {
		t.Fatalf("rating 6 should be rejected")
	}

	list, err := svc.GetFeedback(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 feedback row, got %d", len(list))
	}
}
