package services

import (
	"context"
	"errors"
	"testing"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/pkg/utils"
)

func TestDraftServiceDisabledWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	svc := NewDraftService()

	_, err := svc.RewriteReminder(context.Background(), request_models.DraftReminderRequest{
		Body: "Please pay invoice INV-001.",
		Tone: "firm",
	})
	if !errors.Is(err, utils.ErrAssistantDisabled) {
		t.Fatalf("expected ErrAssistantDisabled, got %v", err)
	}
}
