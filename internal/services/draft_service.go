package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	dbm "invoicemanager/internal/models/db_models"
	req "invoicemanager/internal/models/request_models"
	"invoicemanager/pkg/utils"
)

type DraftServiceInterface interface {
	RewriteReminder(ctx context.Context, request req.DraftReminderRequest) (string, error)
}

type DraftService struct {
	client *openai.Client
}

// NewDraftService returns a service with a nil client when no API key
// is configured. Calls then fail with a precondition error instead of
// hitting the network.
func NewDraftService() DraftServiceInterface {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return &DraftService{}
	}
	return &DraftService{client: openai.NewClient(key)}
}

func (s *DraftService) RewriteReminder(ctx context.Context, request req.DraftReminderRequest) (string, error) {
	if s.client == nil {
		return "", utils.ErrAssistantDisabled
	}

	tone := dbm.ReminderTone(strings.ToLower(request.Tone))
	if !dbm.ValidReminderTone(tone) {
		return "", utils.ErrInvalidTone
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You rewrite payment reminder emails. Keep every factual detail " +
					"(names, invoice numbers, amounts, dates) unchanged and return only the rewritten email body.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Rewrite the following reminder in a %s tone:\n\n%s", tone, request.Body),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("draft assistant: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("draft assistant: empty completion")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
