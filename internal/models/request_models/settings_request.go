package request_models

type UpdateReminderSettingsRequest struct {
	IsAutomatedReminders *bool `json:"is_automated_reminders"`
	// Negative means a pre-due-date reminder.
	FirstReminderDays  *int    `json:"first_reminder_days"`
	FollowUpFrequency  *int    `json:"follow_up_frequency" binding:"omitempty,min=1"`
	MaxReminders       *int    `json:"max_reminders" binding:"omitempty,min=1"`
	FirstReminderTone  *string `json:"first_reminder_tone"`
	SecondReminderTone *string `json:"second_reminder_tone"`
	ThirdReminderTone  *string `json:"third_reminder_tone"`
}

type UpdateAccountSettingsRequest struct {
	BusinessName *string `json:"business_name" binding:"omitempty,max=255"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	SenderName   *string `json:"sender_name" binding:"omitempty,max=255"`
	SenderEmail  *string `json:"sender_email" binding:"omitempty,email"`
}
