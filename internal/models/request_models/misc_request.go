package request_models

type AddFeedbackRequest struct {
	Comment string `json:"comment" binding:"required,max=2000"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

type WaitlistSignupRequest struct {
	Name  string `json:"name" binding:"omitempty,max=255"`
	Email string `json:"email" binding:"required,email"`
}

type DraftReminderRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
	Tone string `json:"tone" binding:"required"`
}
