package request_models

type CreateTemplateRequest struct {
	Name      string   `json:"name" binding:"required,max=255"`
	Subject   string   `json:"subject" binding:"required,max=500"`
	HTMLBody  string   `json:"html_body"`
	TextBody  string   `json:"text_body"`
	Tone      string   `json:"tone" binding:"required"`
	Category  string   `json:"category"`
	IsDefault bool     `json:"is_default"`
	IsActive  *bool    `json:"is_active"`
	Variables []string `json:"variables"`
}

type UpdateTemplateRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=255"`
	Subject   *string  `json:"subject" binding:"omitempty,max=500"`
	HTMLBody  *string  `json:"html_body"`
	TextBody  *string  `json:"text_body"`
	Tone      *string  `json:"tone"`
	Category  *string  `json:"category"`
	IsDefault *bool    `json:"is_default"`
	IsActive  *bool    `json:"is_active"`
	Variables []string `json:"variables"`
}
