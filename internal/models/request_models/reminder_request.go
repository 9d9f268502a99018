package request_models

type SendReminderRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required,uuid4"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Tone      string `json:"tone" binding:"omitempty"`
	IsHTML    bool   `json:"is_html"`
}

type BulkSendRemindersRequest struct {
	Reminders []SendReminderRequest `json:"reminders" binding:"required,min=1,dive"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
