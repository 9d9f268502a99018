package utils

import "errors"

var (
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrReminderNotFound       = errors.New("reminder not found")
	ErrTemplateNotFound       = errors.New("template not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidResetToken      = errors.New("invalid or expired reset token")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already in use")
	ErrInvalidInvoiceStatus   = errors.New("invalid invoice status")
	ErrInvalidAmount          = errors.New("amount must be a non-negative decimal")
	ErrInvalidDate            = errors.New("invalid date format")
	ErrInvalidTone            = errors.New("invalid reminder tone")
	ErrInvalidDeliveryStatus  = errors.New("invalid delivery status")
	ErrNoSenderConfigured     = errors.New("no sender email configured")
	ErrAssistantDisabled      = errors.New("draft assistant is not configured")
	ErrMailDelivery           = errors.New("mail delivery failed")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
)
