package reminder_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/repositories"
	"invoicemanager/internal/services"
)

var Module = fx.Provide(provideReminderRepo, provideReminderService, provideReminderController)

func provideReminderRepo(db *gorm.DB) repositories.ReminderRepository {
	return repositories.NewReminderRepository(db)
}

func provideReminderService(
	invoiceRepo repositories.InvoiceRepository,
	reminderRepo repositories.ReminderRepository,
	settingsRepo repositories.SettingsRepository,
	templateRepo repositories.TemplateRepository,
	mailService services.MailServiceInterface,
) services.ReminderServiceInterface {
	return services.NewReminderService(invoiceRepo, reminderRepo, settingsRepo, templateRepo, mailService)
}

func provideReminderController(reminderService services.ReminderServiceInterface) *controllers.ReminderController {
	return controllers.NewReminderController(reminderService)
}
