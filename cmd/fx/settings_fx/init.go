package settings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/repositories"
	"invoicemanager/internal/services"
)

var Module = fx.Provide(provideSettingsRepo, provideSettingsService, provideSettingsController)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsService(settingsRepo repositories.SettingsRepository) services.SettingsServiceInterface {
	return services.NewSettingsService(settingsRepo)
}

func provideSettingsController(settingsService services.SettingsServiceInterface) *controllers.SettingsController {
	return controllers.NewSettingsController(settingsService)
}
