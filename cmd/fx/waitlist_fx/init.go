package waitlist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/repositories"
	"invoicemanager/internal/services"
)

var Module = fx.Provide(provideWaitlistRepo, provideWaitlistService, provideWaitlistController)

func provideWaitlistRepo(db *gorm.DB) repositories.WaitlistRepository {
	return repositories.NewWaitlistRepository(db)
}

func provideWaitlistService(waitlistRepo repositories.WaitlistRepository) services.WaitlistServiceInterface {
	return services.NewWaitlistService(waitlistRepo)
}

func provideWaitlistController(waitlistService services.WaitlistServiceInterface) *controllers.WaitlistController {
	return controllers.NewWaitlistController(waitlistService)
}
