package stats_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/repositories"
	"invoicemanager/internal/services"
)

var Module = fx.Provide(provideStatsRepo, provideStatsService, provideStatsController)

func provideStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}

func provideStatsService(
	statsRepo repositories.StatsRepository,
	reminderRepo repositories.ReminderRepository,
) services.StatsServiceInterface {
	return services.NewStatsService(statsRepo, reminderRepo)
}

func provideStatsController(statsService services.StatsServiceInterface) *controllers.StatsController {
	return controllers.NewStatsController(statsService)
}
