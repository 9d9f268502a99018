package template_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/repositories"
	"invoicemanager/internal/services"
)

var Module = fx.Provide(provideTemplateRepo, provideTemplateService, provideTemplateController)

func provideTemplateRepo(db *gorm.DB) repositories.TemplateRepository {
	return repositories.NewTemplateRepository(db)
}

func provideTemplateService(templateRepo repositories.TemplateRepository) services.TemplateServiceInterface {
	return services.NewTemplateService(templateRepo)
}

func provideTemplateController(templateService services.TemplateServiceInterface) *controllers.TemplateController {
	return controllers.NewTemplateController(templateService)
}
