package invoice_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/repositories"
	"invoicemanager/internal/services"
)

var Module = fx.Provide(provideInvoiceRepo, provideInvoiceService, provideInvoiceController)

func provideInvoiceRepo(db *gorm.DB) repositories.InvoiceRepository {
	return repositories.NewInvoiceRepository(db)
}

func provideInvoiceService(invoiceRepo repositories.InvoiceRepository) services.InvoiceServiceInterface {
	return services.NewInvoiceService(invoiceRepo)
}

func provideInvoiceController(invoiceService services.InvoiceServiceInterface) *controllers.InvoiceController {
	return controllers.NewInvoiceController(invoiceService)
}
