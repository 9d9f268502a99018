package pdf_fx

import (
	"go.uber.org/fx"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/services"
)

var Module = fx.Provide(providePdfService, providePdfController)

func providePdfService() services.PdfServiceInterface {
	return services.NewPdfService()
}

func providePdfController(pdfService services.PdfServiceInterface) *controllers.PdfController {
	return controllers.NewPdfController(pdfService)
}
