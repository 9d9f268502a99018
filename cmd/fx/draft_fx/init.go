package draft_fx

import (
	"go.uber.org/fx"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/services"
)

var Module = fx.Provide(provideDraftService, provideDraftController)

func provideDraftService() services.DraftServiceInterface {
	return services.NewDraftService()
}

func provideDraftController(draftService services.DraftServiceInterface) *controllers.DraftController {
	return controllers.NewDraftController(draftService)
}
