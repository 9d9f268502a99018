package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/repositories"
	"invoicemanager/internal/services"
	mem "invoicemanager/pkg/memcache"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
	mailService services.MailServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
