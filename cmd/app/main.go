package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"invoicemanager/cmd/fx/account_fx"
	"invoicemanager/cmd/fx/db_fx"
	"invoicemanager/cmd/fx/draft_fx"
	"invoicemanager/cmd/fx/feedback_fx"
	"invoicemanager/cmd/fx/invoice_fx"
	"invoicemanager/cmd/fx/mail_fx"
	"invoicemanager/cmd/fx/memcache_fx"
	"invoicemanager/cmd/fx/pdf_fx"
	"invoicemanager/cmd/fx/reminder_fx"
	"invoicemanager/cmd/fx/settings_fx"
	"invoicemanager/cmd/fx/stats_fx"
	"invoicemanager/cmd/fx/template_fx"
	"invoicemanager/cmd/fx/waitlist_fx"
	"invoicemanager/internal/api/controllers"
	"invoicemanager/internal/infra"
	"invoicemanager/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,

		account_fx.Module,
		invoice_fx.Module,
		reminder_fx.Module,
		settings_fx.Module,
		template_fx.Module,
		pdf_fx.Module,
		feedback_fx.Module,
		stats_fx.Module,
		waitlist_fx.Module,
		draft_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	invoiceController *controllers.InvoiceController,
	reminderController *controllers.ReminderController,
	settingsController *controllers.SettingsController,
	templateController *controllers.TemplateController,
	pdfController *controllers.PdfController,
	feedbackController *controllers.FeedbackController,
	statsController *controllers.StatsController,
	waitlistController *controllers.WaitlistController,
	draftController *controllers.DraftController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		invoiceController,
		reminderController,
		settingsController,
		templateController,
		pdfController,
		feedbackController,
		statsController,
		waitlistController,
		draftController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	invoiceController *controllers.InvoiceController,
	reminderController *controllers.ReminderController,
	settingsController *controllers.SettingsController,
	templateController *controllers.TemplateController,
	pdfController *controllers.PdfController,
	feedbackController *controllers.FeedbackController,
	statsController *controllers.StatsController,
	waitlistController *controllers.WaitlistController,
	draftController *controllers.DraftController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	waitlist := r.Group("/waitlist")
	waitlist.POST("/signup", waitlistController.Signup)
	waitlist.GET("/count", waitlistController.Count)

	auth := r.Group("/", middleware.JWTAuthMiddleware())

	invoices := auth.Group("/invoices")
	invoices.POST("", invoiceController.CreateInvoice)
	invoices.GET("", invoiceController.ListInvoices)
	invoices.GET("/check-number", invoiceController.CheckInvoiceNumber)
	invoices.GET("/:invoiceId", invoiceController.GetInvoice)
	invoices.PUT("/:invoiceId", invoiceController.UpdateInvoice)
	invoices.PATCH("/:invoiceId/status", invoiceController.UpdateInvoiceStatus)
	invoices.DELETE("/:invoiceId", invoiceController.DeleteInvoice)

	reminders := auth.Group("/reminders")
	reminders.POST("/send", reminderController.SendReminder)
	reminders.POST("/bulk-send", reminderController.BulkSendReminders)
	reminders.POST("/run-scheduled", reminderController.RunScheduledReminders)
	reminders.GET("/history/:invoiceId", reminderController.GetReminderHistory)
	reminders.GET("/last/:invoiceId", reminderController.GetLastReminder)
	reminders.PATCH("/:reminderId/delivery-status", reminderController.UpdateDeliveryStatus)

	settings := auth.Group("/settings")
	settings.GET("/reminders", settingsController.GetReminderSettings)
	settings.PUT("/reminders", settingsController.UpdateReminderSettings)
	settings.GET("/account", settingsController.GetAccountSettings)
	settings.PUT("/account", settingsController.UpdateAccountSettings)

	templates := auth.Group("/templates")
	templates.POST("", templateController.CreateTemplate)
	templates.GET("", templateController.ListTemplates)
	templates.GET("/:templateId", templateController.GetTemplate)
	templates.PUT("/:templateId", templateController.UpdateTemplate)
	templates.DELETE("/:templateId", templateController.DeleteTemplate)

	pdf := auth.Group("/pdf")
	pdf.POST("/invoice", pdfController.GenerateInvoicePdf)

	feedback := auth.Group("/feedback")
	feedback.POST("/add", feedbackController.AddFeedback)
	feedback.GET("/list", feedbackController.ListFeedback)

	stats := auth.Group("/stats")
	stats.GET("/dashboard", statsController.GetDashboardStats)

	drafts := auth.Group("/drafts")
	drafts.POST("/rewrite", draftController.RewriteReminder)
}
