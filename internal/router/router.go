package router

import (
	"time"

	"arena/config"
	"arena/internal/handler"
	"arena/internal/middleware"
	"arena/internal/repository"
	"arena/internal/service"
	"arena/internal/ws"
	"arena/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	tournamentRepo := repository.NewTournamentRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	kycRepo := repository.NewKYCRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	squadRepo := repository.NewSquadRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	eventHub := ws.NewHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	ledger := service.NewLedgerService(db, txRepo)
	notifSvc := service.NewNotificationService(notificationRepo, eventHub)
	tournamentSvc := service.NewTournamentService(db, tournamentRepo, matchRepo, userRepo, ledger, cfg.Tournament.RoomRevealLead)
	resultSvc := service.NewResultService(matchRepo, tournamentRepo, ledger)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, auditRepo)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc, auditRepo)
	meHandler := handler.NewMeHandler(userRepo)
	walletHandler := handler.NewWalletHandler(cfg, ledger, txRepo, notifSvc)
	tournamentHandler := handler.NewTournamentHandler(tournamentRepo, matchRepo, tournamentSvc, notifSvc)
	matchHandler := handler.NewMatchHandler(matchRepo, resultSvc, tournamentSvc, notifSvc)
	kycHandler := handler.NewKYCHandler(kycRepo, userRepo, notifSvc)
	withdrawalHandler := handler.NewWithdrawalHandler(cfg, ledger, withdrawalRepo, userRepo)
	withdrawalWebhookHandler := handler.NewWithdrawalWebhookHandler(cfg, withdrawalRepo, ledger, notifSvc)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardRepo)
	squadHandler := handler.NewSquadHandler(squadRepo)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.AdminRequired()

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
		}

		api.GET("/tournaments", tournamentHandler.List)
		api.GET("/tournaments/:id", tournamentHandler.Get)
		api.POST("/tournaments/:id/join", authMw, tournamentHandler.Join)
		api.GET("/leaderboards", leaderboardHandler.Top)

		api.POST("/transactions", authMw, walletHandler.CreateTransaction)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.PATCH("/profile", meHandler.UpdateProfile)
			me.GET("/wallet", walletHandler.GetBalance)
			me.GET("/wallet/transactions", walletHandler.GetTransactions)
			me.POST("/withdraw", withdrawalHandler.Create)
			me.GET("/withdrawals", withdrawalHandler.List)
			me.GET("/matches", matchHandler.ListMine)
			me.GET("/kyc", kycHandler.GetMine)
			me.POST("/kyc", kycHandler.Submit)
			me.GET("/notifications", notificationHandler.List)
			me.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			me.GET("/squad", squadHandler.List)
			me.POST("/squad", squadHandler.Create)
			me.PATCH("/squad/:id", squadHandler.Update)
			me.DELETE("/squad/:id", squadHandler.Delete)
			me.POST("/upload/screenshot", uploadHandler.UploadScreenshot)
			me.POST("/upload/kyc", uploadHandler.UploadKYCDocument)
		}

		api.GET("/matches/:id", authMw, matchHandler.Get)
		api.POST("/matches/:id/result", authMw, matchHandler.SubmitResult)

		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.POST("/tournaments", tournamentHandler.Create)
			admin.PATCH("/tournaments/:id", tournamentHandler.Update)
			admin.POST("/tournaments/:id/cancel", tournamentHandler.Cancel)
			admin.DELETE("/tournaments/:id", tournamentHandler.Delete)
			admin.GET("/tournaments/:id/matches", tournamentHandler.Matches)
			admin.GET("/results", matchHandler.ListPendingResults)
			admin.POST("/matches/:id/approve", matchHandler.ApproveResult)
			admin.PATCH("/matches/:id/room", matchHandler.AssignRoom)
			admin.GET("/kyc", kycHandler.List)
			admin.PATCH("/kyc/:id", kycHandler.Review)
		}

		api.POST("/webhooks/withdrawal", withdrawalWebhookHandler.Handle)
	}

	r.GET("/ws/events", ws.UpgradeEventsWS(&cfg.JWT, eventHub))

	return r
}
