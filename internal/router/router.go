package router

import (
	"time"

	"tamapet/config"
	"tamapet/internal/handler"
	"tamapet/internal/middleware"
	"tamapet/internal/repository"
	"tamapet/internal/service"
	"tamapet/pkg/emotion"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps bundles the services the router (and the cron scheduler) need.
type Deps struct {
	Users      *service.UserService
	Pets       *service.PetService
	Care       *service.CareService
	Attendance *service.AttendanceService
	Birthdays  *service.BirthdayService
	Minigames  *service.MinigameService
	Ending     *service.EndingService
	Daily      *service.DailyService
}

// Build wires repositories and services for the given database handle.
func Build(cfg *config.Config, db *gorm.DB, loc *time.Location, predictor emotion.Predictor) *Deps {
	userRepo := repository.NewUserRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	actionRepo := repository.NewActionRepository(db)
	careLogRepo := repository.NewCareLogRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	birthdayRepo := repository.NewBirthdayRepository(db)
	minigameRepo := repository.NewMinigameRepository(db)

	ledger := service.NewLedgerService(userRepo, txRepo)

	return &Deps{
		Users:      service.NewUserService(userRepo, txRepo),
		Pets:       service.NewPetService(db, animalRepo, actionRepo, userRepo, ledger, cfg.RunawayReturnCost),
		Care:       service.NewCareService(db, loc, cfg.BiasTransferRate, animalRepo, actionRepo, careLogRepo, ledger, predictor),
		Attendance: service.NewAttendanceService(db, loc, attendanceRepo, ledger),
		Birthdays:  service.NewBirthdayService(db, loc, animalRepo, birthdayRepo, ledger, cfg.BirthdayReward),
		Minigames:  service.NewMinigameService(db, loc, minigameRepo, userRepo, ledger, cfg.MinigameScoreRate),
		Ending:     service.NewEndingService(db, loc, userRepo, animalRepo, careLogRepo, txRepo, attendanceRepo, birthdayRepo, minigameRepo),
		Daily:      service.NewDailyService(animalRepo),
	}
}

// Setup registers all routes on a gin engine.
func Setup(cfg *config.Config, deps *Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// The limiter runs after session auth so authenticated traffic is keyed
	// by user rather than client IP. The public start route is keyed by IP.
	limitMw := middleware.RateLimit(middleware.NewSlidingWindowLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow))

	userHandler := handler.NewUserHandler(cfg, deps.Users)
	petHandler := handler.NewPetHandler(deps.Pets)
	careHandler := handler.NewCareHandler(deps.Care)
	eventHandler := handler.NewEventHandler(deps.Attendance, deps.Birthdays)
	minigameHandler := handler.NewMinigameHandler(deps.Minigames)
	endingHandler := handler.NewEndingHandler(deps.Ending)

	sessionMw := middleware.SessionRequired(cfg)

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("/start", limitMw, userHandler.Start)
			users.GET("/me/balance", sessionMw, limitMw, userHandler.GetBalance)
			users.GET("/me/transactions", sessionMw, limitMw, userHandler.GetTransactions)
		}

		pets := api.Group("/pets")
		pets.Use(sessionMw, limitMw)
		{
			pets.POST("/nickname", petHandler.RegisterNicknames)
			pets.GET("/:slot", petHandler.GetAnimal)
			pets.POST("/:slot/return", petHandler.ReturnRunaway)
			pets.GET("/:slot/prices", petHandler.PriceList)
		}

		cares := api.Group("/cares")
		cares.Use(sessionMw, limitMw)
		{
			cares.POST("/action", careHandler.PerformAction)
			cares.GET("/actions", careHandler.ListActions)
			cares.POST("/message", careHandler.ResultMessage)
		}

		events := api.Group("/events")
		events.Use(sessionMw, limitMw)
		{
			events.GET("/attendance", eventHandler.GetAttendance)
			events.POST("/attendance", eventHandler.CheckIn)
			events.POST("/birthday/:slot", eventHandler.BirthdayReward)
		}

		minigames := api.Group("/minigames")
		minigames.Use(sessionMw, limitMw)
		{
			minigames.POST("/:id/start", minigameHandler.Start)
			minigames.POST("/attempts/:id/finish", minigameHandler.Finish)
		}

		ending := api.Group("/ending")
		ending.Use(sessionMw, limitMw)
		{
			ending.POST("/reset", endingHandler.Reset)
			ending.GET("/summary", endingHandler.Summary)
		}
	}

	return r
}
