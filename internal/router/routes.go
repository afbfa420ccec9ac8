package router

import (
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/account"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/attendance"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/auth"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/config"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/meta"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/orgunit"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/realtime"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/roster"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/database"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/middleware"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/shared/token"
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/stats"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	accountRepository := account.NewAccountRepository()
	orgUnitRepository := orgunit.NewOrgUnitRepository()
	rosterRepository := roster.NewRosterRepository()
	attendanceRepository := attendance.NewAttendanceRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	hub := realtime.NewHub()

	// service
	authService := auth.NewAuthService(db.DB, accountRepository, tokenManager)
	accountService := account.NewAccountService(db.DB, accountRepository)
	orgUnitService := orgunit.NewOrgUnitService(db.DB, orgUnitRepository)
	rosterService := roster.NewRosterService(db.DB, rosterRepository, hub)
	statsService := stats.NewStatsService(db.DB, orgUnitRepository, rosterService)
	attendanceService := attendance.NewAttendanceService(db.DB, attendanceRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	accountHandler := account.NewAccountHandler(accountService)
	orgUnitHandler := orgunit.NewOrgUnitHandler(orgUnitService)
	rosterHandler := roster.NewRosterHandler(rosterService)
	statsHandler := stats.NewStatsHandler(statsService)
	attendanceHandler := attendance.NewAttendanceHandler(attendanceService)
	realtimeHandler := realtime.NewHandler(hub)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", authHandler.Signup)
		authV1.POST("/login", authHandler.Login)
	}

	accountV1 := router.Group("/api/v1/accounts")
	accountV1.Use(middleware.JWT(cfg))
	{
		accountV1.GET("/me", accountHandler.GetProfile)
	}

	orgV1 := router.Group("/api/v1/org")
	orgV1.Use(middleware.JWT(cfg))
	{
		orgV1.GET("/tree", orgUnitHandler.GetTree)
		orgV1.GET("/units", orgUnitHandler.ListByType)
		orgV1.POST("/units", orgUnitHandler.Create)
		orgV1.PATCH("/units/:id", orgUnitHandler.Update)
		orgV1.DELETE("/units/:id", orgUnitHandler.Delete)

		orgV1.GET("/units/:id/members", rosterHandler.ListMembers)
		orgV1.POST("/units/:id/members", rosterHandler.CreateMember)
		orgV1.PUT("/units/:id/members/:memberId", rosterHandler.UpdateMember)
		orgV1.DELETE("/units/:id/members/:memberId", rosterHandler.RemoveMember)

		orgV1.GET("/units/:id/attendance", attendanceHandler.GetByDate)
		orgV1.PUT("/units/:id/attendance", attendanceHandler.Upsert)

		orgV1.GET("/units/:id/subscribe", realtimeHandler.Subscribe)
	}

	membersV1 := router.Group("/api/v1/members")
	membersV1.Use(middleware.JWT(cfg))
	{
		membersV1.GET("/search", rosterHandler.Search)
	}

	statsV1 := router.Group("/api/v1/stats")
	statsV1.Use(middleware.JWT(cfg))
	{
		statsV1.GET("/choral", statsHandler.Choral)
		statsV1.GET("/committees", statsHandler.Committees)
	}
}
