// Package routes wires the HTTP surface onto a gin engine.
package routes

import (
	"github.com/IbuoCloud/backensena/internal/handler"
	"github.com/IbuoCloud/backensena/internal/middleware"
	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup builds every service and handler over db and registers all routes.
// CRUD endpoints are open, matching the source system; only /auth/me,
// /auth/admin and API key deletion sit behind the token gate.
func Setup(r *gin.Engine, db *gorm.DB, tokens *service.TokenService) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authSvc := service.NewAuthService(db, tokens)
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(service.NewUserService(db), authSvc)
	taskH := handler.NewTaskHandler(service.NewTaskService(db))
	projectH := handler.NewProjectHandler(service.NewProjectService(db))
	teamH := handler.NewTeamHandler(service.NewTeamService(db))
	milestoneH := handler.NewMilestoneHandler(service.NewMilestoneService(db))
	apikeyH := handler.NewAPIKeyHandler(service.NewAPIKeyService(db))
	statsH := handler.NewStatsHandler(service.NewStatsService(db))

	authed := middleware.Auth(tokens, authSvc)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/token", authH.Token)
		auth.GET("/me", authed, authH.Me)
		auth.GET("/admin", authed, middleware.AdminOnly(), authH.Admin)
	}

	users := r.Group("/users")
	{
		users.GET("", userH.List)
		users.POST("", userH.Create)
		users.GET("/:id", userH.Get)
		users.PUT("/:id", userH.Update)
		users.DELETE("/:id", userH.Delete)
	}

	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskH.List)
		tasks.POST("", taskH.Create)
		tasks.GET("/:id", taskH.Get)
		tasks.PATCH("/:id", taskH.Update)
		tasks.DELETE("/:id", taskH.Delete)
	}

	api := r.Group("/api")
	{
		api.GET("/projects", projectH.List)
		api.POST("/projects", projectH.Create)
		api.GET("/projects/:id", projectH.Get)
		api.PATCH("/projects/:id", projectH.Update)
		api.DELETE("/projects/:id", projectH.Delete)
		api.GET("/projects/:id/team", projectH.Team)
		api.POST("/projects/:id/team", projectH.AssignTeam)
		api.DELETE("/projects/:id/team/:memberId", projectH.RemoveTeamMember)

		api.GET("/team", teamH.ListMembers)
		api.POST("/team", teamH.CreateMember)
		api.GET("/team/:id", teamH.GetMember)
		api.PATCH("/team/:id", teamH.UpdateMember)
		api.DELETE("/team/:id", teamH.DeleteMember)

		api.GET("/teams", teamH.ListTeams)
		api.POST("/teams", teamH.CreateTeam)
		api.GET("/teams/:id", teamH.GetTeam)
		api.PATCH("/teams/:id", teamH.UpdateTeam)
		api.DELETE("/teams/:id", teamH.DeleteTeam)

		api.GET("/milestones", milestoneH.List)
		api.POST("/milestones", milestoneH.Create)
		api.GET("/milestones/:id", milestoneH.Get)
		api.PATCH("/milestones/:id", milestoneH.Update)
		api.DELETE("/milestones/:id", milestoneH.Delete)

		api.GET("/stats", statsH.Overview)
	}

	apikeys := r.Group("/apikeys")
	{
		apikeys.GET("", apikeyH.List)
		apikeys.POST("", apikeyH.Create)
		apikeys.GET("/validate", apikeyH.Validate)
		apikeys.DELETE("/:id", authed, middleware.AdminOnly(), apikeyH.Delete)
	}
}
