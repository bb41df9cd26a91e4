package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/services"
)

// NewRouter builds the gin engine with every route. Everything except /health,
// /login and /logout requires a logged-in worker.
func NewRouter(svc *services.Registry, store sessions.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(gin.Recovery())
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	authHandler := NewAuthHandler(svc.Auth)
	dashboardHandler := NewDashboardHandler(svc.Dashboard)
	taskHandler := NewTaskHandler(svc.Tasks)
	workerHandler := NewWorkerHandler(svc.Workers)
	positionHandler := NewPositionHandler(svc.Positions)
	taskTypeHandler := NewTaskTypeHandler(svc.TaskTypes)
	tagHandler := NewTagHandler(svc.Tags)
	teamHandler := NewTeamHandler(svc.Teams)
	projectHandler := NewProjectHandler(svc.Projects)

	// Public routes
	r.GET("/health", Health)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	private := r.Group("")
	private.Use(middleware.RequireAuth(svc.Auth))
	{
		private.GET("/", dashboardHandler.Index)
		private.GET("/me", authHandler.GetCurrentWorker)

		tasks := private.Group("/tasks")
		{
			tasks.GET("/", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("/create", taskHandler.CreateTask)
			tasks.POST("/update/:id", taskHandler.UpdateTask)
			tasks.POST("/delete/:id", taskHandler.DeleteTask)
			tasks.POST("/toggle/:id", taskHandler.ToggleTask)
		}

		workers := private.Group("/workers")
		{
			workers.GET("/", workerHandler.ListWorkers)
			workers.GET("/:id", workerHandler.GetWorker)
			workers.POST("/create", workerHandler.CreateWorker)
			workers.POST("/update/:id", workerHandler.UpdateWorker)
			workers.POST("/delete/:id", workerHandler.DeleteWorker)
		}

		positions := private.Group("/positions")
		{
			positions.GET("/", positionHandler.ListPositions)
			positions.GET("/:id", positionHandler.GetPosition)
			positions.POST("/create", positionHandler.CreatePosition)
			positions.POST("/update/:id", positionHandler.UpdatePosition)
			positions.POST("/delete/:id", positionHandler.DeletePosition)
		}

		taskTypes := private.Group("/task-types")
		{
			taskTypes.GET("/", taskTypeHandler.ListTaskTypes)
			taskTypes.GET("/:id", taskTypeHandler.GetTaskType)
			taskTypes.POST("/create", taskTypeHandler.CreateTaskType)
			taskTypes.POST("/update/:id", taskTypeHandler.UpdateTaskType)
			taskTypes.POST("/delete/:id", taskTypeHandler.DeleteTaskType)
		}

		tags := private.Group("/tags")
		{
			tags.GET("/", tagHandler.ListTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.POST("/create", tagHandler.CreateTag)
			tags.POST("/update/:id", tagHandler.UpdateTag)
			tags.POST("/delete/:id", tagHandler.DeleteTag)
		}

		teams := private.Group("/teams")
		{
			teams.GET("/", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("/create", teamHandler.CreateTeam)
			teams.POST("/update/:id", teamHandler.UpdateTeam)
			teams.POST("/delete/:id", teamHandler.DeleteTeam)
		}

		projects := private.Group("/projects")
		{
			projects.GET("/", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/create", projectHandler.CreateProject)
			projects.POST("/update/:id", projectHandler.UpdateProject)
			projects.POST("/delete/:id", projectHandler.DeleteProject)
		}
	}

	return r
}
