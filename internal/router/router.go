package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/config"
	"github.com/worknest/staff/internal/constants"
	apierrors "github.com/worknest/staff/internal/errors"
	"github.com/worknest/staff/internal/forms"
	"github.com/worknest/staff/internal/handlers"
	"github.com/worknest/staff/internal/middleware"
	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/repository"
	"github.com/worknest/staff/internal/services"
	"github.com/worknest/staff/internal/web"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers into a gin engine.
func New(cfg *config.Config, db *gorm.DB, store sessions.Store, log *zap.Logger) (*gin.Engine, error) {
	forms.Init()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	storage, err := services.NewStorageService(cfg.MediaRoot)
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	employmentRepo := repository.NewEmploymentRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	employeeRepo := repository.NewGormRepository[models.Employee](db, "employee_code ASC")

	// Services
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(profileRepo, cfg.PageSize)
	employmentService := services.NewEmploymentService(employmentRepo)
	membershipService := services.NewMembershipService(membershipRepo)
	employeeService := services.NewEmployeeService(employeeRepo, storage)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	staffHandler := handlers.NewStaffHandler(profileService)
	adminHandler := handlers.NewAdminHandler(employmentService, membershipService, employeeService)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.SessionLifetime(cfg))
	r.Use(middleware.LoadUser(authService))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/admin/") {
			apierrors.NotFound(c, "")
			return
		}
		handlers.NotFoundPage(c)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Staff records service is running",
		})
	})
	r.Static("/media", storage.MediaRoot())

	// Auth routes (public)
	r.GET("/login/", authHandler.LoginForm)
	r.POST("/login/", authHandler.Login)
	r.POST("/logout/", authHandler.Logout)
	r.GET("/logout/", authHandler.LogoutNotAllowed)
	r.HEAD("/logout/", authHandler.LogoutNotAllowed)

	// Staff pages (login required)
	staff := r.Group("/")
	staff.Use(middleware.RequireLogin())
	{
		staff.GET("/", staffHandler.Home)
		staff.GET("/add/", staffHandler.AddForm)
		staff.POST("/add/", staffHandler.Add)
		staff.GET("/:id/profile", staffHandler.Detail)
	}

	// Operator console (superusers only)
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireSuperuser())
	{
		admin.GET("/me", authHandler.GetCurrentUser)
		admin.GET("/choices", adminHandler.Choices)

		handlers.NewResourceHandler[models.PersonalProfile, forms.PersonalProfileForm](
			services.NewResourceService(repository.NewGormRepository[models.PersonalProfile](db, "last_name ASC, first_name ASC, id ASC")),
		).Register(admin.Group("/profiles"))
		handlers.NewResourceHandler[models.Employee, forms.EmployeeForm](
			services.NewResourceService(employeeRepo),
		).Register(admin.Group("/employees"))
		handlers.NewResourceHandler[models.Address, forms.AddressAdminForm](
			services.NewResourceService(repository.NewGormRepository[models.Address](db, "")),
		).Register(admin.Group("/addresses"))
		handlers.NewResourceHandler[models.Employment, forms.EmploymentForm](
			services.NewResourceService(repository.NewGormRepository[models.Employment](db, "started_role_at_date DESC, id DESC")),
		).WithCreate(employmentService.Start).Register(admin.Group("/employments"))
		handlers.NewResourceHandler[models.PayrollProfile, forms.PayrollProfileForm](
			services.NewResourceService(repository.NewGormRepository[models.PayrollProfile](db, "")),
		).Register(admin.Group("/payroll-profiles"))
		handlers.NewResourceHandler[models.Project, forms.ProjectForm](
			services.NewResourceService(repository.NewGormRepository[models.Project](db, "created_date DESC, id DESC")),
		).Register(admin.Group("/projects"))
		handlers.NewResourceHandler[models.Task, forms.TaskForm](
			services.NewResourceService(repository.NewGormRepository[models.Task](db, "created_date DESC, id DESC")),
		).Register(admin.Group("/tasks"))
		handlers.NewResourceHandler[models.EmployeeProject, forms.ProjectMembershipForm](
			services.NewResourceService(repository.NewGormRepository[models.EmployeeProject](db, "date_joined DESC, id DESC")),
		).Register(admin.Group("/project-memberships"))
		handlers.NewResourceHandler[models.EmployeeTask, forms.TaskMembershipForm](
			services.NewResourceService(repository.NewGormRepository[models.EmployeeTask](db, "date_joined DESC, id DESC")),
		).Register(admin.Group("/task-memberships"))

		admin.POST("/employees/:id/photo", adminHandler.UploadPhoto)
		admin.GET("/employees/:id/employments", adminHandler.ListEmployments)
		admin.POST("/employees/:id/employments", adminHandler.StartEmployment)
		admin.GET("/employees/:id/employments/current", adminHandler.CurrentEmployment)
		admin.POST("/employments/:id/end", adminHandler.EndEmployment)

		admin.GET("/projects/:id/members", adminHandler.ProjectMembers)
		admin.POST("/projects/:id/members", adminHandler.JoinProject)
		admin.POST("/projects/:id/members/:employee_id/leave", adminHandler.LeaveProject)

		admin.GET("/tasks/:id/members", adminHandler.TaskMembers)
		admin.POST("/tasks/:id/members", adminHandler.JoinTask)
		admin.POST("/tasks/:id/members/:employee_id/leave", adminHandler.LeaveTask)
	}

	return r, nil
}
