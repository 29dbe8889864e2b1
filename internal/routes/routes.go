package routes

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	"github.com/BruksfildServices01/gym-scheduler/internal/config"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/careplan"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/gym-scheduler/internal/handlers"
	"github.com/BruksfildServices01/gym-scheduler/internal/middleware"
	"github.com/BruksfildServices01/gym-scheduler/internal/session"
	"github.com/BruksfildServices01/gym-scheduler/internal/storage"
	"github.com/BruksfildServices01/gym-scheduler/internal/throttle"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
	ucAccount "github.com/BruksfildServices01/gym-scheduler/internal/usecase/account"
	ucAdmin "github.com/BruksfildServices01/gym-scheduler/internal/usecase/admin"
	ucAppointment "github.com/BruksfildServices01/gym-scheduler/internal/usecase/appointment"
	ucCarePlan "github.com/BruksfildServices01/gym-scheduler/internal/usecase/careplan"
	ucDashboard "github.com/BruksfildServices01/gym-scheduler/internal/usecase/dashboard"
	ucMembership "github.com/BruksfildServices01/gym-scheduler/internal/usecase/membership"
	"github.com/BruksfildServices01/gym-scheduler/internal/validators"
	"github.com/BruksfildServices01/gym-scheduler/internal/web"
)

// Dependencies are the singletons built by main (or by a test) that the routes are
// wired against.
type Dependencies struct {
	Config *config.Config
	Clock  timezone.Clock

	Accounts     account.Repository
	Appointments appointment.Repository
	Memberships  membership.Repository
	CarePlans    careplan.Repository
	Reports      report.Repository

	Photos   storage.PhotoStore
	Sessions *session.Manager
	Limiter  throttle.Limiter
	Audit    audit.Sink
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	clock := deps.Clock
	auditSink := deps.Audit
	if auditSink == nil {
		auditSink = audit.Discard
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SessionMiddleware(deps.Sessions, cfg.CookieSecure))

	// ======================================================
	// TEMPLATES / ASSETS
	// ======================================================
	r.SetHTMLTemplate(template.Must(web.Templates(clock.Location())))
	r.StaticFS("/static", http.FS(web.Static()))
	if !cfg.S3.Enabled() {
		r.Static("/media", cfg.MediaRoot)
	}

	// ======================================================
	// USE CASES - ACCOUNTS
	// ======================================================
	emails := validators.EmailChecker{CheckDomain: cfg.CheckEmailDomain}

	registerUC := ucAccount.NewRegister(deps.Accounts, deps.Photos, emails, auditSink)
	loginUC := ucAccount.NewLogin(deps.Accounts, deps.Limiter, auditSink)
	profilesUC := ucAccount.NewProfiles(deps.Accounts, deps.Photos)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(deps.Appointments, clock)
	bookUC := ucAppointment.NewBook(deps.Appointments, auditSink, clock)
	cancelUC := ucAppointment.NewCancelAppointment(deps.Appointments, auditSink, clock)
	listForTraineeUC := ucAppointment.NewListForTrainee(deps.Appointments, clock)
	updateByTrainerUC := ucAppointment.NewUpdateByTrainer(deps.Appointments, auditSink, clock)
	recordPaymentUC := ucAppointment.NewRecordPayment(deps.Appointments, auditSink, clock)

	// ======================================================
	// USE CASES - MEMBERSHIPS / PLANS
	// ======================================================
	selectPlanUC := ucMembership.NewSelectPlan(deps.Memberships, auditSink, clock)
	checkoutUC := ucMembership.NewCheckout(deps.Memberships, auditSink, clock)
	membershipForUserUC := ucMembership.NewGetForUser(deps.Memberships)
	assignTrainerUC := ucMembership.NewAssignTrainer(deps.Memberships, auditSink, clock)

	addPlanUC := ucCarePlan.NewAddPlan(deps.CarePlans, deps.Accounts, auditSink)

	// ======================================================
	// USE CASES - DASHBOARDS
	// ======================================================
	traineeDashboardUC := ucDashboard.NewTraineeDashboard(
		deps.Accounts,
		deps.Appointments,
		deps.Memberships,
		deps.CarePlans,
		clock,
	)
	trainerDashboardUC := ucDashboard.NewTrainerDashboard(deps.Appointments, deps.CarePlans, clock)
	summaryUC := ucAdmin.NewGetSummary(deps.Reports, clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	render := handlers.NewRenderer(cfg.SiteName, cfg.CookieSecure)

	publicHandler := handlers.NewPublicWebHandler(render, profilesUC)
	authHandler := handlers.NewAuthHandler(
		render,
		registerUC,
		loginUC,
		deps.Sessions,
		clock,
		cfg.CookieSecure,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		render,
		profilesUC,
		availabilityUC,
		bookUC,
		cancelUC,
		listForTraineeUC,
		clock,
	)
	traineeHandler := handlers.NewTraineeHandler(
		render,
		profilesUC,
		traineeDashboardUC,
		selectPlanUC,
		assignTrainerUC,
		clock,
	)
	trainerHandler := handlers.NewTrainerHandler(
		render,
		profilesUC,
		trainerDashboardUC,
		addPlanUC,
		updateByTrainerUC,
		recordPaymentUC,
	)
	membershipHandler := handlers.NewMembershipHandler(render, profilesUC, checkoutUC, membershipForUserUC)
	adminHandler := handlers.NewAdminHandler(render, summaryUC)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", handlers.Health)

	r.GET("/", publicHandler.Home)
	r.GET("/about/", publicHandler.About)
	r.GET("/contact/", publicHandler.Contact)
	r.GET("/services/", publicHandler.Services)
	r.GET("/membership/plans/", publicHandler.MembershipPlans)
	r.GET("/trainers/", publicHandler.Trainers)

	// ======================================================
	// AUTH
	// ======================================================
	r.GET("/login/", authHandler.LoginPage)
	r.POST("/login/", authHandler.Login)
	r.GET("/logout/", authHandler.Logout)

	r.GET("/register/trainee/", authHandler.RegisterTraineePage)
	r.POST("/register/trainee/", authHandler.RegisterTrainee)
	r.GET("/register/trainer/", authHandler.RegisterTrainerPage)
	r.POST("/register/trainer/", authHandler.RegisterTrainer)

	// ======================================================
	// LOGGED IN
	// ======================================================
	loggedIn := r.Group("/")
	loggedIn.Use(middleware.RequireLogin())
	{
		// ------------------------------
		// TRAINEE
		// ------------------------------
		trainee := loggedIn.Group("/")
		trainee.Use(middleware.RequireRole(account.RoleTrainee))
		{
			trainee.GET("/trainee/dashboard/", traineeHandler.Dashboard)
			trainee.POST("/trainee/dashboard/", traineeHandler.DashboardAction)
			trainee.GET("/profile/", traineeHandler.Profile)

			trainee.GET("/appointment/book/", appointmentHandler.BookPage)
			trainee.POST("/appointment/book/", appointmentHandler.Book)
			trainee.GET("/appointments/view/", appointmentHandler.View)
			trainee.POST("/appointments/view/", appointmentHandler.Cancel)
		}

		// ------------------------------
		// TRAINER
		// ------------------------------
		trainer := loggedIn.Group("/trainer")
		trainer.Use(middleware.RequireRole(account.RoleTrainer))
		{
			trainer.GET("/dashboard/", trainerHandler.Dashboard)
			trainer.POST("/dashboard/", trainerHandler.DashboardAction)
		}

		// ------------------------------
		// MEMBERSHIP
		// ------------------------------
		loggedIn.GET("/membership/checkout/:plan_type/", membershipHandler.CheckoutPage)
		loggedIn.POST("/membership/checkout/:plan_type/", membershipHandler.Checkout)
		loggedIn.GET("/membership/payment-success/:membership_id/", membershipHandler.PaymentSuccess)

		// ------------------------------
		// ADMIN
		// ------------------------------
		staff := loggedIn.Group("/admin-dashboard")
		staff.Use(middleware.RequireStaff())
		{
			staff.GET("/", adminHandler.Dashboard)
			staff.GET("/export.xlsx", adminHandler.Export)
		}
	}
}
