package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/medimind/backend/config"
	"github.com/medimind/backend/internal/api/http/handler"
	"github.com/medimind/backend/internal/api/http/middleware"
	"github.com/medimind/backend/internal/repo"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/internal/service/assignment"
	"github.com/medimind/backend/internal/service/consultation"
	"github.com/medimind/backend/internal/service/conversation"
	"github.com/medimind/backend/internal/service/prescription"
	"github.com/medimind/backend/internal/service/recommendation"
	"github.com/medimind/backend/internal/service/report"
	"github.com/medimind/backend/internal/service/security"
	"github.com/medimind/backend/internal/service/user"
	"github.com/medimind/backend/pkg/token"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg               *config.Config
	DB                *repo.Client
	Tokens            *token.Manager
	UserSvc           user.Service
	AssignmentSvc     assignment.Service
	ReportSvc         report.Service
	RecommendationSvc recommendation.Service
	ConsultationSvc   consultation.Service
	ConversationSvc   conversation.Service
	PrescriptionSvc   prescription.Service
	SecuritySvc       security.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.Tokens, r.p.SecuritySvc)
	doctorOnly := middleware.RequireRole(r.p.DB, entuser.RoleDoctor)
	patientOnly := middleware.RequireRole(r.p.DB, entuser.RolePatient)

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.UserSvc, r.p.SecuritySvc, r.p.Tokens)
	userH := handler.NewUserHandler(r.p.UserSvc, r.p.PrescriptionSvc)
	doctorH := handler.NewDoctorHandler(r.p.UserSvc, r.p.AssignmentSvc, r.p.PrescriptionSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)
	recommendationH := handler.NewRecommendationHandler(r.p.RecommendationSvc)
	consultationH := handler.NewConsultationHandler(r.p.ConsultationSvc)
	conversationH := handler.NewConversationHandler(r.p.ConversationSvc)
	securityH := handler.NewSecurityHandler(r.p.SecuritySvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerDoctorRoutes(api, doctorH, authRequired, doctorOnly)
	r.registerReportRoutes(api, reportH, authRequired, patientOnly)
	r.registerRecommendationRoutes(api, recommendationH, authRequired, doctorOnly, patientOnly)
	r.registerConsultationRoutes(api, consultationH, authRequired, patientOnly)
	r.registerConversationRoutes(api, conversationH, authRequired)
	r.registerSecurityRoutes(api, securityH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
