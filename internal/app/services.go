package app

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medimind/backend/internal/repo"
	"github.com/medimind/backend/internal/service/assignment"
	"github.com/medimind/backend/internal/service/consultation"
	"github.com/medimind/backend/internal/service/conversation"
	"github.com/medimind/backend/internal/service/prescription"
	"github.com/medimind/backend/internal/service/recommendation"
	svcreport "github.com/medimind/backend/internal/service/report"
	"github.com/medimind/backend/internal/service/security"
	"github.com/medimind/backend/internal/service/user"
	"github.com/medimind/backend/pkg/ai"
	"github.com/medimind/backend/pkg/events"
	"github.com/medimind/backend/pkg/meeting"
	s3pkg "github.com/medimind/backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideConversationService,
		ProvideAssignmentService,
		ProvideRecommendationService,
		ProvideConsultationService,
		ProvideReportService,
		ProvideUserService,
		ProvidePrescriptionService,
		ProvideSecurityService,
	),
)

func ProvideConversationService(db *repo.Client) conversation.Service {
	return conversation.New(db)
}

func ProvideAssignmentService(db *repo.Client, conversations conversation.Service) assignment.Service {
	return assignment.New(db, conversations, slog.Default())
}

func ProvideRecommendationService(db *repo.Client) recommendation.Service {
	return recommendation.New(db, slog.Default())
}

func ProvideConsultationService(
	db *repo.Client,
	recommendations recommendation.Service,
	rooms *meeting.Generator,
	publisher *events.Publisher,
) consultation.Service {
	return consultation.New(db, recommendations, rooms, publisher, slog.Default())
}

func ProvideReportService(
	db *repo.Client,
	storage *s3pkg.Client,
	analyzer ai.Provider,
	recommendations recommendation.Service,
	publisher *events.Publisher,
) svcreport.Service {
	return svcreport.New(db, storage, analyzer, recommendations, publisher, slog.Default())
}

func ProvideUserService(db *repo.Client, assignments assignment.Service) user.Service {
	return user.New(db, assignments, slog.Default())
}

func ProvidePrescriptionService(db *repo.Client, recommendations recommendation.Service) prescription.Service {
	return prescription.New(db, recommendations, slog.Default())
}

func ProvideSecurityService(db *repo.Client, rdb *redis.Client, ttl SessionTTL) security.Service {
	return security.New(db, rdb, time.Duration(ttl), slog.Default())
}
