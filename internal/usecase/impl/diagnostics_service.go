package impl

import (
	"context"
	"log/slog"

	deliverycontext "meatly/internal/delivery/context"
	"meatly/internal/domain/entity"
	"meatly/internal/domain/repository"
	"meatly/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// diagnosticsService implements the DiagnosticsUsecase interface. It inspects
// the identity/profile pair for a phone number and repairs the two orphaned
// states the pipeline can leave behind.
type diagnosticsService struct {
	identityRepo repository.IdentityRepository
	profileRepo  repository.ProfileRepository
	shopRepo     repository.ShopRepository
	sessionRepo  repository.SessionRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// DiagnosticsServiceParams holds dependencies for DiagnosticsService, injected by Fx.
type DiagnosticsServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	ProfileRepo  repository.ProfileRepository
	ShopRepo     repository.ShopRepository
	SessionRepo  repository.SessionRepository
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewDiagnosticsService is the constructor for diagnosticsService.
func NewDiagnosticsService(params DiagnosticsServiceParams) usecase.DiagnosticsUsecase {
	return &diagnosticsService{
		identityRepo: params.IdentityRepo,
		profileRepo:  params.ProfileRepo,
		shopRepo:     params.ShopRepo,
		sessionRepo:  params.SessionRepo,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *diagnosticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Diagnose classifies the state of a phone number without modifying anything.
func (srv *diagnosticsService) Diagnose(ctx context.Context, phone string) (*usecase.DiagnosisReport, error) {
	identity, err := srv.identityRepo.FindByPhone(ctx, phone)
	if err != nil && !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, errors.Wrap(err, "failed to look up identity")
	}

	profile, err := srv.profileRepo.FindByPhone(ctx, phone)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to look up profile")
	}

	report := &usecase.DiagnosisReport{
		Phone:    phone,
		Identity: identity,
		Profile:  profile,
	}

	switch {
	case identity == nil && profile == nil:
		report.Classification = usecase.ClassificationAvailable
	case identity != nil && profile != nil:
		report.Classification = usecase.ClassificationNormal
	case identity == nil:
		report.Classification = usecase.ClassificationOrphanedProfile
	default:
		report.Classification = usecase.ClassificationOrphanedIdentity
	}

	return report, nil
}

// Repair fixes an orphaned state. Healthy and vacant numbers are untouched.
func (srv *diagnosticsService) Repair(ctx context.Context, phone string) (*usecase.RepairResult, error) {
	report, err := srv.Diagnose(ctx, phone)
	if err != nil {
		return nil, err
	}

	result := &usecase.RepairResult{
		Phone:          phone,
		Classification: report.Classification,
	}

	switch report.Classification {
	case usecase.ClassificationOrphanedProfile:
		srv.repairOrphanedProfile(ctx, report.Profile, result)
	case usecase.ClassificationOrphanedIdentity:
		srv.repairOrphanedIdentity(ctx, report.Identity, result)
	case usecase.ClassificationNormal, usecase.ClassificationAvailable:
		// Nothing to repair.
	}

	return result, nil
}

// repairOrphanedProfile removes every record hanging off a profile whose
// identity is gone, in dependency order. Each step runs even when an earlier
// one failed so a re-run only has the remainder to do.
func (srv *diagnosticsService) repairOrphanedProfile(ctx context.Context, profile *entity.Profile, result *usecase.RepairResult) {
	identityID := profile.IdentityID

	steps := []struct {
		target string
		run    func() error
	}{
		{"sessions", func() error { return srv.sessionRepo.DeleteByIdentityID(ctx, identityID) }},
		{"activity_logs", func() error { return srv.activityRepo.DeleteByActorID(ctx, identityID) }},
		{"shops", func() error { return srv.shopRepo.DeleteByOwnerID(ctx, identityID) }},
		{"profile", func() error { return srv.profileRepo.Delete(ctx, identityID) }},
	}

	for _, step := range steps {
		err := step.run()
		result.Steps = append(result.Steps, usecase.RepairStep{
			Target: step.target,
			Done:   err == nil,
			Err:    err,
		})
		if err != nil {
			srv.log(ctx).Error("Repair step failed, continuing",
				slog.String("target", step.target),
				slog.Any("identityID", identityID),
				slog.Any("error", err),
			)
		}
	}
}

// repairOrphanedIdentity re-synthesizes the missing profile projection from
// the identity's own fields.
func (srv *diagnosticsService) repairOrphanedIdentity(ctx context.Context, identity *entity.Identity, result *usecase.RepairResult) {
	profile := entity.ProjectProfile(identity)
	err := srv.profileRepo.Create(ctx, profile)
	result.Steps = append(result.Steps, usecase.RepairStep{
		Target: "profile",
		Done:   err == nil,
		Err:    err,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to re-synthesize profile",
			slog.Any("identityID", identity.ID),
			slog.Any("error", err),
		)

		return
	}

	activity := &entity.ActivityLog{
		ActorID: identity.ID,
		Action:  entity.ActionOrphanRepaired,
		Detail:  "profile re-synthesized from identity",
	}
	if err := srv.activityRepo.Append(ctx, activity); err != nil {
		srv.log(ctx).Warn("Failed to record repair activity",
			slog.Any("identityID", identity.ID),
			slog.Any("error", err),
		)
	}
}
