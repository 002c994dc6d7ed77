package impl

import (
	"context"
	"testing"

	"meatly/internal/domain/entity"
	"meatly/internal/domain/repository"
	mockRepo "meatly/internal/mocks/repository"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type diagnosticsMocks struct {
	identityRepo *mockRepo.MockIdentityRepository
	profileRepo  *mockRepo.MockProfileRepository
	shopRepo     *mockRepo.MockShopRepository
	sessionRepo  *mockRepo.MockSessionRepository
	activityRepo *mockRepo.MockActivityRepository
}

func newDiagnosticsService(t *testing.T) (usecase.DiagnosticsUsecase, *diagnosticsMocks) {
	m := &diagnosticsMocks{
		identityRepo: mockRepo.NewMockIdentityRepository(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		shopRepo:     mockRepo.NewMockShopRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		activityRepo: mockRepo.NewMockActivityRepository(t),
	}

	service := NewDiagnosticsService(DiagnosticsServiceParams{
		IdentityRepo: m.identityRepo,
		ProfileRepo:  m.profileRepo,
		ShopRepo:     m.shopRepo,
		SessionRepo:  m.sessionRepo,
		ActivityRepo: m.activityRepo,
		Logger:       discardLogger(),
	})

	return service, m
}

const testPhone = "+919876543210"

func TestDiagnosticsService_Diagnose_Normal(t *testing.T) {
	service, m := newDiagnosticsService(t)
	ctx := context.Background()
	identityID := uuid.New()

	m.identityRepo.EXPECT().FindByPhone(ctx, testPhone).
		Return(&entity.Identity{ID: identityID, Phone: testPhone}, nil)
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).
		Return(&entity.Profile{IdentityID: identityID, Phone: testPhone}, nil)

	report, err := service.Diagnose(ctx, testPhone)

	require.NoError(t, err)
	assert.Equal(t, usecase.ClassificationNormal, report.Classification)
}

func TestDiagnosticsService_Diagnose_Available(t *testing.T) {
	service, m := newDiagnosticsService(t)
	ctx := context.Background()

	m.identityRepo.EXPECT().FindByPhone(ctx, testPhone).Return(nil, repository.ErrIdentityNotFound)
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).Return(nil, repository.ErrProfileNotFound)

	report, err := service.Diagnose(ctx, testPhone)

	require.NoError(t, err)
	assert.Equal(t, usecase.ClassificationAvailable, report.Classification)
	assert.Nil(t, report.Identity)
	assert.Nil(t, report.Profile)
}

func TestDiagnosticsService_Diagnose_OrphanedProfile(t *testing.T) {
	service, m := newDiagnosticsService(t)
	ctx := context.Background()

	m.identityRepo.EXPECT().FindByPhone(ctx, testPhone).Return(nil, repository.ErrIdentityNotFound)
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).
		Return(&entity.Profile{IdentityID: uuid.New(), Phone: testPhone}, nil)

	report, err := service.Diagnose(ctx, testPhone)

	require.NoError(t, err)
	assert.Equal(t, usecase.ClassificationOrphanedProfile, report.Classification)
}

func TestDiagnosticsService_Diagnose_OrphanedIdentity(t *testing.T) {
	service, m := newDiagnosticsService(t)
	ctx := context.Background()

	m.identityRepo.EXPECT().FindByPhone(ctx, testPhone).
		Return(&entity.Identity{ID: uuid.New(), Phone: testPhone}, nil)
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).Return(nil, repository.ErrProfileNotFound)

	report, err := service.Diagnose(ctx, testPhone)

	require.NoError(t, err)
	assert.Equal(t, usecase.ClassificationOrphanedIdentity, report.Classification)
}

func TestDiagnosticsService_Repair_OrphanedProfileCleansInOrder(t *testing.T) {
	service, m := newDiagnosticsService(t)
	ctx := context.Background()
	identityID := uuid.New()

	m.identityRepo.EXPECT().FindByPhone(ctx, testPhone).Return(nil, repository.ErrIdentityNotFound)
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).
		Return(&entity.Profile{IdentityID: identityID, Phone: testPhone}, nil).
		Once()

	m.sessionRepo.EXPECT().DeleteByIdentityID(ctx, identityID).Return(nil)
	m.activityRepo.EXPECT().DeleteByActorID(ctx, identityID).Return(nil)
	m.shopRepo.EXPECT().DeleteByOwnerID(ctx, identityID).Return(nil)
	m.profileRepo.EXPECT().Delete(ctx, identityID).Return(nil)

	result, err := service.Repair(ctx, testPhone)

	require.NoError(t, err)
	assert.Equal(t, usecase.ClassificationOrphanedProfile, result.Classification)
	assert.True(t, result.Succeeded())

	targets := make([]string, 0, len(result.Steps))
	for _, step := range result.Steps {
		targets = append(targets, step.Target)
	}
	assert.Equal(t, []string{"sessions", "activity_logs", "shops", "profile"}, targets)

	// The number is free to register again once the cleanup completed.
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).Return(nil, repository.ErrProfileNotFound)

	report, err := service.Diagnose(ctx, testPhone)

	require.NoError(t, err)
	assert.Equal(t, usecase.ClassificationAvailable, report.Classification)
}

func TestDiagnosticsService_Repair_ContinuesPastStepFailure(t *testing.T) {
	service, m := newDiagnosticsService(t)
	ctx := context.Background()
	identityID := uuid.New()

	m.identityRepo.EXPECT().FindByPhone(ctx, testPhone).Return(nil, repository.ErrIdentityNotFound)
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).
		Return(&entity.Profile{IdentityID: identityID, Phone: testPhone}, nil)

	m.sessionRepo.EXPECT().DeleteByIdentityID(ctx, identityID).Return(nil)
	m.activityRepo.EXPECT().DeleteByActorID(ctx, identityID).Return(errors.New("table locked"))
	m.shopRepo.EXPECT().DeleteByOwnerID(ctx, identityID).Return(nil)
	m.profileRepo.EXPECT().Delete(ctx, identityID).Return(nil)

	result, err := service.Repair(ctx, testPhone)

	require.NoError(t, err)
	assert.False(t, result.Succeeded())
	require.Len(t, result.Steps, 4)
	assert.Error(t, result.Steps[1].Err)
	assert.True(t, result.Steps[3].Done)
}

func TestDiagnosticsService_Repair_OrphanedIdentitySynthesizesProfile(t *testing.T) {
	service, m := newDiagnosticsService(t)
	ctx := context.Background()
	identity := &entity.Identity{
		ID:    uuid.New(),
		Name:  "Ravi Kumar",
		Phone: testPhone,
		Email: "ravi@example.com",
	}

	m.identityRepo.EXPECT().FindByPhone(ctx, testPhone).Return(identity, nil)
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).Return(nil, repository.ErrProfileNotFound)

	m.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, identity.ID, profile.IdentityID)
			assert.Equal(t, identity.Name, profile.Name)
			assert.Equal(t, identity.Phone, profile.Phone)
		}).
		Return(nil)
	m.activityRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.ActivityLog")).
		Return(nil)

	result, err := service.Repair(ctx, testPhone)

	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "profile", result.Steps[0].Target)
}

func TestDiagnosticsService_Repair_HealthyAccountUntouched(t *testing.T) {
	service, m := newDiagnosticsService(t)
	ctx := context.Background()
	identityID := uuid.New()

	m.identityRepo.EXPECT().FindByPhone(ctx, testPhone).
		Return(&entity.Identity{ID: identityID, Phone: testPhone}, nil)
	m.profileRepo.EXPECT().FindByPhone(ctx, testPhone).
		Return(&entity.Profile{IdentityID: identityID, Phone: testPhone}, nil)

	result, err := service.Repair(ctx, testPhone)

	require.NoError(t, err)
	assert.Equal(t, usecase.ClassificationNormal, result.Classification)
	assert.Empty(t, result.Steps)
}
