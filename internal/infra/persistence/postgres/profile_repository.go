package postgres

import (
	"context"

	"meatly/internal/domain/entity"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/repository"
	"meatly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByIdentityID retrieves the profile mirroring the given identity.
func (repo *profileRepository) FindByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by identity id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByPhone retrieves a profile by phone number.
func (repo *profileRepository) FindByPhone(ctx context.Context, phone string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by phone")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile row.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("profile already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Delete removes a profile row. Used by compensation and orphan repair.
func (repo *profileRepository) Delete(ctx context.Context, identityID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Delete(&model.ProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		IdentityID: data.IdentityID,
		Name:       data.Name,
		Phone:      data.Phone,
		Email:      data.Email,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		IdentityID: data.IdentityID,
		Name:       data.Name,
		Phone:      data.Phone,
		Email:      data.Email,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
