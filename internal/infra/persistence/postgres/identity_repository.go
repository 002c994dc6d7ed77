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

// identityRepository implements the domain.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByID retrieves a single identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&identityM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by id")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByPhone retrieves a single identity by its phone number.
func (repo *identityRepository) FindByPhone(ctx context.Context, phone string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&identityM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by phone")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByPhoneOrEmail retrieves the first identity matching either contact field.
// An empty email only matches on the phone column.
func (repo *identityRepository) FindByPhoneOrEmail(ctx context.Context, phone, email string) (*entity.Identity, error) {
	query := repo.db.WithContext(ctx)
	if email != "" {
		query = query.Where("phone = ? OR email = ?", phone, email)
	} else {
		query = query.Where("phone = ?", phone)
	}

	var identityM model.IdentityModel
	if err := query.First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by contact")
	}

	return toIdentityDomain(&identityM), nil
}

// Create persists a new identity. Unique index violations on the contact
// columns surface as the duplicate-registration conflict.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("phone or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrIdentityCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	// Update the entity with the generated ID and timestamps
	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// Update modifies an existing identity.
func (repo *identityRepository) Update(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Save(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("phone or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update identity")
	}

	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// Delete removes an identity row. Used only by compensating rollback.
func (repo *identityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.IdentityModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete identity")
	}

	return nil
}

// --- Mapper Functions ---

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	email := ""
	if data.Email != nil {
		email = *data.Email
	}

	return &entity.Identity{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        email,
		PasswordHash: data.PasswordHash,
		Active:       data.Active,
		Verified:     data.Verified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromIdentityDomain converts a domain Identity entity to a GORM IdentityModel.
// An empty email becomes NULL so the unique index skips it.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	var email *string
	if data.Email != "" {
		email = &data.Email
	}

	return &model.IdentityModel{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        email,
		PasswordHash: data.PasswordHash,
		Active:       data.Active,
		Verified:     data.Verified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
