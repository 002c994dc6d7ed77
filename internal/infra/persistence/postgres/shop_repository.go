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

// shopRepository implements the domain.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// FindByID retrieves a shop regardless of visibility flags.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindByOwnerID retrieves the shop linked to an identity.
func (repo *shopRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&shopM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by owner id")
	}

	return toShopDomain(&shopM), nil
}

// FindByContact retrieves a shop by phone or email, for upsert-by-uniqueness.
func (repo *shopRepository) FindByContact(ctx context.Context, phone, email string) (*entity.Shop, error) {
	query := repo.db.WithContext(ctx)
	if email != "" {
		query = query.Where("phone = ? OR email = ?", phone, email)
	} else {
		query = query.Where("phone = ?", phone)
	}

	var shopM model.ShopModel
	if err := query.First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by contact")
	}

	return toShopDomain(&shopM), nil
}

// Create persists a new shop row.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShopPersistenceFailed.WrapMessage("shop already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopPersistenceFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// Update modifies an existing shop row.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Save(shopM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindVisibleByID retrieves a shop only when active AND approved are both set.
// A hidden shop is indistinguishable from a missing one.
func (repo *shopRepository) FindVisibleByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND active = ? AND approved = ?", id, true, true).
		First(&shopM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find visible shop")
	}

	return toShopDomain(&shopM), nil
}

// ListVisible retrieves all shops with active AND approved set.
func (repo *shopRepository) ListVisible(ctx context.Context) ([]*entity.Shop, error) {
	var shopMs []*model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("active = ? AND approved = ?", true, true).
		Find(&shopMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list visible shops")
	}

	shops := make([]*entity.Shop, 0, len(shopMs))
	for _, shopM := range shopMs {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// DeleteByOwnerID removes shops linked to an identity. Used by orphan repair.
func (repo *shopRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.ShopModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shops by owner")
	}

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	documents := make(entity.Documents, len(data.Documents))
	for kind, ref := range data.Documents {
		documents[entity.DocumentKind(kind)] = ref
	}

	return &entity.Shop{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Name:           data.Name,
		OwnerName:      data.OwnerName,
		Plot:           data.Plot,
		Floor:          data.Floor,
		Building:       data.Building,
		AddressLine:    data.AddressLine,
		Area:           data.Area,
		City:           data.City,
		Pincode:        data.Pincode,
		FullAddress:    data.FullAddress,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		NeedsGeocoding: data.NeedsGeocoding,
		Phone:          data.Phone,
		Email:          data.Email,
		WorkingDays:    data.WorkingDays,
		OpenTime:       data.OpenTime,
		CloseTime:      data.CloseTime,
		Documents:      documents,
		Photos:         data.Photos,
		Active:         data.Active,
		Approved:       data.Approved,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	documents := make(map[string]string, len(data.Documents))
	for kind, ref := range data.Documents {
		documents[kind.String()] = ref
	}

	return &model.ShopModel{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Name:           data.Name,
		OwnerName:      data.OwnerName,
		Plot:           data.Plot,
		Floor:          data.Floor,
		Building:       data.Building,
		AddressLine:    data.AddressLine,
		Area:           data.Area,
		City:           data.City,
		Pincode:        data.Pincode,
		FullAddress:    data.FullAddress,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		NeedsGeocoding: data.NeedsGeocoding,
		Phone:          data.Phone,
		Email:          data.Email,
		WorkingDays:    data.WorkingDays,
		OpenTime:       data.OpenTime,
		CloseTime:      data.CloseTime,
		Documents:      documents,
		Photos:         data.Photos,
		Active:         data.Active,
		Approved:       data.Approved,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
