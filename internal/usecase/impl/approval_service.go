package impl

import (
	"context"
	"log/slog"

	deliverycontext "meatly/internal/delivery/context"
	"meatly/internal/domain/entity"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/repository"
	"meatly/internal/domain/service"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// approvalService implements the ApprovalUsecase interface. Approve and Reject
// are the only two operations that ever touch a shop's visibility flags.
type approvalService struct {
	txManager    repository.TransactionManager
	shopRepo     repository.ShopRepository
	identityRepo repository.IdentityRepository
	activityRepo repository.ActivityRepository
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// ApprovalServiceParams holds dependencies for ApprovalService, injected by Fx.
type ApprovalServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ShopRepo     repository.ShopRepository
	IdentityRepo repository.IdentityRepository
	ActivityRepo repository.ActivityRepository
	Publisher    service.EventPublisher
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewApprovalService is the constructor for approvalService.
func NewApprovalService(params ApprovalServiceParams) usecase.ApprovalUsecase {
	return &approvalService{
		txManager:    params.TxManager,
		shopRepo:     params.ShopRepo,
		identityRepo: params.IdentityRepo,
		activityRepo: params.ActivityRepo,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *approvalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Approve flips the shop to active and approved, marks the owner verified and
// hands back the storefront QR code.
func (srv *approvalService) Approve(ctx context.Context, shopID uuid.UUID) (*usecase.ApprovalOutput, error) {
	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()
		identityRepo := repoFactory.IdentityRepo()

		found, err := shopRepo.FindByID(ctx, shopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound
			}

			return errors.Wrap(err, "failed to find shop")
		}

		found.Active = true
		found.Approved = true
		if err := shopRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shop flags")
		}

		owner, err := identityRepo.FindByID(ctx, found.OwnerID)
		if err != nil {
			return errors.Wrap(err, "failed to find shop owner")
		}
		owner.Verified = true
		if err := identityRepo.Update(ctx, owner); err != nil {
			return errors.Wrap(err, "failed to mark owner verified")
		}

		shop = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.appendActivity(ctx, shop.OwnerID, entity.ActionShopApproved, "shop "+shop.ID.String())
	srv.publishEvent(ctx, service.EventShopApproved, shop)

	// QR generation is a courtesy; its failure never unwinds the approval.
	qrCode, err := srv.qrService.GenerateShopQR(shop.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to generate storefront QR code",
			slog.Any("shopID", shop.ID),
			slog.Any("error", err),
		)
		qrCode = nil
	}

	srv.log(ctx).Info("Shop approved", slog.Any("shopID", shop.ID))

	return &usecase.ApprovalOutput{Shop: shop, QRCode: qrCode}, nil
}

// Reject clears both visibility flags, hiding the shop from the catalog.
func (srv *approvalService) Reject(ctx context.Context, shopID uuid.UUID, reason string) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	shop.Active = false
	shop.Approved = false
	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop flags")
	}

	detail := "shop " + shop.ID.String()
	if reason != "" {
		detail += ": " + reason
	}
	srv.appendActivity(ctx, shop.OwnerID, entity.ActionShopRejected, detail)
	srv.publishEvent(ctx, service.EventShopRejected, shop)

	srv.log(ctx).Info("Shop rejected",
		slog.Any("shopID", shop.ID),
		slog.String("reason", reason),
	)

	return shop, nil
}

func (srv *approvalService) appendActivity(ctx context.Context, actorID uuid.UUID, action, detail string) {
	activity := &entity.ActivityLog{
		ActorID: actorID,
		Action:  action,
		Detail:  detail,
	}
	if err := srv.activityRepo.Append(ctx, activity); err != nil {
		srv.log(ctx).Warn("Failed to append activity log",
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

func (srv *approvalService) publishEvent(ctx context.Context, eventType string, shop *entity.Shop) {
	event := &service.VendorEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		IdentityID: shop.OwnerID.String(),
		ShopID:     shop.ID.String(),
		ShopName:   shop.Name,
		City:       shop.City,
	}
	if err := srv.publisher.PublishVendorEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish shop event",
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}
