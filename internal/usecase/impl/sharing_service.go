package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultShareHours = 24

	shareNotificationTitle = "Parcel Shared"
	shareNotificationBody  = "A parcel has been shared with you by %s"
)

type sharingService struct {
	parcelRepo repository.ParcelRepository
	shareRepo  repository.ShareRepository
	access     parcelAccess
	users      usecase.UserUsecase
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// SharingServiceParams holds dependencies for SharingService, injected by Fx.
type SharingServiceParams struct {
	fx.In

	ParcelRepo repository.ParcelRepository
	ShareRepo  repository.ShareRepository
	Users      usecase.UserUsecase
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewSharingService creates a new sharing service instance
func NewSharingService(params SharingServiceParams) usecase.SharingUsecase {
	return &sharingService{
		parcelRepo: params.ParcelRepo,
		shareRepo:  params.ShareRepo,
		access:     parcelAccess{parcels: params.ParcelRepo, shares: params.ShareRepo},
		users:      params.Users,
		publisher:  params.Publisher,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *sharingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ShareLocation grants one recipient a VIEW snapshot of the parcel's current location.
func (s *sharingService) ShareLocation(ctx context.Context, parcelID, recipientEmail string, expirationHours int) (string, error) {
	caller, err := requireCaller(ctx)
	if err != nil {
		return "", err
	}

	switch {
	case expirationHours < 0:
		return "", domainerrors.ErrValidationFailed.WithDetails("expiration hours must not be negative")
	case expirationHours == 0:
		expirationHours = defaultShareHours
	}

	parcel, err := s.sharableParcel(ctx, caller, parcelID)
	if err != nil {
		return "", err
	}

	granteeID, err := s.users.FindUserByEmail(ctx, recipientEmail)
	if err != nil {
		return "", err
	}

	share := s.newShare(parcel, caller.UID, granteeID, expirationHours, []entity.SharePermission{entity.SharePermissionView}, true)
	if err := s.shareRepo.CreateShare(ctx, share); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to create shared location")
	}

	return share.ID, nil
}

// ShareParcelWithMultiple grants each recipient independently.
// Recipients that cannot be resolved or written are skipped; it fails only when none succeed.
func (s *sharingService) ShareParcelWithMultiple(
	ctx context.Context,
	parcelID string,
	recipients []string,
	options entity.ShareOptions,
) ([]string, error) {
	caller, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	hours, permissions, err := resolveShareOptions(options)
	if err != nil {
		return nil, err
	}

	parcel, err := s.sharableParcel(ctx, caller, parcelID)
	if err != nil {
		return nil, err
	}

	shareIDs := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		granteeID, err := s.users.FindUserByEmail(ctx, recipient)
		if err != nil {
			s.log(ctx).Warn("Skipping share recipient", slog.String("recipient", recipient), slog.Any("error", err))

			continue
		}

		share := s.newShare(parcel, caller.UID, granteeID, hours, permissions, options.NotifyOnUpdates)
		if err := s.shareRepo.CreateShare(ctx, share); err != nil {
			s.log(ctx).Warn("Failed to write share", slog.String("recipient", recipient), slog.Any("error", err))

			continue
		}
		shareIDs = append(shareIDs, share.ID)

		if !options.NotifyOnUpdates {
			continue
		}
		body := fmt.Sprintf(shareNotificationBody, caller.Email)
		if err := publishNotification(ctx, s.publisher, caller, granteeID, shareNotificationTitle, body, parcel.ID); err != nil {
			s.log(ctx).Warn("Failed to publish share notification", slog.String("share_id", share.ID), slog.Any("error", err))
		}
	}

	if len(shareIDs) == 0 {
		return nil, domainerrors.ErrShareFailed
	}

	return shareIDs, nil
}

func resolveShareOptions(options entity.ShareOptions) (int, []entity.SharePermission, error) {
	duration := options.Duration
	if duration == "" {
		duration = entity.ShareDurationOneDay
	}
	hours, ok := duration.Hours()
	if !ok {
		return 0, nil, domainerrors.ErrValidationFailed.WithDetails("unknown share duration " + string(duration))
	}

	permissions := options.Permissions
	if len(permissions) == 0 {
		permissions = entity.DefaultShareOptions().Permissions
	}
	for _, p := range permissions {
		if !p.IsValid() {
			return 0, nil, domainerrors.ErrValidationFailed.WithDetails("unknown share permission " + string(p))
		}
	}

	return hours, permissions, nil
}

// sharableParcel loads a parcel the caller may reshare and that has a location to snapshot.
func (s *sharingService) sharableParcel(ctx context.Context, caller *entity.Caller, parcelID string) (*entity.Parcel, error) {
	parcel, err := s.access.authorize(ctx, caller, parcelID, s.now(), entity.SharePermissionShareWithOthers)
	if err != nil {
		return nil, err
	}

	if parcel.CurrentLocation == nil {
		return nil, domainerrors.ErrNoLocationAvailable
	}

	return parcel, nil
}

func (s *sharingService) newShare(
	parcel *entity.Parcel,
	sharedBy, sharedWith string,
	hours int,
	permissions []entity.SharePermission,
	notify bool,
) *entity.ShareableLocation {
	now := s.now()

	return &entity.ShareableLocation{
		ParcelID:        parcel.ID,
		SharedBy:        sharedBy,
		SharedWith:      sharedWith,
		ExpiresAt:       now.Add(time.Duration(hours) * time.Hour),
		Location:        *parcel.CurrentLocation,
		TrackingNumber:  parcel.TrackingNumber,
		CreatedAt:       now,
		IsActive:        true,
		Permissions:     permissions,
		NotifyOnUpdates: notify,
	}
}

// StopSharing deactivates a grant. Only the granter, the grantee and the parcel's sender may do so.
func (s *sharingService) StopSharing(ctx context.Context, shareID string) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	share, err := s.shareRepo.FindShareByID(ctx, shareID)
	if errors.Is(err, repository.ErrShareNotFound) {
		return domainerrors.ErrShareNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to find share")
	}

	if !share.Involves(caller.UID) {
		if err := s.requireSender(ctx, caller, share.ParcelID); err != nil {
			return err
		}
	}

	err = s.shareRepo.DeactivateShare(ctx, shareID)
	if errors.Is(err, repository.ErrShareNotFound) {
		return domainerrors.ErrShareNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate share")
	}

	return nil
}

func (s *sharingService) requireSender(ctx context.Context, caller *entity.Caller, parcelID string) error {
	parcel, err := s.parcelRepo.FindParcelByID(ctx, parcelID)
	if errors.Is(err, repository.ErrParcelNotFound) {
		return domainerrors.ErrForbidden
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to find parcel")
	}
	if parcel.SenderID != caller.UID {
		return domainerrors.ErrForbidden.WithDetails("only the granter, the grantee or the sender may stop a share")
	}

	return nil
}

// GetSharedLocations emits the grantee's valid grants.
// Grants past expiry at the snapshot's read time are dropped from the emission and deactivated in the background.
func (s *sharingService) GetSharedLocations(ctx context.Context, userID string) <-chan repository.Snapshot[[]*entity.ShareableLocation] {
	in := s.shareRepo.WatchActiveShares(ctx, userID)
	out := make(chan repository.Snapshot[[]*entity.ShareableLocation])
	logger := s.log(ctx)

	go func() {
		defer close(out)

		for snap := range in {
			if snap.Err != nil {
				logger.Warn("Shared locations query failed", slog.Any("error", snap.Err))
				repository.SendSnapshot(ctx, out, snap)

				return
			}

			readTime := snap.ReadTime
			if readTime.IsZero() {
				readTime = s.now()
			}

			active := make([]*entity.ShareableLocation, 0, len(snap.Data))
			var expired []string
			for _, share := range snap.Data {
				if share.ExpiredAt(readTime) {
					expired = append(expired, share.ID)

					continue
				}
				active = append(active, share)
			}
			if len(expired) > 0 {
				go s.expire(context.WithoutCancel(ctx), logger, expired)
			}

			if !repository.SendSnapshot(ctx, out, repository.Snapshot[[]*entity.ShareableLocation]{Data: active, ReadTime: snap.ReadTime}) {
				return
			}
		}
	}()

	return out
}

// expire outlives the stream that observed the grants.
func (s *sharingService) expire(ctx context.Context, logger *slog.Logger, shareIDs []string) {
	for _, id := range shareIDs {
		if err := s.shareRepo.DeactivateShare(ctx, id); err != nil {
			logger.Warn("Failed to deactivate expired share", slog.String("share_id", id), slog.Any("error", err))

			continue
		}

		logger.Debug("Deactivated expired share", slog.String("share_id", id))
	}
}
