package impl

import (
	"context"
	"log/slog"
	"strings"
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

type parcelService struct {
	txManager   repository.TransactionManager
	parcelRepo  repository.ParcelRepository
	historyRepo repository.LocationHistoryRepository
	access      parcelAccess
	users       usecase.UserUsecase
	publisher   service.EventPublisher
	qrCode      service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// ParcelServiceParams holds dependencies for ParcelService, injected by Fx.
type ParcelServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ParcelRepo  repository.ParcelRepository
	HistoryRepo repository.LocationHistoryRepository
	ShareRepo   repository.ShareRepository
	Users       usecase.UserUsecase
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewParcelService creates a new parcel service instance
func NewParcelService(params ParcelServiceParams) usecase.ParcelUsecase {
	return &parcelService{
		txManager:   params.TxManager,
		parcelRepo:  params.ParcelRepo,
		historyRepo: params.HistoryRepo,
		access:      parcelAccess{parcels: params.ParcelRepo, shares: params.ShareRepo},
		users:       params.Users,
		publisher:   params.Publisher,
		qrCode:      params.QRCode,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *parcelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateParcel persists a parcel from the caller to the user behind ReceiverEmail.
func (s *parcelService) CreateParcel(ctx context.Context, input *usecase.CreateParcelInput) (string, error) {
	caller, err := requireCaller(ctx)
	if err != nil {
		return "", err
	}

	receiverEmail := normalizeEmail(input.ReceiverEmail)
	receiverID, err := s.users.FindUserByEmail(ctx, receiverEmail)
	if err != nil {
		s.log(ctx).Warn("Receiver resolution failed", slog.String("receiver_email", receiverEmail), slog.Any("error", err))

		return "", domainerrors.ErrReceiverNotFound.WrapMessage(err.Error())
	}

	trackingNumber := strings.ToUpper(strings.TrimSpace(input.TrackingNumber))
	if trackingNumber == "" {
		if trackingNumber, err = entity.NewTrackingNumber(); err != nil {
			return "", errors.Wrap(err, "failed to generate tracking number")
		}
	}

	now := s.now()
	parcel := &entity.Parcel{
		TrackingNumber:        trackingNumber,
		SourceAddress:         input.SourceAddress,
		DestinationAddress:    input.DestinationAddress,
		Description:           input.Description,
		Status:                entity.ParcelStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
		EstimatedDeliveryTime: input.EstimatedDeliveryTime,
		SenderID:              caller.UID,
		SenderEmail:           normalizeEmail(caller.Email),
		ReceiverID:            receiverID,
		ReceiverEmail:         receiverEmail,
	}

	if err := s.parcelRepo.CreateParcel(ctx, parcel); err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to create parcel")
	}

	s.log(ctx).Info("Parcel created",
		slog.String("parcel_id", parcel.ID),
		slog.String("tracking_number", parcel.TrackingNumber),
	)

	return parcel.ID, nil
}

// authorize checks the context's caller against the parcel.
func (s *parcelService) authorize(ctx context.Context, id string, permissions ...entity.SharePermission) (*entity.Caller, *entity.Parcel, error) {
	caller, err := requireCaller(ctx)
	if err != nil {
		return nil, nil, err
	}

	parcel, err := s.access.authorize(ctx, caller, id, s.now(), permissions...)
	if err != nil {
		return nil, nil, err
	}

	return caller, parcel, nil
}

// GetParcel reads a parcel once for a caller allowed to view it.
func (s *parcelService) GetParcel(ctx context.Context, id string) (*entity.Parcel, error) {
	_, parcel, err := s.authorize(ctx, id, entity.SharePermissionView)

	return parcel, err
}

func (s *parcelService) findParcel(ctx context.Context, id string) (*entity.Parcel, error) {
	parcel, err := s.parcelRepo.FindParcelByID(ctx, id)
	if errors.Is(err, repository.ErrParcelNotFound) {
		return nil, domainerrors.ErrParcelNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find parcel")
	}

	return parcel, nil
}

// UpdateParcelStatus writes the status, then notifies the receiver for every status but PENDING.
// A failed notification is logged; the status change stands.
func (s *parcelService) UpdateParcelStatus(ctx context.Context, id string, status entity.ParcelStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidParcelStatus.WithDetails(string(status))
	}

	caller, _, err := s.authorize(ctx, id, entity.SharePermissionUpdateStatus)
	if err != nil {
		return err
	}

	if err := s.parcelRepo.UpdateParcelStatus(ctx, id, status, s.now()); err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return domainerrors.ErrParcelNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update parcel status")
	}

	parcel, err := s.findParcel(ctx, id)
	if err != nil {
		return err
	}

	notification, ok := status.Notification()
	if !ok {
		return nil
	}

	if err := publishNotification(ctx, s.publisher, caller, parcel.ReceiverID, notification.Title, notification.Body, parcel.ID); err != nil {
		s.log(ctx).Error("Failed to publish status notification",
			slog.String("parcel_id", parcel.ID),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)
	}

	return nil
}

// UpdateParcelLocation moves the parcel's current location only.
func (s *parcelService) UpdateParcelLocation(ctx context.Context, id string, location entity.GeoPoint) error {
	if !location.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("location is out of range")
	}

	if _, _, err := s.authorize(ctx, id, entity.SharePermissionUpdateLocation); err != nil {
		return err
	}

	err := s.parcelRepo.UpdateParcelLocation(ctx, id, location, s.now())
	if errors.Is(err, repository.ErrParcelNotFound) {
		return domainerrors.ErrParcelNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update parcel location")
	}

	return nil
}

// AddLocationHistory appends a waypoint and copies it onto the parcel in one transaction.
// A waypoint carries a status, so grantees need both update permissions.
func (s *parcelService) AddLocationHistory(ctx context.Context, id string, input *usecase.AddLocationHistoryInput) (string, error) {
	if !input.Location.Valid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("location is out of range")
	}
	if !input.Status.IsValid() {
		return "", domainerrors.ErrInvalidParcelStatus.WithDetails(string(input.Status))
	}

	if _, _, err := s.authorize(ctx, id, entity.SharePermissionUpdateLocation, entity.SharePermissionUpdateStatus); err != nil {
		return "", err
	}

	now := s.now()
	entry := &entity.LocationHistory{
		ParcelID:    id,
		Location:    input.Location,
		Timestamp:   now,
		Status:      input.Status,
		Description: input.Description,
	}

	// The parcel write goes first: document stores require reads before writes in a transaction.
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewParcelWriter().ApplyLocationUpdate(ctx, id, input.Location, input.Status, now); err != nil {
			return err
		}

		return factory.NewLocationHistoryWriter().CreateLocationHistory(ctx, entry)
	})
	if errors.Is(err, repository.ErrParcelNotFound) {
		return "", domainerrors.ErrParcelNotFound
	}
	if err != nil {
		return "", domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return entry.ID, nil
}

func (s *parcelService) GetParcelUpdates(ctx context.Context, id string) <-chan repository.Snapshot[*entity.Parcel] {
	if _, _, err := s.authorize(ctx, id, entity.SharePermissionView); err != nil {
		return failedQuery[*entity.Parcel](err)
	}

	return relay(ctx, s.log(ctx), "parcel", s.parcelRepo.WatchParcel(ctx, id))
}

func (s *parcelService) GetSentParcels(ctx context.Context, userID string) <-chan repository.Snapshot[[]*entity.Parcel] {
	return relay(ctx, s.log(ctx), "sent_parcels", s.parcelRepo.WatchParcelsBySender(ctx, userID))
}

func (s *parcelService) GetReceivedParcels(ctx context.Context, userID string) <-chan repository.Snapshot[[]*entity.Parcel] {
	return relay(ctx, s.log(ctx), "received_parcels", s.parcelRepo.WatchParcelsByReceiver(ctx, userID))
}

func (s *parcelService) GetLocationHistory(ctx context.Context, parcelID string) <-chan repository.Snapshot[[]*entity.LocationHistory] {
	if _, _, err := s.authorize(ctx, parcelID, entity.SharePermissionView); err != nil {
		return failedQuery[[]*entity.LocationHistory](err)
	}

	return relay(ctx, s.log(ctx), "location_history", s.historyRepo.WatchLocationHistory(ctx, parcelID))
}

// GenerateParcelQRCode renders the label QR code for a parcel.
func (s *parcelService) GenerateParcelQRCode(ctx context.Context, id string) ([]byte, error) {
	parcel, err := s.GetParcel(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCode.GenerateParcelQR(service.ParcelLabel{
		ParcelID:       parcel.ID,
		TrackingNumber: parcel.TrackingNumber,
	})
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}
