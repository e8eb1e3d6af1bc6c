package impl

import (
	"context"
	"fmt"
	"time"

	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"

	"github.com/pkg/errors"
)

// parcelAccess decides what a caller may do with a parcel.
// The sender and the receiver may do anything. Anyone else needs an active, unexpired
// grant on the parcel that carries every requested permission.
type parcelAccess struct {
	parcels repository.ParcelRepository
	shares  repository.ShareRepository
}

// authorize loads the parcel and checks the caller against it at time at.
// A missing parcel is ErrParcelNotFound; an existing one the caller may not touch is ErrForbidden.
func (a parcelAccess) authorize(
	ctx context.Context,
	caller *entity.Caller,
	parcelID string,
	at time.Time,
	permissions ...entity.SharePermission,
) (*entity.Parcel, error) {
	parcel, err := a.parcels.FindParcelByID(ctx, parcelID)
	if errors.Is(err, repository.ErrParcelNotFound) {
		return nil, domainerrors.ErrParcelNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find parcel")
	}

	if parcel.HasParty(caller.UID) {
		return parcel, nil
	}

	grants, err := a.shares.FindActiveShares(ctx, parcelID, caller.UID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check parcel grants")
	}
	for _, grant := range grants {
		if grant.ValidAt(at) && allowsAll(grant, permissions) {
			return parcel, nil
		}
	}

	return nil, domainerrors.ErrForbidden.WithDetails(fmt.Sprintf("no grant on parcel %s allows %v", parcelID, permissions))
}

func allowsAll(grant *entity.ShareableLocation, permissions []entity.SharePermission) bool {
	for _, p := range permissions {
		if !grant.Allows(p) {
			return false
		}
	}

	return true
}
