// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"strings"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
)

// requireCaller returns the authenticated caller or ErrUnauthenticated.
func requireCaller(ctx context.Context) (*entity.Caller, error) {
	caller := deliverycontext.GetCaller(ctx)
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return caller, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
