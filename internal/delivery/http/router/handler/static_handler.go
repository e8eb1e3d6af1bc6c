package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StaticPrefix is where uploaded avatars are served. storage.publicBaseUrl points here
// when the bucket has no public endpoint of its own.
const StaticPrefix = "/static"

// StaticHandlerParams holds dependencies for StaticHandler, injected by Fx.
type StaticHandlerParams struct {
	fx.In

	Storage service.ObjectStorage
	Logger  *slog.Logger
}

// StaticHandler serves avatars straight from the object storage bucket.
type StaticHandler struct {
	storage service.ObjectStorage
	logger  *slog.Logger
}

func NewStaticHandler(params StaticHandlerParams) *StaticHandler {
	return &StaticHandler{storage: params.Storage, logger: params.Logger}
}

// ServeObject handles GET /static/*. Only keys under the avatar prefix are readable.
func (h *StaticHandler) ServeObject(c echo.Context) error {
	key := c.Param("*")
	if !strings.HasPrefix(key, constants.AvatarKeyPrefix) || strings.Contains(key, "..") {
		return echo.ErrNotFound
	}

	obj, err := h.storage.Get(c.Request().Context(), key)
	if errors.Is(err, service.ErrObjectNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to read object",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(obj.Data)
	}
	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.Blob(http.StatusOK, contentType, obj.Data)
}
