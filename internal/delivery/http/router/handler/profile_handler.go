package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"parceltrack/internal/delivery/http/response"
	"parceltrack/internal/domain/constants"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const avatarFormField = "avatar"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC     usecase.ProfileUsecase
	PreferencesUC usecase.PreferencesUsecase
	Logger        *slog.Logger
}

// ProfileHandler serves the caller's profile and settings.
type ProfileHandler struct {
	profileUC     usecase.ProfileUsecase
	preferencesUC usecase.PreferencesUsecase
	logger        *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:     params.ProfileUC,
		preferencesUC: params.PreferencesUC,
		logger:        params.Logger,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := h.profileUC.GetProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// UploadAvatar accepts either a multipart form with an "avatar" file or a raw image body.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	contentType, data, err := readAvatar(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.UploadAvatar(c.Request().Context(), contentType, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile picture updated")
}

// readAvatar reads at most one byte past the limit so that oversized images are still rejected as such.
func readAvatar(c echo.Context) (string, []byte, error) {
	req := c.Request()

	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		file, err := c.FormFile(avatarFormField)
		if err != nil {
			return "", nil, domainerrors.ErrValidationFailed.WithDetails("avatar file is required")
		}
		if file.Size > constants.MaxAvatarBytes {
			return "", nil, domainerrors.ErrAvatarTooLarge
		}

		src, err := file.Open()
		if err != nil {
			return "", nil, errors.Wrap(err, "failed to open avatar upload")
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, constants.MaxAvatarBytes+1))
		if err != nil {
			return "", nil, errors.Wrap(err, "failed to read avatar upload")
		}

		contentType := file.Header.Get(echo.HeaderContentType)
		if contentType == "" || contentType == echo.MIMEOctetStream {
			contentType = http.DetectContentType(data)
		}

		return contentType, data, nil
	}

	data, err := io.ReadAll(io.LimitReader(req.Body, constants.MaxAvatarBytes+1))
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to read avatar body")
	}

	return req.Header.Get(echo.HeaderContentType), data, nil
}

func (h *ProfileHandler) GetPreferences(c echo.Context) error {
	prefs, err := h.preferencesUC.GetPreferences(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "")
}

// UpdatePreferences changes only the settings present in the body.
func (h *ProfileHandler) UpdatePreferences(c echo.Context) error {
	var input usecase.UpdatePreferencesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid preferences input")
	}

	prefs, err := h.preferencesUC.UpdatePreferences(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences updated")
}
