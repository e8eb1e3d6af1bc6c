package handler

import (
	"bytes"
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileUsecase struct {
	user        *entity.User
	contentType string
	uploaded    []byte
}

func (f *fakeProfileUsecase) GetProfile(context.Context) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeProfileUsecase) UpdateProfile(_ context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	f.user.DisplayName = input.DisplayName
	f.user.Gender = input.Gender

	return f.user, nil
}

func (f *fakeProfileUsecase) UploadAvatar(_ context.Context, contentType string, data []byte) (*entity.User, error) {
	if len(data) > constants.MaxAvatarBytes {
		return nil, domainerrors.ErrAvatarTooLarge
	}
	f.contentType = contentType
	f.uploaded = data
	f.user.PhotoURL = "https://cdn.example.com/profile_pictures/" + f.user.ID + ".jpg"

	return f.user, nil
}

type fakePreferencesUsecase struct {
	prefs *entity.Preferences
}

func (f *fakePreferencesUsecase) GetPreferences(context.Context) (*entity.Preferences, error) {
	return f.prefs, nil
}

func (f *fakePreferencesUsecase) UpdatePreferences(_ context.Context, input *usecase.UpdatePreferencesInput) (*entity.Preferences, error) {
	if input.NotificationsEnabled != nil {
		f.prefs.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.DarkThemeEnabled != nil {
		f.prefs.DarkThemeEnabled = *input.DarkThemeEnabled
	}
	if input.LocationTrackingEnabled != nil {
		f.prefs.LocationTrackingEnabled = *input.LocationTrackingEnabled
	}

	return f.prefs, nil
}

func newProfileTestHandler() (*echo.Echo, *fakeProfileUsecase, *fakePreferencesUsecase) {
	profiles := &fakeProfileUsecase{user: &entity.User{ID: testCaller.UID, Email: testCaller.Email}}
	prefs := &fakePreferencesUsecase{prefs: entity.DefaultPreferences(testCaller.UID)}
	h := NewProfileHandler(ProfileHandlerParams{
		ProfileUC:     profiles,
		PreferencesUC: prefs,
		Logger:        slog.New(slog.DiscardHandler),
	})

	e := newTestEcho(testCaller)
	e.GET("/profile", h.GetProfile)
	e.PUT("/profile", h.UpdateProfile)
	e.PUT("/profile/avatar", h.UploadAvatar)
	e.GET("/preferences", h.GetPreferences)
	e.PATCH("/preferences", h.UpdatePreferences)

	return e, profiles, prefs
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	e, profiles, _ := newProfileTestHandler()

	rec := doJSON(e, http.MethodPut, "/profile", map[string]string{"display_name": "Alice", "gender": "female"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice", profiles.user.DisplayName)

	rec = doJSON(e, http.MethodPut, "/profile", map[string]string{"gender": "female"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	t.Run("multipart", func(t *testing.T) {
		e, profiles, _ := newProfileTestHandler()

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("avatar", "me.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nrest-of-image"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPut, "/profile/avatar", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", profiles.contentType)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), "profile_pictures/u-alice.jpg")
	})

	t.Run("raw body", func(t *testing.T) {
		e, profiles, _ := newProfileTestHandler()

		req := httptest.NewRequest(http.MethodPut, "/profile/avatar", bytes.NewReader([]byte("jpeg-bytes")))
		req.Header.Set(echo.HeaderContentType, "image/jpeg")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", profiles.contentType)
		assert.Equal(t, []byte("jpeg-bytes"), profiles.uploaded)
	})

	t.Run("oversized raw body", func(t *testing.T) {
		e, _, _ := newProfileTestHandler()

		req := httptest.NewRequest(http.MethodPut, "/profile/avatar", bytes.NewReader(make([]byte, constants.MaxAvatarBytes+10)))
		req.Header.Set(echo.HeaderContentType, "image/jpeg")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "AVATAR_TOO_LARGE", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestProfileHandler_UpdatePreferences(t *testing.T) {
	e, _, prefs := newProfileTestHandler()

	rec := doJSON(e, http.MethodPatch, "/preferences", map[string]bool{"dark_theme_enabled": true})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, prefs.prefs.DarkThemeEnabled)
	assert.True(t, prefs.prefs.NotificationsEnabled)
	assert.True(t, prefs.prefs.LocationTrackingEnabled)

	rec = doJSON(e, http.MethodGet, "/preferences", nil)
	assert.JSONEq(t, `{"notifications_enabled":true,"dark_theme_enabled":true,"location_tracking_enabled":true,"updated_at":"0001-01-01T00:00:00Z"}`,
		string(decodeEnvelope(t, rec).Data))
}
