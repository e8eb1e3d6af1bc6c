// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"parceltrack/internal/delivery/http/middleware"
	"parceltrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ParcelHandler     *handler.ParcelHandler
	ShareHandler      *handler.ShareHandler
	UserHandler       *handler.UserHandler
	ProfileHandler    *handler.ProfileHandler
	DirectionsHandler *handler.DirectionsHandler
	SessionHandler    *handler.SessionHandler
	FunctionHandler   *handler.FunctionHandler
	StaticHandler     *handler.StaticHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	parcelHandler     *handler.ParcelHandler
	shareHandler      *handler.ShareHandler
	userHandler       *handler.UserHandler
	profileHandler    *handler.ProfileHandler
	directionsHandler *handler.DirectionsHandler
	sessionHandler    *handler.SessionHandler
	functionHandler   *handler.FunctionHandler
	staticHandler     *handler.StaticHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		parcelHandler:     params.ParcelHandler,
		shareHandler:      params.ShareHandler,
		userHandler:       params.UserHandler,
		profileHandler:    params.ProfileHandler,
		directionsHandler: params.DirectionsHandler,
		sessionHandler:    params.SessionHandler,
		functionHandler:   params.FunctionHandler,
		staticHandler:     params.StaticHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Avatars are public, like the photo URLs that point at them.
	e.GET(handler.StaticPrefix+"/*", r.staticHandler.ServeObject)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/reset-password", r.sessionHandler.ResetPassword)
	}

	// Callable functions answer UNAUTHENTICATED in their own envelope.
	functionGroup := e.Group("/api/v1/functions", r.authMiddleware.Identify)
	{
		functionGroup.POST("/sendParcelNotification", r.functionHandler.SendParcelNotification)
	}

	api := e.Group("/api/v1", r.authMiddleware.Authenticate)

	parcels := api.Group("/parcels")
	{
		parcels.POST("", r.parcelHandler.CreateParcel)
		parcels.GET("/sent", r.parcelHandler.StreamSentParcels)
		parcels.GET("/received", r.parcelHandler.StreamReceivedParcels)
		parcels.GET("/:id", r.parcelHandler.GetParcel)
		parcels.GET("/:id/stream", r.parcelHandler.StreamParcel)
		parcels.PATCH("/:id/status", r.parcelHandler.UpdateParcelStatus)
		parcels.PUT("/:id/location", r.parcelHandler.UpdateParcelLocation)
		parcels.POST("/:id/history", r.parcelHandler.AddLocationHistory)
		parcels.GET("/:id/history", r.parcelHandler.StreamLocationHistory)
		parcels.GET("/:id/qrcode", r.parcelHandler.GetParcelQRCode)
		parcels.POST("/:id/shares", r.shareHandler.ShareLocation)
		parcels.POST("/:id/shares/batch", r.shareHandler.ShareWithMultiple)
	}

	shares := api.Group("/shares")
	{
		shares.GET("", r.shareHandler.StreamSharedLocations)
		shares.DELETE("/:id", r.shareHandler.StopSharing)
	}

	users := api.Group("/users")
	{
		users.GET("/lookup", r.userHandler.LookupUser)
		users.GET("/search", r.userHandler.SearchUsers)
		users.GET("/:id/email", r.userHandler.GetUserEmail)
		users.PUT("/me/push-token", r.userHandler.UpdatePushToken)
	}

	profile := api.Group("/profile")
	{
		profile.GET("", r.profileHandler.GetProfile)
		profile.PUT("", r.profileHandler.UpdateProfile)
		profile.PUT("/avatar", r.profileHandler.UploadAvatar)
	}

	preferences := api.Group("/preferences")
	{
		preferences.GET("", r.profileHandler.GetPreferences)
		preferences.PATCH("", r.profileHandler.UpdatePreferences)
	}

	api.GET("/directions", r.directionsHandler.GetDirections)
	api.GET("/geocode", r.directionsHandler.Geocode)
}
