// Package firebase builds the Firebase Admin SDK clients shared by the store, identity and push adapters.
package firebase

import (
	"context"
	"log/slog"

	"parceltrack/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the dependencies of the Firebase app.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Admin SDK app. It returns nil when Firebase is not configured.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Info("Firebase not configured")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

// ClientParams defines the dependencies of the Firebase service clients.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	App    *firebase.App `optional:"true"`
}

// NewFirestore returns the Firestore client when it backs the store, nil otherwise.
func NewFirestore(params ClientParams) (*firestore.Client, error) {
	if params.Config.Store.Driver != config.StoreDriverFirestore {
		return nil, nil
	}
	if params.App == nil {
		return nil, errors.New("firestore store driver requires firebase configuration")
	}

	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewAuth returns the Firebase Auth client when Firebase is the identity provider, nil otherwise.
func NewAuth(params ClientParams) (*auth.Client, error) {
	if params.Config.Auth.Provider != config.AuthProviderFirebase {
		return nil, nil
	}
	if params.App == nil {
		return nil, errors.New("firebase auth provider requires firebase configuration")
	}

	client, err := params.App.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return client, nil
}

// NewMessaging returns the FCM client, or nil when Firebase is not configured.
func NewMessaging(params ClientParams) (*messaging.Client, error) {
	if params.App == nil {
		return nil, nil
	}

	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create messaging client")
	}

	return client, nil
}

// Module provides the Firebase app and its clients.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewApp,
		NewFirestore,
		NewAuth,
		NewMessaging,
	),
)
