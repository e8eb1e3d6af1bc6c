// Package constants holds string constants shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderDirect = "direct"
)

// PushSecretHeader carries pubsub.pushSecret on pushes from the local provider.
const PushSecretHeader = "X-Push-Secret"

// Store collection names. Field names inside them are shared with mobile clients.
const (
	CollectionParcels         = "parcels"
	CollectionLocationHistory = "location_history"
	CollectionSharedLocations = "shared_locations"
	CollectionUsers           = "users"
	CollectionPreferences     = "user_preferences"
)

// AvatarKeyPrefix is the object storage folder for profile pictures.
const AvatarKeyPrefix = "profile_pictures/"

// MaxAvatarBytes caps profile picture uploads.
const MaxAvatarBytes = 5 << 20
