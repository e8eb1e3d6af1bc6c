package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"pollInterval": "1s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"firebase": map[string]any{
			"webApiKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_POLLINTERVAL", want: "store.pollInterval"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "FIREBASE_WEBAPIKEY", want: "firebase.webApiKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlContent := "store:\n  driver: postgres\n  pollInterval: 1s\nmaps:\n  apiKey: from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), []byte(yamlContent), 0o600))

	t.Setenv(EnvPrefix+"STORE_POLLINTERVAL", "250ms")
	t.Setenv(EnvPrefix+"MAPS_APIKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("sample", dir)
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.PollInterval)
	require.NotNil(t, cfg.Maps)
	assert.Equal(t, "from-env", cfg.Maps.APIKey)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	newConfig := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)

		return cfg
	}

	t.Run("firestore without firebase section", func(t *testing.T) {
		cfg := newConfig()
		assert.Error(t, cfg.Validate())
	})

	t.Run("firestore with firebase", func(t *testing.T) {
		cfg := newConfig()
		cfg.Firebase = &FirebaseConfig{ProjectID: "demo"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("local auth needs postgres", func(t *testing.T) {
		cfg := newConfig()
		cfg.Firebase = &FirebaseConfig{ProjectID: "demo"}
		cfg.Auth.Provider = AuthProviderLocal
		cfg.Auth.JWTSecret = "secret"
		assert.Error(t, cfg.Validate())
	})

	t.Run("tiles maps provider needs a source", func(t *testing.T) {
		cfg := newConfig()
		cfg.Firebase = &FirebaseConfig{ProjectID: "demo"}
		cfg.Maps = &MapsConfig{Provider: MapsProviderTiles}
		assert.Error(t, cfg.Validate())

		cfg.Maps.Tiles = &TilesConfig{Source: "/data/roads.pmtiles"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("local pubsub needs a push secret outside develop", func(t *testing.T) {
		cfg := newConfig()
		cfg.Firebase = &FirebaseConfig{ProjectID: "demo"}
		cfg.PubSub = &PubSubConfig{Provider: "local", LocalEndpoint: "http://notifier:8081/pubsub/parcel-notifications"}
		cfg.Env.Env = "production"
		assert.Error(t, cfg.Validate())

		cfg.PubSub.PushSecret = "s3cret"
		assert.NoError(t, cfg.Validate())

		cfg.PubSub.PushSecret = ""
		cfg.Env.Env = "develop"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := newConfig()
		cfg.Store.Driver = "mongo"
		assert.Error(t, cfg.Validate())
	})
}
