package driven

// ConfigStore provides persistent application configuration.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error
}

// Well-known configuration keys. Nested TOML tables flatten to
// dot-notation keys.
const (
	// ConfigKeyDataDir overrides the SQLite data directory.
	ConfigKeyDataDir = "storage.data_dir"

	// ConfigKeyAIBaseURL overrides the generative backend base URL.
	ConfigKeyAIBaseURL = "ai.base_url"

	// ConfigKeyAIModel overrides the generative backend model.
	ConfigKeyAIModel = "ai.model"

	// ConfigKeyShareScheme overrides the deep link URI scheme.
	ConfigKeyShareScheme = "share.scheme"

	// ConfigKeyWatchDir sets the directory watched for incoming .vcf
	// files.
	ConfigKeyWatchDir = "import.watch_dir"
)
