package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Metrics     MetricsConfig     `mapstructure:"metrics" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Archive     ArchiveConfig     `mapstructure:"archive"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// MetricsConfig holds request metrics aggregation configuration.
type MetricsConfig struct {
	HistoryCapacity int `mapstructure:"history_capacity" validate:"required,min=1"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ArchiveConfig controls the periodic metrics report archive.
type ArchiveConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Interval  int    `mapstructure:"interval" validate:"required_if=Enabled true,omitempty,min=1"` // seconds
	Partition string `mapstructure:"partition" validate:"required_if=Enabled true,omitempty,oneof=hour day"`
}
