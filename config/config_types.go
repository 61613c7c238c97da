package config

const (
	configName = ".gutwipe"
	envPrefix  = "GUTWIPE"

	RandomSourceCrypto = "crypto"
	RandomSourceClock  = "clock"

	DefaultChunkSize = 64 << 20
)

// Config represents the root configuration structure
type Config struct {
	RandomSource string       `mapstructure:"random_source"`
	ChunkSize    int          `mapstructure:"chunk_size"`
	Progress     bool         `mapstructure:"progress"`
	Log          LogConfig    `mapstructure:"log"`
	Report       ReportConfig `mapstructure:"report"`
}

// LogConfig represents logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig represents where erasure reports are kept
type ReportConfig struct {
	Dir string   `mapstructure:"dir"`
	S3  S3Config `mapstructure:"s3"`
}

// S3Config represents the optional report upload target
type S3Config struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Region string `mapstructure:"region"`
}

// Enabled reports whether any report destination is configured.
func (r *ReportConfig) Enabled() bool {
	return r.Dir != "" || r.S3.Bucket != ""
}
