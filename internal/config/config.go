package config

import (
	"github.com/weiawesome/snowflake-service/internal/generator"
	pkgconfig "github.com/weiawesome/snowflake-service/pkg/config"
)

type Config struct {
	HTTP      ServerConfig
	GRPC      ServerConfig
	Snowflake SnowflakeConfig
	NanoID    NanoIDConfig `mapstructure:"nanoid"`
	CUID2     CUID2Config  `mapstructure:"cuid2"`
	Errors    ErrorsConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type SnowflakeConfig struct {
	NodeID       int64 `mapstructure:"node_id"`
	Epoch        int64
	SequenceBits int `mapstructure:"sequence_bits"`
	NodeBits     int `mapstructure:"node_bits"`
}

// Generator converts the loaded section into the generator's config.
func (c SnowflakeConfig) Generator() generator.SnowflakeConfig {
	return generator.SnowflakeConfig{
		NodeID:       c.NodeID,
		Epoch:        c.Epoch,
		SequenceBits: c.SequenceBits,
		NodeBits:     c.NodeBits,
	}
}

type NanoIDConfig struct {
	Size     int    `mapstructure:"size"`
	Alphabet string `mapstructure:"alphabet"`
}

type CUID2Config struct {
	Length int `mapstructure:"length"`
}

type ErrorsConfig struct {
	ExposeDetails bool `mapstructure:"expose_details"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads ./config/config.yaml (if present) and the environment.
func Load() (*Config, error) {
	return LoadFrom("./config", "config")
}

func LoadFrom(path, name string) (*Config, error) {
	v, err := pkgconfig.Load(path, name)
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8090)
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50053)
	v.SetDefault("snowflake.node_id", 1)
	v.SetDefault("snowflake.epoch", generator.DefaultEpoch)
	v.SetDefault("snowflake.sequence_bits", generator.DefaultSequenceBits)
	v.SetDefault("snowflake.node_bits", generator.DefaultNodeBits)
	v.SetDefault("nanoid.size", generator.DefaultNanoIDSize)
	v.SetDefault("nanoid.alphabet", generator.DefaultNanoIDAlphabet)
	v.SetDefault("cuid2.length", generator.DefaultCUID2Length)
	v.SetDefault("errors.expose_details", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// Override from environment
	v.BindEnv("http.port", "PORT")
	v.BindEnv("grpc.port", "GRPC_PORT")
	v.BindEnv("snowflake.node_id", "SNOWFLAKE_NODE_ID")
	v.BindEnv("snowflake.epoch", "SNOWFLAKE_EPOCH")
	v.BindEnv("snowflake.sequence_bits", "SNOWFLAKE_SEQUENCE_BITS")
	v.BindEnv("snowflake.node_bits", "SNOWFLAKE_NODE_BITS")
	v.BindEnv("nanoid.size", "NANOID_SIZE")
	v.BindEnv("nanoid.alphabet", "NANOID_ALPHABET")
	v.BindEnv("cuid2.length", "CUID2_LENGTH")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
