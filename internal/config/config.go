package config

import (
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	OrientationModeSkewed = "skewed"
	OrientationModeFair   = "fair"

	// Optional YAML file with the same keys as the environment.
	EnvConfigFile = "BATTLESHIP_CONFIG"
)

const (
	keyStage                = "stage"
	keyLogLevel             = "log_level"
	keyLogFile              = "log_file"
	keyLogMaxSizeMB         = "log_max_size_mb"
	keyLogMaxBackups        = "log_max_backups"
	keyLogMaxAgeDays        = "log_max_age_days"
	keyPsqlUrl              = "psql_url"
	keyMigrationDir         = "migration_dir"
	keyOrientationMode      = "orientation_mode"
	keyPlacementMaxAttempts = "placement_max_attempts"
	keySeed                 = "seed"
)

type Config struct {
	Stage                string
	LogLevel             string
	LogFile              string
	LogMaxSizeMB         int
	LogMaxBackups        int
	LogMaxAgeDays        int
	PsqlUrl              string
	MigrationDir         string
	OrientationMode      string
	PlacementMaxAttempts int
	Seed                 int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyStage, StageDev)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyLogMaxSizeMB, 10)
	v.SetDefault(keyLogMaxBackups, 3)
	v.SetDefault(keyLogMaxAgeDays, 28)
	v.SetDefault(keyPsqlUrl, "")
	v.SetDefault(keyMigrationDir, "file://db/migration")
	v.SetDefault(keyOrientationMode, OrientationModeSkewed)
	v.SetDefault(keyPlacementMaxAttempts, mb.DefaultMaxPlacementAttempts)
	v.SetDefault(keySeed, 0)
}

// Load reads .env (outside prod), then the optional config file, then the
// environment. Environment wins over the file, the file over defaults.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		_ = godotenv.Load(".env")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := os.Getenv(EnvConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Stage:                strings.ToLower(v.GetString(keyStage)),
		LogLevel:             v.GetString(keyLogLevel),
		LogFile:              v.GetString(keyLogFile),
		LogMaxSizeMB:         v.GetInt(keyLogMaxSizeMB),
		LogMaxBackups:        v.GetInt(keyLogMaxBackups),
		LogMaxAgeDays:        v.GetInt(keyLogMaxAgeDays),
		PsqlUrl:              v.GetString(keyPsqlUrl),
		MigrationDir:         v.GetString(keyMigrationDir),
		OrientationMode:      strings.ToLower(v.GetString(keyOrientationMode)),
		PlacementMaxAttempts: v.GetInt(keyPlacementMaxAttempts),
		Seed:                 v.GetInt64(keySeed),
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrStage(cfg.Stage)
	}
	if cfg.OrientationMode != OrientationModeSkewed && cfg.OrientationMode != OrientationModeFair {
		return Config{}, cerr.ErrOrientationMode(cfg.OrientationMode)
	}
	return cfg, nil
}

func (c Config) AnalyticsEnabled() bool {
	return c.PsqlUrl != ""
}

func (c Config) OrientationPicker() mb.OrientationPicker {
	if c.OrientationMode == OrientationModeFair {
		return mb.FairOrientation
	}
	return mb.SkewedOrientation
}

// Rand is seeded from Seed, or from the clock when Seed is 0.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c Config) BoardOptions() []mb.BoardOption {
	return []mb.BoardOption{
		mb.WithRand(c.Rand()),
		mb.WithOrientationPicker(c.OrientationPicker()),
		mb.WithMaxPlacementAttempts(c.PlacementMaxAttempts),
	}
}
