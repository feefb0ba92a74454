package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "vazifa/internal/util/env"
	"vazifa/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN" required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     required:"true"`
	ServerPort  string            `env:"SERVER_PORT"  env-default:"4010"`
	// cache
	ValkeyHost     string `env:"VALKEY_HOST"     required:"false"`
	ValkeyPort     string `env:"VALKEY_PORT"     required:"false"`
	ValkeyUsername string `env:"VALKEY_USERNAME" required:"false"`
	ValkeyPassword string `env:"VALKEY_PASSWORD" required:"false"`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"   required:"false"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	// Tests run against an in-memory database and need no .env file
	if env.IsTesting {
		env.EnvMode = env_utils.EnvModeDevelopment
		env.DatabaseDsn = "file::memory:?cache=shared"
		env.ServerPort = "4010"
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	projectRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			break
		}

		projectRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(projectRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}
