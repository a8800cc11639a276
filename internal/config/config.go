package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	ScoreRefresh ScoreRefresh `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	TokenTTLHours   int    `mapstructure:"auth_token_ttl_hours"`
	BCryptCost      int    `mapstructure:"auth_bcrypt_cost"`
	MinPasswordSize int    `mapstructure:"auth_min_password_size"`
}

// ScoreRefresh controla a varredura noturna de recálculo de lead scores.
// A degradação por inatividade anda com o relógio, então os scores
// precisam ser revistos mesmo sem mutações.
type ScoreRefresh struct {
	CronSchedule string `mapstructure:"score_refresh_cron"`
	Enabled      bool   `mapstructure:"score_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/crm")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
	viper.SetDefault("AUTH_BCRYPT_COST", 10)
	viper.SetDefault("AUTH_MIN_PASSWORD_SIZE", 8)

	// Defaults da varredura de recálculo de scores
	viper.SetDefault("SCORE_REFRESH_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SCORE_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
