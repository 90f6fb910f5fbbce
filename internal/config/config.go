package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	Auth                 Auth                 `mapstructure:",squash"`
	Forecast             Forecast             `mapstructure:",squash"`
	ForecastSnapshotSync ForecastSnapshotSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Forecast struct {
	DefaultHorizon int           `mapstructure:"forecast_default_horizon"`
	MaxHorizon     int           `mapstructure:"forecast_max_horizon"`
	RequestTimeout time.Duration `mapstructure:"forecast_request_timeout"`
}

type ForecastSnapshotSync struct {
	CronSchedule  string `mapstructure:"forecast_snapshot_sync_cron"`
	Horizon       int    `mapstructure:"forecast_snapshot_sync_horizon"`
	RetentionDays int    `mapstructure:"forecast_snapshot_sync_retention_days"`
	Enabled       bool   `mapstructure:"forecast_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail_sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("AUTH_SECRET", "") // Sem segredo nenhum token é emitido ou aceito
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("FORECAST_DEFAULT_HORIZON", 6)     // 6 meses
	viper.SetDefault("FORECAST_MAX_HORIZON", 36)        // 3 anos
	viper.SetDefault("FORECAST_REQUEST_TIMEOUT", "30s") // Timeout em torno da consulta de previsão

	// Defaults para o snapshot de previsões
	viper.SetDefault("FORECAST_SNAPSHOT_SYNC_CRON", "0 2 1 * *")   // No primeiro dia de cada mês às 2h da manhã
	viper.SetDefault("FORECAST_SNAPSHOT_SYNC_HORIZON", 6)          // 6 meses de previsão
	viper.SetDefault("FORECAST_SNAPSHOT_SYNC_RETENTION_DAYS", 365) // Manter snapshots por 1 ano
	viper.SetDefault("FORECAST_SNAPSHOT_SYNC_ENABLED", false)      // Habilitar snapshot agendado

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate verifica se os valores de previsão são coerentes
func (c *Config) Validate() error {
	if c.Forecast.DefaultHorizon <= 0 {
		return fmt.Errorf("config: horizonte padrão de previsão deve ser positivo: %d", c.Forecast.DefaultHorizon)
	}
	if c.Forecast.MaxHorizon < c.Forecast.DefaultHorizon {
		return fmt.Errorf("config: horizonte máximo (%d) menor que o padrão (%d)", c.Forecast.MaxHorizon, c.Forecast.DefaultHorizon)
	}
	if c.ForecastSnapshotSync.Enabled && c.ForecastSnapshotSync.Horizon <= 0 {
		return fmt.Errorf("config: horizonte do snapshot deve ser positivo: %d", c.ForecastSnapshotSync.Horizon)
	}
	return nil
}

// BuildDSN monta a string de conexão a partir das configurações do banco
func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
