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
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Poconverto         Poconverto         `mapstructure:",squash"`
	Icount             Icount             `mapstructure:",squash"`
	AnalyticsSync      AnalyticsSync      `mapstructure:",squash"`
	OfflineRevenueSync OfflineRevenueSync `mapstructure:",squash"`
	SecretKey          string             `mapstructure:"secret_key"`
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

type Poconverto struct {
	BaseURL string `mapstructure:"poconverto_base_url"`
	APIKey  string `mapstructure:"poconverto_api_key"`
}

type Icount struct {
	BaseURL string `mapstructure:"icount_base_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type AnalyticsSync struct {
	CronSchedule        string `mapstructure:"analytics_sync_cron"`
	MonthLookback       int    `mapstructure:"analytics_sync_month_lookback"`
	RequestDelaySeconds int    `mapstructure:"analytics_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"analytics_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"analytics_sync_enabled"`
}

type OfflineRevenueSync struct {
	CronSchedule        string `mapstructure:"offline_revenue_sync_cron"`
	MonthLookback       int    `mapstructure:"offline_revenue_sync_month_lookback"`
	RequestDelaySeconds int    `mapstructure:"offline_revenue_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"offline_revenue_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/agencyops")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("POCONVERTO_BASE_URL", "https://app.poconverto.com")
	viper.SetDefault("POCONVERTO_API_KEY", "your_api_key") // ONLY LOCAL

	viper.SetDefault("ICOUNT_BASE_URL", "https://api.icount.co.il/api/v3.php")

	// Defaults para sincronização de métricas mensais
	viper.SetDefault("ANALYTICS_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("ANALYTICS_SYNC_MONTH_LOOKBACK", 2)        // Meses retroativos para atualizar
	viper.SetDefault("ANALYTICS_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("ANALYTICS_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("ANALYTICS_SYNC_ENABLED", false)

	// Defaults para sincronização de receita offline (iCount)
	viper.SetDefault("OFFLINE_REVENUE_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("OFFLINE_REVENUE_SYNC_MONTH_LOOKBACK", 2)
	viper.SetDefault("OFFLINE_REVENUE_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("OFFLINE_REVENUE_SYNC_ENABLED", false)

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
