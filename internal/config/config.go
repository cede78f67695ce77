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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	GoogleAds        GoogleAds        `mapstructure:",squash"`
	GooglePlay       GooglePlay       `mapstructure:",squash"`
	OpenAI           OpenAI           `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	OptimizationSync OptimizationSync `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
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

type GoogleAds struct {
	BaseURL        string   `mapstructure:"google_ads_base_url"`
	Version        string   `mapstructure:"google_ads_version"`
	URL            string   `mapstructure:"-"`
	DeveloperToken string   `mapstructure:"google_ads_developer_token"`
	ClientID       string   `mapstructure:"google_ads_client_id"`
	ClientSecret   string   `mapstructure:"google_ads_client_secret"`
	RefreshToken   string   `mapstructure:"google_ads_refresh_token"`
	LoginCustomer  string   `mapstructure:"google_ads_login_customer_id"`
	CustomerIDs    []string `mapstructure:"google_ads_customer_ids"`
}

type GooglePlay struct {
	BaseURL     string `mapstructure:"google_play_base_url"`
	PackageName string `mapstructure:"google_play_package_name"`
	AccessToken string `mapstructure:"google_play_access_token"`
	MaxReviews  int    `mapstructure:"google_play_max_reviews"`
}

type OpenAI struct {
	BaseURL     string  `mapstructure:"openai_base_url"`
	APIKey      string  `mapstructure:"openai_api_key"`
	Model       string  `mapstructure:"openai_model"`
	Temperature float64 `mapstructure:"openai_temperature"`
	MaxRetries  int     `mapstructure:"openai_max_retries"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type OptimizationSync struct {
	CronSchedule      string `mapstructure:"optimization_sync_cron"`
	BlockLengthDays   int    `mapstructure:"optimization_sync_block_length_days"`
	TotalDays         int    `mapstructure:"optimization_sync_total_days"`
	MaxConcurrentJobs int    `mapstructure:"optimization_sync_max_concurrent_jobs"`
	RetentionDays     int    `mapstructure:"optimization_sync_retention_days"`
	Enabled           bool   `mapstructure:"optimization_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/optimizer")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v19")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "your_refresh_token") // ONLY LOCAL
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_IDS", "")

	viper.SetDefault("GOOGLE_PLAY_BASE_URL", "https://androidpublisher.googleapis.com/androidpublisher/v3")
	viper.SetDefault("GOOGLE_PLAY_PACKAGE_NAME", "")
	viper.SetDefault("GOOGLE_PLAY_ACCESS_TOKEN", "")
	viper.SetDefault("GOOGLE_PLAY_MAX_REVIEWS", 50)

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "your_api_key")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.2)
	viper.SetDefault("OPENAI_MAX_RETRIES", 3)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para a sincronização diária de otimização
	viper.SetDefault("OPTIMIZATION_SYNC_CRON", "0 5 * * *")       // Todos os dias às 5h da manhã
	viper.SetDefault("OPTIMIZATION_SYNC_BLOCK_LENGTH_DAYS", 14)   // Blocos de 14 dias
	viper.SetDefault("OPTIMIZATION_SYNC_TOTAL_DAYS", 84)          // Janela total de 84 dias (6 blocos)
	viper.SetDefault("OPTIMIZATION_SYNC_MAX_CONCURRENT_JOBS", 3)  // 3 contas em paralelo
	viper.SetDefault("OPTIMIZATION_SYNC_RETENTION_DAYS", 90)      // Guardar execuções por 90 dias
	viper.SetDefault("OPTIMIZATION_SYNC_ENABLED", false)          // Habilitar sincronização de otimização

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
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

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
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
