package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultSheetCSVURL é a planilha publicada usada pelo painel
const DefaultSheetCSVURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQd8NHg8n3eEhS3MTU22XZKK_0600UPqsLGPeY-d44AsivNYYk2T37SiFUr9DhPTEQ448wjiokQDTKs/pub?gid=0&single=true&output=csv"

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Sheet     Sheet     `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Cors      Cors      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Sheet struct {
	CSVURL        string        `mapstructure:"sheet_csv_url"`
	HTTPTimeout   time.Duration `mapstructure:"sheet_http_timeout"`
	DateLayouts   []string      `mapstructure:"sheet_date_layouts"`
	ReloadCron    string        `mapstructure:"sheet_reload_cron"`
	ReloadEnabled bool          `mapstructure:"sheet_reload_enabled"`
}

type Dashboard struct {
	TopCreativesLimit int `mapstructure:"dashboard_top_creatives_limit"`
	DefaultRangeDays  int `mapstructure:"dashboard_default_range_days"`
	TrendsLimit       int `mapstructure:"dashboard_trends_limit"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("SHEET_CSV_URL", DefaultSheetCSVURL)
	viper.SetDefault("SHEET_HTTP_TIMEOUT", "30s")
	viper.SetDefault("SHEET_DATE_LAYOUTS", "")

	// Recarga periódica da planilha (desligada por padrão, a carga acontece no boot e via /reload)
	viper.SetDefault("SHEET_RELOAD_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SHEET_RELOAD_ENABLED", false)

	viper.SetDefault("DASHBOARD_TOP_CREATIVES_LIMIT", 6)
	viper.SetDefault("DASHBOARD_DEFAULT_RANGE_DAYS", 30)
	viper.SetDefault("DASHBOARD_TRENDS_LIMIT", 8)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func NewConfig() (*Config, error) {
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

	config.Sheet.DateLayouts = compact(config.Sheet.DateLayouts)
	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)

	return config, nil
}

// Location retorna o fuso usado para interpretar as datas. Fuso inválido cai para time.Local.
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" {
		return time.Local
	}

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.WithError(err).WithField("timezone", c.App.Timezone).Warn("Fuso horário inválido, usando o local")
		return time.Local
	}

	return loc
}

// remove itens vazios que sobram do split de listas separadas por vírgula
func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
