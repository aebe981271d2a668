package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Cors      Cors      `mapstructure:",squash"`
	DataAudit DataAudit `mapstructure:",squash"`
	Targets   Targets   `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"` // host:porta/banco
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
	Version  string `mapstructure:"app_version"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type DataAudit struct {
	CronSchedule string `mapstructure:"data_audit_cron"`
	Enabled      bool   `mapstructure:"data_audit_enabled"`
}

// Targets aponta para o arquivo YAML com metas e limites dos indicadores
type Targets struct {
	File  string `mapstructure:"kpi_targets_file"`
	Watch bool   `mapstructure:"kpi_targets_watch"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/kpi_dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATA_AUDIT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DATA_AUDIT_ENABLED", false)

	viper.SetDefault("KPI_TARGETS_FILE", "")
	viper.SetDefault("KPI_TARGETS_WATCH", true)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_VERSION", "1.0.0")
	viper.SetDefault("LOG_LEVEL", "debug")
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

	config.Database.DSN, err = config.Database.BuildDSN()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// BuildDSN monta a string de conexão no formato esperado pelo driver configurado
func (d Database) BuildDSN() (string, error) {
	switch d.Driver {
	case DriverPostgres, "":
		host, dbName, _ := strings.Cut(d.URL, "/")
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.User, d.Password),
			Host:     host,
			Path:     "/" + dbName,
			RawQuery: "sslmode=disable",
		}
		return dsn.String(), nil
	case DriverMySQL:
		host, dbName, found := strings.Cut(d.URL, "/")
		if !found || host == "" || dbName == "" {
			return "", fmt.Errorf("database_url inválida para mysql (esperado host:porta/banco): %q", d.URL)
		}

		cfg := mysql.NewConfig()
		cfg.User = d.User
		cfg.Passwd = d.Password
		cfg.Net = "tcp"
		cfg.Addr = host
		cfg.DBName = dbName
		cfg.ParseTime = true
		cfg.InterpolateParams = true

		return cfg.FormatDSN(), nil
	default:
		return "", fmt.Errorf("driver de banco não suportado: %s", d.Driver)
	}
}

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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
