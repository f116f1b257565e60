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
	"github.com/vfg2006/dataops-local/internal/domain"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Import         Import         `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	PipelineSync   PipelineSync   `mapstructure:",squash"`
	CommissionSync CommissionSync `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Import agrupa os caminhos das planilhas de entrada e do arquivo de log
type Import struct {
	InputDir           string `mapstructure:"import_input_dir"`
	RevenueFile        string `mapstructure:"import_revenue_file"`
	ExpenseFile        string `mapstructure:"import_expense_file"`
	ProfessionalFile   string `mapstructure:"import_professional_file"`
	ServiceFile        string `mapstructure:"import_service_file"`
	LogFile            string `mapstructure:"import_log_file"`
	ComputeCommissions bool   `mapstructure:"import_compute_commissions"`
}

type Report struct {
	CacheTTLSeconds int `mapstructure:"report_cache_ttl_seconds"`
	TopLimit        int `mapstructure:"report_top_limit"`
	DefaultDays     int `mapstructure:"report_default_days"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Auth struct {
	AdminUser         string `mapstructure:"auth_admin_user"`
	AdminPasswordHash string `mapstructure:"auth_admin_password_hash"`
	TokenTTLMinutes   int    `mapstructure:"auth_token_ttl_minutes"`
}

type PipelineSync struct {
	CronSchedule string `mapstructure:"pipeline_sync_cron"`
	Enabled      bool   `mapstructure:"pipeline_sync_enabled"`
}

type CommissionSync struct {
	CronSchedule  string `mapstructure:"commission_sync_cron"`
	Enabled       bool   `mapstructure:"commission_sync_enabled"`
	MonthLookBack int    `mapstructure:"commission_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dataops?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Planilhas de entrada
	viper.SetDefault("IMPORT_INPUT_DIR", "1-coleta")
	viper.SetDefault("IMPORT_REVENUE_FILE", "Template_Receitas.xlsx")
	viper.SetDefault("IMPORT_EXPENSE_FILE", "Template_Despesas.xlsx")
	viper.SetDefault("IMPORT_PROFESSIONAL_FILE", "Template_Profissionais.xlsx")
	viper.SetDefault("IMPORT_SERVICE_FILE", "Template_Servicos.xlsx")
	viper.SetDefault("IMPORT_LOG_FILE", "logs/log_importacao.txt")
	// Vale para execuções pela CLI e pela API; a importação agendada nunca calcula comissões
	viper.SetDefault("IMPORT_COMPUTE_COMMISSIONS", true)

	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("REPORT_TOP_LIMIT", 5)
	viper.SetDefault("REPORT_DEFAULT_DAYS", 30)

	// Sem endereço o cache de relatórios fica desligado
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("AUTH_ADMIN_USER", "admin")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 24*60)

	// Receitas e despesas são acrescentadas a cada execução: a planilha agendada deve trazer só lançamentos novos
	viper.SetDefault("PIPELINE_SYNC_CRON", "0 2 * * *")   // Todos os dias às 2h da manhã
	viper.SetDefault("PIPELINE_SYNC_ENABLED", false)      // Habilitar importação agendada
	viper.SetDefault("COMMISSION_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("COMMISSION_SYNC_ENABLED", false)
	viper.SetDefault("COMMISSION_SYNC_MONTH_LOOKBACK", 1)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

// InputPath resolve o caminho de uma planilha relativo ao diretório de entrada
func (i Import) InputPath(file string) string {
	if filepath.IsAbs(file) || i.InputDir == "" {
		return file
	}
	return filepath.Join(i.InputDir, file)
}

// Path devolve o caminho da planilha de um tipo de registro
func (i Import) Path(kind domain.RecordKind) string {
	switch kind {
	case domain.KindRevenue:
		return i.InputPath(i.RevenueFile)
	case domain.KindExpense:
		return i.InputPath(i.ExpenseFile)
	case domain.KindProfessional:
		return i.InputPath(i.ProfessionalFile)
	case domain.KindService:
		return i.InputPath(i.ServiceFile)
	}
	return ""
}

func (r Report) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

func (a Auth) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
