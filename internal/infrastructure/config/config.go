package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Agente   AgenteConfig
	Storage  StorageConfig
	Chart    ChartConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

// AuthConfig reúne o segredo único da API key de máquina e o segredo de
// assinatura dos tokens de sessão
type AuthConfig struct {
	APIKeySecret  string
	SessionSecret string
	SessionExpiry int // horas
}

// AgenteConfig aponta para a API externa de métricas do agente
type AgenteConfig struct {
	BaseURL string
	Token   string
	Timeout int // segundos
}

// StorageConfig configura o bucket de objetos das imagens de relatório
type StorageConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// ChartConfig configura o serviço externo de renderização de gráficos
type ChartConfig struct {
	RenderURL string
	RenderKey string
	Timeout   int // segundos
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do ambiente (e de um .env, se presente)
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// .env é opcional: em produção tudo vem do ambiente
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 12)
	viper.SetDefault("AGENT_API_TIMEOUT", 10)
	viper.SetDefault("CHART_RENDER_TIMEOUT", 30)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		Auth: AuthConfig{
			APIKeySecret:  viper.GetString("API_KEY_SECRET"),
			SessionSecret: viper.GetString("SESSION_JWT_SECRET"),
			SessionExpiry: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Agente: AgenteConfig{
			BaseURL: viper.GetString("AGENT_API_BASE_URL"),
			Token:   viper.GetString("AGENT_API_TOKEN"),
			Timeout: viper.GetInt("AGENT_API_TIMEOUT"),
		},
		Storage: StorageConfig{
			Endpoint:  viper.GetString("S3_ENDPOINT"),
			Region:    viper.GetString("S3_REGION"),
			AccessKey: viper.GetString("S3_ACCESS_KEY"),
			SecretKey: viper.GetString("S3_SECRET_KEY"),
			Bucket:    viper.GetString("S3_BUCKET"),
			PublicURL: viper.GetString("S3_PUBLIC_URL"),
		},
		Chart: ChartConfig{
			RenderURL: viper.GetString("CHART_RENDER_URL"),
			RenderKey: viper.GetString("CHART_RENDER_KEY"),
			Timeout:   viper.GetInt("CHART_RENDER_TIMEOUT"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if config.Auth.APIKeySecret == "" {
		return nil, fmt.Errorf("API_KEY_SECRET é obrigatória")
	}
	if config.Auth.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_JWT_SECRET é obrigatório")
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
