package core

import (
	"log"
	"net"
	"net/mail"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host               string
		Address            string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Engine     string // memory | postgres
		Host       string
		Port       int
		Name       string
		User       string
		Password   string
		DisableTLS bool
	}

	ScoreRangeConfig struct {
		P25 int
		P75 int
	}

	// ChancingConfig holds the values substituted for missing college statistics.
	ChancingConfig struct {
		DefaultAverageGPA float64
		DefaultSATRange   ScoreRangeConfig
		DefaultACTRange   ScoreRangeConfig
	}

	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string
		WorkDir      string

		FrontendBaseURL  string
		DefaultFromEmail mail.Address
		SendgridAPIKey   string

		Server   ServerConfig
		Database DatabaseConfig
		Chancing ChancingConfig
	}
)

func (dbc DatabaseConfig) Address() string {
	return net.JoinHostPort(dbc.Host, strconv.Itoa(dbc.Port))
}

// NewConfig loads the configuration from defaults, `config/.env.<env>` and the environment.
// The environment is read from ENV: DEV (local; default), TEST, QA, PROD.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Unitrack")
	conf.SetDefault("build", "develop")
	conf.SetDefault("secretKey", "poq5-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("sendgridApiKey", "")

	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverDebugHost", ":4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)

	conf.SetDefault("dbEngine", "memory")
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", 5432)
	conf.SetDefault("dbName", "unitrack")
	conf.SetDefault("dbUser", "unitrack")
	conf.SetDefault("dbPassword", "")
	conf.SetDefault("dbDisableTLS", true)

	conf.SetDefault("chancingDefaultAverageGPA", 3.5)
	conf.SetDefault("chancingDefaultSATP25", 1200)
	conf.SetDefault("chancingDefaultSATP75", 1400)
	conf.SetDefault("chancingDefaultACTP25", 25)
	conf.SetDefault("chancingDefaultACTP75", 32)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		SecretKey:    conf.GetString("secretKey"),
		RollbarToken: conf.GetString("rollbarToken"),
		WorkDir:      wd,

		FrontendBaseURL: conf.GetString("frontendBaseURL"),
		DefaultFromEmail: mail.Address{
			Name:    conf.GetString("appName"),
			Address: conf.GetString("defaultFromEmail"),
		},
		SendgridAPIKey: conf.GetString("sendgridApiKey"),
		Server: ServerConfig{
			Host:               conf.GetString("serverHost"),
			Address:            conf.GetString("serverAddress"),
			DebugHost:          conf.GetString("serverDebugHost"),
			ShutdownTimeout:    conf.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
		},
		Database: DatabaseConfig{
			Engine:     strings.ToLower(conf.GetString("dbEngine")),
			Host:       conf.GetString("dbHost"),
			Port:       conf.GetInt("dbPort"),
			Name:       conf.GetString("dbName"),
			User:       conf.GetString("dbUser"),
			Password:   conf.GetString("dbPassword"),
			DisableTLS: conf.GetBool("dbDisableTLS"),
		},
		Chancing: ChancingConfig{
			DefaultAverageGPA: conf.GetFloat64("chancingDefaultAverageGPA"),
			DefaultSATRange: ScoreRangeConfig{
				P25: conf.GetInt("chancingDefaultSATP25"),
				P75: conf.GetInt("chancingDefaultSATP75"),
			},
			DefaultACTRange: ScoreRangeConfig{
				P25: conf.GetInt("chancingDefaultACTP25"),
				P75: conf.GetInt("chancingDefaultACTP75"),
			},
		},
	}
}
