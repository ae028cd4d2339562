package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	Build    string
	AppName  string
	WorkDir  string

	SecretKey                 []byte
	JwtExpirationDelta        time.Duration
	JwtRefreshExpirationDelta time.Duration

	AdminUsername string
	AdminPassword string

	Server struct {
		Host            string
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	NocoDB struct {
		BaseURL     string
		APIToken    string
		WorkspaceID string
		BaseID      string
		Timeout     time.Duration
		CacheTTL    time.Duration
	}

	WhatsApp struct {
		BaseURL            string
		DefaultCountryCode string
		MessageLengthLimit int
	}

	Fees struct {
		CurrencySymbol    string
		MaxAmount         int64
		ReminderIntervals []int // days before due date
		DigestSchedule    string
	}

	Features struct {
		EmailNotifications bool
		BulkOperations     bool
	}

	DefaultFromEmail mail.Address
	SendgridApiKey   string
	RollbarToken     string
}

// NewConfig loads the app Config from the environment; config/.env.<env> is
// loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()

	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "EduCRM")
	conf.SetDefault("secretKey", "+p2ay#f0b(n$u3-educrm-x%4_q&8zr!7w=5c^6km9j*vhgd1t")
	conf.SetDefault("jwtExpirationDelta", time.Hour)
	conf.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("adminUsername", "admin")
	conf.SetDefault("adminPassword", "educrm2024")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":8001")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("nocodbBaseUrl", "http://localhost:8080")
	conf.SetDefault("nocodbApiToken", "")
	conf.SetDefault("nocodbWorkspaceId", "")
	conf.SetDefault("nocodbBaseId", "")
	conf.SetDefault("nocodbTimeout", 30*time.Second)
	conf.SetDefault("nocodbCacheTtl", 300*time.Second)
	conf.SetDefault("whatsappBaseUrl", "https://wa.me/")
	conf.SetDefault("whatsappCountryCode", "91")
	conf.SetDefault("whatsappMessageLengthLimit", 1000)
	conf.SetDefault("currencySymbol", "₹")
	conf.SetDefault("maxFeeAmount", 1000000)
	conf.SetDefault("feeDigestSchedule", "0 8 * * *")
	conf.SetDefault("enableEmail", false)
	conf.SetDefault("enableBulkOperations", true)
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	testMode := false
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
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

	c := &Config{
		Debug:                     conf.GetBool("debug"),
		TestMode:                  testMode,
		Env:                       env,
		Build:                     conf.GetString("build"),
		AppName:                   conf.GetString("appName"),
		WorkDir:                   wd,
		SecretKey:                 []byte(conf.GetString("secretKey")),
		JwtExpirationDelta:        conf.GetDuration("jwtExpirationDelta"),
		JwtRefreshExpirationDelta: conf.GetDuration("jwtRefreshExpirationDelta"),
		AdminUsername:             conf.GetString("adminUsername"),
		AdminPassword:             conf.GetString("adminPassword"),
		DefaultFromEmail:          mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		SendgridApiKey:            conf.GetString("sendgridApiKey"),
		RollbarToken:              conf.GetString("rollbarToken"),
	}
	c.Server.Host = conf.GetString("serverHost")
	c.Server.Addr = conf.GetString("serverAddr")
	c.Server.DebugAddr = conf.GetString("serverDebugAddr")
	c.Server.ShutdownTimeout = conf.GetDuration("serverShutdownTimeout")
	c.NocoDB.BaseURL = strings.TrimRight(conf.GetString("nocodbBaseUrl"), "/")
	c.NocoDB.APIToken = conf.GetString("nocodbApiToken")
	c.NocoDB.WorkspaceID = conf.GetString("nocodbWorkspaceId")
	c.NocoDB.BaseID = conf.GetString("nocodbBaseId")
	c.NocoDB.Timeout = conf.GetDuration("nocodbTimeout")
	c.NocoDB.CacheTTL = conf.GetDuration("nocodbCacheTtl")
	c.WhatsApp.BaseURL = conf.GetString("whatsappBaseUrl")
	c.WhatsApp.DefaultCountryCode = conf.GetString("whatsappCountryCode")
	c.WhatsApp.MessageLengthLimit = conf.GetInt("whatsappMessageLengthLimit")
	c.Fees.CurrencySymbol = conf.GetString("currencySymbol")
	c.Fees.MaxAmount = conf.GetInt64("maxFeeAmount")
	c.Fees.ReminderIntervals = []int{7, 3, 1}
	c.Fees.DigestSchedule = conf.GetString("feeDigestSchedule")
	c.Features.EmailNotifications = conf.GetBool("enableEmail")
	c.Features.BulkOperations = conf.GetBool("enableBulkOperations")
	return c
}

// DemoMode reports whether the app should run on the in-memory demo store.
// The external store needs an API token and a base ID; without both we fall
// back to seeded demo data.
func (c *Config) DemoMode() bool {
	return c.NocoDB.APIToken == "" || c.NocoDB.BaseID == ""
}
