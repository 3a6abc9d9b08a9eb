package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		BodyLimit  int    `default:"20971520" env:"APP_BODY_LIMIT"`
	}
	CmsApi struct {
		BaseUrl    string `default:"http://localhost:3000/api" env:"CMS_API_BASE_URL"`
		Token      string `default:"" env:"CMS_API_TOKEN"`
		TimeoutSec int    `default:"15" env:"CMS_API_TIMEOUT_SEC"`
		WithAudit  *bool  `default:"true" env:"CMS_API_WITH_AUDIT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"site" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"site-resumes" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Notify struct {
		From          string `default:"no-reply@localhost" env:"NOTIFY_FROM"`
		SalesEmail    string `default:"" env:"NOTIFY_SALES_EMAIL"`
		InvestorEmail string `default:"" env:"NOTIFY_INVESTOR_EMAIL"`
		PartnerEmail  string `default:"" env:"NOTIFY_PARTNER_EMAIL"`
	}
	Auth struct {
		JWTSecret         string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec    int    `default:"43200" env:"JWT_EXPIRE_IN_SEC"`
		AdminLogin        string `default:"" env:"ADMIN_LOGIN"`
		AdminPasswordHash string `default:"" env:"ADMIN_PASSWORD_HASH"` // bcrypt
	}
	Pagination struct {
		BlogPageSize int `default:"9" env:"PAGINATION_BLOG_PAGE_SIZE"`
		JobPageSize  int `default:"10" env:"PAGINATION_JOB_PAGE_SIZE"`
		MaxPageSize  int `default:"100" env:"PAGINATION_MAX_PAGE_SIZE"`
		WindowSize   int `default:"5" env:"PAGINATION_WINDOW_SIZE"`
	}
	Forms struct {
		SuccessDismissSec int   `default:"5" env:"FORMS_SUCCESS_DISMISS_SEC"`
		MaxResumeSize     int64 `default:"5242880" env:"FORMS_MAX_RESUME_SIZE"`
	}
	Worker struct {
		HealthCheckEnabled     *bool `default:"true" env:"WORKER_HEALTH_CHECK_ENABLED"`
		HealthCheckIntervalSec int   `default:"300" env:"WORKER_HEALTH_CHECK_INTERVAL_SEC"`
	}
	Export struct {
		PdfFontDir string `default:"static/font/" env:"EXPORT_PDF_FONT_DIR"`
	}
	NotifyBot struct {
		AddrErr string `default:"" env:"NOTIFY_BOT_ADDR_ERR"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
