package initializers

import (
	"context"
	"time"

	"site-backend/config"
	"site-backend/db"
	"site-backend/fiberlog"
	adminpanelhandler "site-backend/lib/admin-panel"
	adminpanelauthhandler "site-backend/lib/admin-panel/auth"
	bloghandler "site-backend/lib/blog"
	auditstore "site-backend/lib/cms-api/audit-store"
	cmsclient "site-backend/lib/cms-api/client"
	cmshealthworker "site-backend/lib/cms-api/health-worker"
	contacthandler "site-backend/lib/contact"
	xlsexport "site-backend/lib/export/xls"
	inquiryhandler "site-backend/lib/inquiry"
	jobhandler "site-backend/lib/job"
	showcasehandler "site-backend/lib/showcase"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	cmsclient.NewProvider(cmsclient.Config{
		Host:      config.Conf.CmsApi.BaseUrl,
		Token:     config.Conf.CmsApi.Token,
		Timeout:   time.Duration(config.Conf.CmsApi.TimeoutSec) * time.Second,
		WithAudit: *config.Conf.CmsApi.WithAudit,
	}, auditstore.NewInstance(db.DB))
	xlsexport.NewHandler()

	dismissAfter := time.Duration(config.Conf.Forms.SuccessDismissSec) * time.Second
	bloghandler.NewHandler(config.Conf.Pagination.WindowSize)
	jobhandler.NewHandler(jobhandler.Options{
		WindowSize:    config.Conf.Pagination.WindowSize,
		DismissAfter:  dismissAfter,
		MaxResumeSize: config.Conf.Forms.MaxResumeSize,
	})
	contacthandler.NewHandler(dismissAfter, contacthandler.Notify{
		From: config.Conf.Notify.From,
		To:   config.Conf.Notify.SalesEmail,
	})
	inquiryhandler.NewHandler(dismissAfter, inquiryhandler.Notify{
		From:          config.Conf.Notify.From,
		InvestorEmail: config.Conf.Notify.InvestorEmail,
		PartnerEmail:  config.Conf.Notify.PartnerEmail,
	})
	showcasehandler.NewHandler()
	adminpanelauthhandler.NewHandler(adminpanelauthhandler.Config{
		Login:        config.Conf.Auth.AdminLogin,
		PasswordHash: config.Conf.Auth.AdminPasswordHash,
		JWTSecret:    config.Conf.Auth.JWTSecret,
		JWTExpire:    time.Duration(config.Conf.Auth.JWTExpireInSec) * time.Second,
	})
	adminpanelhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача проверки доступности CMS
	if *config.Conf.Worker.HealthCheckEnabled {
		cmshealthworker.StartWorker(ctx, time.Duration(config.Conf.Worker.HealthCheckIntervalSec)*time.Second)
	}
}
