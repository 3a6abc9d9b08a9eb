package initializers

import (
	log "github.com/sirupsen/logrus"
	"site-backend/config"
	"site-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	if !smtp.Instance.Configured() {
		log.Info("SMTP не настроен, уведомления о формах не отправляются")
	}
}
