package contacthandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	cmsclient "site-backend/lib/cms-api/client"
	formgateway "site-backend/lib/form-gateway"
	"site-backend/lib/smtp"
	initchecker "site-backend/lib/utils/init-checker"
	formsapimodels "site-backend/models/api/forms"
)

type Provider interface {
	Submit(ctx context.Context, payload formsapimodels.ContactPayload) (formsapimodels.FormState[formsapimodels.ContactPayload], error)
}

var Instance Provider

// Notify - кому отправлять уведомление о новом обращении. Пустой To - не отправлять
type Notify struct {
	From string
	To   string
}

func NewHandler(dismissAfter time.Duration, notify Notify) {
	initchecker.CheckInit(
		"cmsclient", cmsclient.Instance,
	)
	Instance = NewInstance(cmsclient.Instance, smtp.Instance, dismissAfter, notify)
}

func NewInstance(client cmsclient.Provider, mailer smtp.Provider, dismissAfter time.Duration, notify Notify) Provider {
	return &impl{
		client:       client,
		mailer:       mailer,
		dismissAfter: dismissAfter,
		notify:       notify,
	}
}

type impl struct {
	client       cmsclient.Provider
	mailer       smtp.Provider
	dismissAfter time.Duration
	notify       Notify
}

func (i impl) Submit(ctx context.Context, payload formsapimodels.ContactPayload) (formsapimodels.FormState[formsapimodels.ContactPayload], error) {
	logger := log.WithField("form", "contact")
	state, err := formgateway.SubmitOnce(ctx, payload, i.client.Contact, i.dismissAfter)
	if err != nil {
		logger.WithError(err).Warn("обращение не отправлено")
		return state, err
	}
	logger.Info("обращение отправлено")
	i.sendNotification(logger, payload)
	return state, nil
}

func (i impl) sendNotification(logger *log.Entry, payload formsapimodels.ContactPayload) {
	if i.mailer == nil || i.notify.To == "" {
		return
	}
	subject := "Новое обращение"
	if payload.Subject != "" {
		subject = fmt.Sprintf("Новое обращение: %s", payload.Subject)
	}
	err := i.mailer.SendEMail(i.notify.From, i.notify.To, buildMessage(payload), subject)
	if err != nil {
		logger.WithError(err).Warn("не удалось отправить уведомление об обращении")
	}
}

func buildMessage(payload formsapimodels.ContactPayload) string {
	lines := []string{
		fmt.Sprintf("Имя: %s", payload.Name),
		fmt.Sprintf("Почта: %s", payload.Email),
	}
	if payload.Phone != "" {
		lines = append(lines, fmt.Sprintf("Телефон: %s", payload.Phone))
	}
	lines = append(lines, "", payload.Message)
	return strings.Join(lines, "\r\n")
}
