package inquiryhandler

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
	Investment(ctx context.Context, payload formsapimodels.InvestmentInquiryPayload) (formsapimodels.FormState[formsapimodels.InvestmentInquiryPayload], error)
	Partnership(ctx context.Context, payload formsapimodels.PartnershipInquiryPayload) (formsapimodels.FormState[formsapimodels.PartnershipInquiryPayload], error)
}

var Instance Provider

type Notify struct {
	From          string
	InvestorEmail string
	PartnerEmail  string
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

func (i impl) Investment(ctx context.Context, payload formsapimodels.InvestmentInquiryPayload) (formsapimodels.FormState[formsapimodels.InvestmentInquiryPayload], error) {
	logger := log.
		WithField("form", "investment").
		WithField("company", payload.Company)
	state, err := formgateway.SubmitOnce(ctx, payload, i.client.InvestmentInquiry, i.dismissAfter)
	if err != nil {
		logger.WithError(err).Warn("заявка инвестора не отправлена")
		return state, err
	}
	logger.Info("заявка инвестора отправлена")
	lines := contactLines(payload.Name, payload.Email, payload.Phone, payload.Company)
	if payload.InvestmentRange != "" {
		lines = append(lines, fmt.Sprintf("Объём инвестиций: %s", payload.InvestmentRange))
	}
	i.sendNotification(logger, i.notify.InvestorEmail, "Новая заявка инвестора", append(lines, "", payload.Message))
	return state, nil
}

func (i impl) Partnership(ctx context.Context, payload formsapimodels.PartnershipInquiryPayload) (formsapimodels.FormState[formsapimodels.PartnershipInquiryPayload], error) {
	logger := log.
		WithField("form", "partnership").
		WithField("company", payload.Company)
	state, err := formgateway.SubmitOnce(ctx, payload, i.client.PartnershipInquiry, i.dismissAfter)
	if err != nil {
		logger.WithError(err).Warn("заявка на партнёрство не отправлена")
		return state, err
	}
	logger.Info("заявка на партнёрство отправлена")
	lines := contactLines(payload.Name, payload.Email, payload.Phone, payload.Company)
	if payload.Website != "" {
		lines = append(lines, fmt.Sprintf("Сайт: %s", payload.Website))
	}
	if payload.PartnershipType != "" {
		lines = append(lines, fmt.Sprintf("Тип партнёрства: %s", payload.PartnershipType))
	}
	i.sendNotification(logger, i.notify.PartnerEmail, "Новая заявка на партнёрство", append(lines, "", payload.Message))
	return state, nil
}

func (i impl) sendNotification(logger *log.Entry, to, subject string, lines []string) {
	if i.mailer == nil || to == "" {
		return
	}
	if err := i.mailer.SendEMail(i.notify.From, to, strings.Join(lines, "\r\n"), subject); err != nil {
		logger.WithError(err).Warn("не удалось отправить уведомление о заявке")
	}
}

func contactLines(name, email, phone, company string) []string {
	return []string{
		fmt.Sprintf("Имя: %s", name),
		fmt.Sprintf("Почта: %s", email),
		fmt.Sprintf("Телефон: %s", phone),
		fmt.Sprintf("Компания: %s", company),
	}
}
