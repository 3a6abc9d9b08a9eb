package formsapimodels

import (
	apimodels "site-backend/models/api"
)

type ContactPayload struct {
	Name    string `json:"name" form:"name" validate:"required,max=200"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"max=50"`
	Subject string `json:"subject,omitempty" form:"subject" validate:"max=300"`
	Message string `json:"message" form:"message" validate:"required,max=10000"`
}

func (p ContactPayload) Validate() error {
	return apimodels.ValidateStruct(p)
}

// ApplicationPayload - отклик на вакансию. Resume - файл резюме в виде base64 data URL
type ApplicationPayload struct {
	Name        string `json:"name" form:"name" validate:"required,max=200"`
	Email       string `json:"email" form:"email" validate:"required,email"`
	Phone       string `json:"phone" form:"phone" validate:"required,max=50"`
	CoverLetter string `json:"coverLetter" form:"coverLetter" validate:"max=20000"`
	Resume      string `json:"resume" form:"-" validate:"required"`
	Message     string `json:"message,omitempty" form:"message" validate:"max=10000"`
}

func (p ApplicationPayload) Validate() error {
	return apimodels.ValidateStruct(p)
}

type InvestmentInquiryPayload struct {
	Name            string `json:"name" form:"name" validate:"required,max=200"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Phone           string `json:"phone" form:"phone" validate:"required,max=50"`
	Company         string `json:"company" form:"company" validate:"required,max=300"`
	InvestmentRange string `json:"investmentRange,omitempty" form:"investmentRange" validate:"max=100"`
	Message         string `json:"message" form:"message" validate:"required,max=10000"`
}

func (p InvestmentInquiryPayload) Validate() error {
	return apimodels.ValidateStruct(p)
}

type PartnershipInquiryPayload struct {
	Name            string `json:"name" form:"name" validate:"required,max=200"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Phone           string `json:"phone" form:"phone" validate:"required,max=50"`
	Company         string `json:"company" form:"company" validate:"required,max=300"`
	Website         string `json:"website,omitempty" form:"website" validate:"omitempty,url"`
	PartnershipType string `json:"partnershipType,omitempty" form:"partnershipType" validate:"max=100"`
	Message         string `json:"message" form:"message" validate:"required,max=10000"`
}

func (p PartnershipInquiryPayload) Validate() error {
	return apimodels.ValidateStruct(p)
}

// FormState - состояние формы после отправки
type FormState[P any] struct {
	Submitting     bool   `json:"submitting"`
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	Fields         P      `json:"fields"`
	DismissAfterMs int64  `json:"dismiss_after_ms,omitempty"` // через сколько скрыть сообщение об успехе
}
