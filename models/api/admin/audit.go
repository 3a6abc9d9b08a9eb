package adminapimodels

import (
	"time"

	apimodels "site-backend/models/api"
	dbmodels "site-backend/models/db"
)

type AuditFilter struct {
	apimodels.Pagination
	Service string `json:"service"`
}

type AuditView struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Service   string    `json:"service"`
	Method    string    `json:"method"`
	Uri       string    `json:"uri"`
	Status    int       `json:"status"`
	Response  string    `json:"response"`
}

func AuditConvert(rec dbmodels.ExtApiAudit) AuditView {
	return AuditView{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Service:   rec.Service,
		Method:    rec.Method,
		Uri:       rec.Uri,
		Status:    rec.Status,
		Response:  rec.Response,
	}
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type JWTResponse struct {
	Token string `json:"token"`
}
