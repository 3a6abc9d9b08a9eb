package dbmodels

import "github.com/pkg/errors"

// ExtApiAudit - неуспешный ответ внешнего API. Тело запроса не сохраняется.
type ExtApiAudit struct {
	BaseModel
	Service  string `gorm:"type:varchar(50);index"`
	Method   string `gorm:"type:varchar(10)"`
	Uri      string
	Response string
	Status   int `gorm:"index"`
}

func (r ExtApiAudit) Validate() error {
	if r.Service == "" {
		return errors.New("не указан сервис")
	}
	if r.Uri == "" {
		return errors.New("не указан адрес запроса")
	}
	return nil
}

type ExtApiAuditFilter struct {
	Service string
	Page    int
	Limit   int
}
