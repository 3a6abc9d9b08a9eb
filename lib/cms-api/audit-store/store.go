package auditstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "site-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ExtApiAudit) (id string, err error)
	List(filter dbmodels.ExtApiAuditFilter) (list []dbmodels.ExtApiAudit, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExtApiAudit) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(filter dbmodels.ExtApiAuditFilter) (list []dbmodels.ExtApiAudit, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.ExtApiAudit{})
	if filter.Service != "" {
		tx = tx.Where("service = ?", filter.Service)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		tx = tx.Limit(filter.Limit).Offset((page - 1) * filter.Limit)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}
	return list, rowCount, nil
}
