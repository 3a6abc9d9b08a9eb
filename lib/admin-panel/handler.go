package adminpanelhandler

import (
	"bytes"

	log "github.com/sirupsen/logrus"
	"site-backend/db"
	auditstore "site-backend/lib/cms-api/audit-store"
	xlsexport "site-backend/lib/export/xls"
	adminapimodels "site-backend/models/api/admin"
	dbmodels "site-backend/models/db"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	exportLimit  = 5000
)

type Provider interface {
	AuditList(filter adminapimodels.AuditFilter) (list []adminapimodels.AuditView, rowCount int64, err error)
	AuditExport(filter adminapimodels.AuditFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(auditstore.NewInstance(db.DB), xlsexport.Instance)
}

func NewInstance(store auditstore.Provider, exporter xlsexport.Provider) Provider {
	return impl{
		store:    store,
		exporter: exporter,
	}
}

type impl struct {
	store    auditstore.Provider
	exporter xlsexport.Provider
}

func (i impl) AuditList(filter adminapimodels.AuditFilter) (list []adminapimodels.AuditView, rowCount int64, err error) {
	page, limit := filter.GetPage(defaultLimit, maxLimit)
	recs, rowCount, err := i.store.List(dbmodels.ExtApiAuditFilter{
		Service: filter.Service,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		log.
			WithField("service", filter.Service).
			WithError(err).
			Error("ошибка получения журнала внешнего API")
		return nil, 0, err
	}
	list = make([]adminapimodels.AuditView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, adminapimodels.AuditConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) AuditExport(filter adminapimodels.AuditFilter) (*bytes.Buffer, error) {
	recs, _, err := i.store.List(dbmodels.ExtApiAuditFilter{
		Service: filter.Service,
		Page:    1,
		Limit:   exportLimit,
	})
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала внешнего API для выгрузки")
		return nil, err
	}
	return i.exporter.ExportAuditList(recs)
}
