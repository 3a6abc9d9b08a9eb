package xlsexport

import (
	"bytes"
	"fmt"

	jobapimodels "site-backend/models/api/job"
	dbmodels "site-backend/models/db"
)

type Provider interface {
	ExportJobList(list []jobapimodels.JobView) (*bytes.Buffer, error)
	ExportAuditList(list []dbmodels.ExtApiAudit) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var jobHeaders = []string{"Вакансия", "Отдел", "Локация", "Удалённо", "Тип занятости", "Опыт", "Зарплата", "Откликнуться до", "Статус"}

var auditHeaders = []string{"Дата", "Сервис", "Метод", "Адрес", "Код ответа", "Ответ"}

func (i impl) ExportJobList(list []jobapimodels.JobView) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.Title,
			item.Department,
			item.Location,
			yesNo(item.IsRemote),
			item.JobType,
			item.ExperienceLevel,
			formatSalary(item.SalaryRange),
			item.Deadline,
			item.StatusName,
		})
	}
	return writeTable(table{
		sheetName: "Вакансии",
		headers:   jobHeaders,
		rows:      rows,
	})
}

func (i impl) ExportAuditList(list []dbmodels.ExtApiAudit) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.CreatedAt.Format("02.01.2006 15:04:05"),
			item.Service,
			item.Method,
			item.Uri,
			item.Status,
			item.Response,
		})
	}
	return writeTable(table{
		sheetName: "Ошибки внешнего API",
		headers:   auditHeaders,
		rows:      rows,
	})
}

func yesNo(value bool) string {
	if value {
		return "Да"
	}
	return "Нет"
}

func formatSalary(salary *jobapimodels.SalaryRange) string {
	if salary == nil {
		return ""
	}
	switch {
	case salary.Min > 0 && salary.Max > 0:
		return fmt.Sprintf("%d - %d %s", salary.Min, salary.Max, salary.Currency)
	case salary.Min > 0:
		return fmt.Sprintf("от %d %s", salary.Min, salary.Currency)
	case salary.Max > 0:
		return fmt.Sprintf("до %d %s", salary.Max, salary.Currency)
	}
	return ""
}
