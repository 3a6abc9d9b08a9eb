package models

import "github.com/pkg/errors"

type JobStatus string

const (
	JobStatusOpened JobStatus = "opened"
	JobStatusClosed JobStatus = "closed"
	JobStatusFilled JobStatus = "filled"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusOpened: "Открыта",
	JobStatusClosed: "Закрыта",
	JobStatusFilled: "Закрыта (позиция занята)",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s JobStatus) Validate() error {
	if _, exist := jobStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус вакансии: %v", s)
	}
	return nil
}

// AcceptsApplications - форма отклика показывается только для открытых вакансий
func (s JobStatus) AcceptsApplications() bool {
	return s == JobStatusOpened
}
