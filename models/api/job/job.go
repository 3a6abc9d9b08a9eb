package jobapimodels

import (
	"site-backend/lib/utils/helpers"
	"site-backend/models"
	apimodels "site-backend/models/api"
)

type SalaryRange struct {
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Job - вакансия во внешнем API (и для списка, и для детальной информации)
type Job struct {
	ID              string           `json:"id"`
	Name            string           `json:"name,omitempty"`
	Title           string           `json:"title,omitempty"`
	Department      string           `json:"department"`
	Location        string           `json:"location"`
	IsRemote        bool             `json:"isRemote"`
	JobType         string           `json:"jobType"`
	ExperienceLevel string           `json:"experienceLevel"`
	Status          models.JobStatus `json:"status"`
	Deadline        string           `json:"deadline,omitempty"`
	Description     string           `json:"description,omitempty"`
	Requirements    string           `json:"requirements,omitempty"`
	Benefits        string           `json:"benefits,omitempty"`
	Urgent          bool             `json:"urgent,omitempty"`
	SalaryRange     *SalaryRange     `json:"salaryRange,omitempty"`
}

// GetTitle - API отдаёт название то в name, то в title
func (j Job) GetTitle() string {
	return helpers.FirstNotEmpty(j.Title, j.Name)
}

type JobView struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Department      string           `json:"department"`
	Location        string           `json:"location"`
	IsRemote        bool             `json:"is_remote"`
	JobType         string           `json:"job_type"`
	ExperienceLevel string           `json:"experience_level"`
	Status          models.JobStatus `json:"status"`
	StatusName      string           `json:"status_name"`
	Deadline        string           `json:"deadline,omitempty"`
	Description     string           `json:"description,omitempty"`
	Requirements    string           `json:"requirements,omitempty"`
	Benefits        string           `json:"benefits,omitempty"`
	Urgent          bool             `json:"urgent"`
	SalaryRange     *SalaryRange     `json:"salary_range,omitempty"`
	CanApply        bool             `json:"can_apply"` // показывать кнопку "Откликнуться" и форму
}

type JobListView = apimodels.PageView[JobView]

func JobConvert(rec Job) JobView {
	return JobView{
		ID:              rec.ID,
		Title:           rec.GetTitle(),
		Department:      rec.Department,
		Location:        rec.Location,
		IsRemote:        rec.IsRemote,
		JobType:         rec.JobType,
		ExperienceLevel: rec.ExperienceLevel,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		Deadline:        rec.Deadline,
		Urgent:          rec.Urgent,
		SalaryRange:     rec.SalaryRange,
		CanApply:        rec.Status.AcceptsApplications(),
	}
}

func JobConvertFull(rec Job) JobView {
	result := JobConvert(rec)
	result.Description = rec.Description
	result.Requirements = rec.Requirements
	result.Benefits = rec.Benefits
	return result
}
