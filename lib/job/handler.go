package jobhandler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	cmsapi "site-backend/lib/cms-api"
	cmsclient "site-backend/lib/cms-api/client"
	filestorage "site-backend/lib/file-storage"
	formgateway "site-backend/lib/form-gateway"
	"site-backend/lib/listing"
	"site-backend/lib/result"
	"site-backend/lib/resume"
	initchecker "site-backend/lib/utils/init-checker"
	"site-backend/lib/utils/lock"
	formsapimodels "site-backend/models/api/forms"
	jobapimodels "site-backend/models/api/job"
)

const (
	BackLink           = "/careers"
	EmptyMessage       = "Сейчас нет открытых вакансий"
	JobNotFoundMessage = "Вакансия не найдена"
	ApplicationsClosed = "Вакансия больше не принимает отклики"
	DuplicateMessage   = "Отклик уже отправляется, дождитесь ответа"
)

var ErrApplicationsClosed = errors.New("вакансия не принимает отклики")

type Provider interface {
	List(ctx context.Context, page, limit int) (result.Result[jobapimodels.JobListView], error)
	Get(ctx context.Context, id string) (result.Result[jobapimodels.JobView], error)
	Apply(ctx context.Context, id string, payload formsapimodels.ApplicationPayload, file *resume.File) (formsapimodels.FormState[formsapimodels.ApplicationPayload], error)
	OpenJobs(ctx context.Context) ([]jobapimodels.JobView, error)
}

var Instance Provider

type Options struct {
	WindowSize    int
	DismissAfter  time.Duration
	MaxResumeSize int64
}

func NewHandler(opts Options) {
	initchecker.CheckInit(
		"cmsclient", cmsclient.Instance,
	)
	Instance = NewInstance(cmsclient.Instance, filestorage.Instance, opts)
}

// NewInstance - storage может быть nil, тогда резюме не архивируются
func NewInstance(client cmsclient.Provider, storage filestorage.Provider, opts Options) Provider {
	if opts.WindowSize <= 0 {
		opts.WindowSize = listing.DefaultWindowSize
	}
	if opts.DismissAfter <= 0 {
		opts.DismissAfter = formgateway.DefaultDismissAfter
	}
	if opts.MaxResumeSize <= 0 {
		opts.MaxResumeSize = resume.DefaultMaxSize
	}
	return &impl{
		client:  client,
		storage: storage,
		opts:    opts,
	}
}

type impl struct {
	client  cmsclient.Provider
	storage filestorage.Provider
	opts    Options
}

func (i impl) List(ctx context.Context, page, limit int) (result.Result[jobapimodels.JobListView], error) {
	logger := log.
		WithField("page", page).
		WithField("limit", limit)
	fetch := listing.SliceFetcher[jobapimodels.Job](i.client.Jobs)
	data, err := listing.FetchPage(ctx, fetch, page, limit)
	if err != nil {
		if listing.IsInvalidParams(err) {
			return result.Result[jobapimodels.JobListView]{}, err
		}
		logger.WithError(err).Error("ошибка получения списка вакансий")
		return result.Failure[jobapimodels.JobListView](err), err
	}
	view := listing.ToPageView(data, limit, i.opts.WindowSize, jobapimodels.JobConvert, EmptyMessage)
	return result.Success(view), nil
}

func (i impl) Get(ctx context.Context, id string) (result.Result[jobapimodels.JobView], error) {
	logger := log.WithField("job_id", id)
	rec, err := i.getJob(ctx, id)
	if err != nil {
		if cmsapi.IsNotFound(err) {
			logger.Info("вакансия не найдена")
			return result.NotFound[jobapimodels.JobView](BackLink), err
		}
		logger.WithError(err).Error("ошибка получения вакансии")
		return result.Failure[jobapimodels.JobView](err), err
	}
	return result.Success(jobapimodels.JobConvertFull(*rec)), nil
}

// Apply - отклик на вакансию. Закрытая или заполненная вакансия отклик не принимает,
// отправка во внешний API в этом случае не выполняется
func (i impl) Apply(ctx context.Context, id string, payload formsapimodels.ApplicationPayload, file *resume.File) (formsapimodels.FormState[formsapimodels.ApplicationPayload], error) {
	logger := log.WithField("job_id", id)
	state := formsapimodels.FormState[formsapimodels.ApplicationPayload]{Fields: payload}

	if file != nil {
		payload.Resume = file.DataURL()
	} else if payload.Resume != "" {
		decoded, err := resume.DecodeDataURL(payload.Resume, i.opts.MaxResumeSize)
		if err != nil {
			return failedState(state, err.Error()), err
		}
		file = decoded
	}
	if err := payload.Validate(); err != nil {
		return failedState(state, err.Error()), errors.Wrap(formgateway.ErrValidation, err.Error())
	}

	job, err := i.getJob(ctx, id)
	if err != nil {
		if cmsapi.IsNotFound(err) {
			return failedState(state, JobNotFoundMessage), err
		}
		logger.WithError(err).Error("ошибка получения вакансии")
		return failedState(state, formgateway.ErrorMessage(err)), err
	}
	if !job.Status.AcceptsApplications() {
		logger.
			WithField("job_status", job.Status).
			Info("отклик на закрытую вакансию отклонён")
		return failedState(state, ApplicationsClosed), ErrApplicationsClosed
	}

	// повторный отклик с той же почтой, пока первый ещё отправляется, отклоняем
	var submitted formsapimodels.FormState[formsapimodels.ApplicationPayload]
	lockKey := fmt.Sprintf("apply:%s:%s", id, strings.ToLower(payload.Email))
	locked, err := lock.WithDelay(ctx, lockKey, 0, func() error {
		var submitErr error
		submitted, submitErr = formgateway.SubmitOnce(ctx, payload, func(ctx context.Context, p formsapimodels.ApplicationPayload) error {
			return i.client.Apply(ctx, id, p)
		}, i.opts.DismissAfter)
		return submitErr
	})
	if !locked {
		if err == nil {
			err = formgateway.ErrAlreadySubmitted
		}
		logger.WithError(err).Warn("отклик уже отправляется")
		state.Submitting = true
		return failedState(state, DuplicateMessage), err
	}
	submitted.Fields.Resume = ""
	if err != nil {
		logger.WithError(err).Error("ошибка отправки отклика")
		return submitted, err
	}
	logger.Info("отклик на вакансию отправлен")
	if file != nil {
		i.archiveResume(ctx, logger, id, file)
	}
	return submitted, nil
}

// OpenJobs - вакансии, которые принимают отклики
func (i impl) OpenJobs(ctx context.Context) ([]jobapimodels.JobView, error) {
	list, err := i.client.Jobs(ctx)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка вакансий")
		return nil, err
	}
	views := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		if !rec.Status.AcceptsApplications() {
			continue
		}
		views = append(views, jobapimodels.JobConvertFull(rec))
	}
	return views, nil
}

func (i impl) getJob(ctx context.Context, id string) (*jobapimodels.Job, error) {
	if id == "" {
		return nil, cmsapi.ErrNotFound
	}
	return i.client.Job(ctx, id)
}

func (i impl) archiveResume(ctx context.Context, logger *log.Entry, jobID string, file *resume.File) {
	if i.storage == nil {
		return
	}
	objectName, err := i.storage.UploadResume(ctx, jobID, file.FileName(), file.ContentType, file.Body)
	if err != nil {
		logger.WithError(err).Warn("не удалось сохранить резюме в архив")
		return
	}
	logger.
		WithField("object_name", objectName).
		Info("резюме сохранено в архив")
}

func failedState(state formsapimodels.FormState[formsapimodels.ApplicationPayload], msg string) formsapimodels.FormState[formsapimodels.ApplicationPayload] {
	state.Error = msg
	state.Fields.Resume = ""
	return state
}
