package cmsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	cmsapi "site-backend/lib/cms-api"
	auditstore "site-backend/lib/cms-api/audit-store"
	"site-backend/lib/utils/helpers"
	apimodels "site-backend/models/api"
	blogapimodels "site-backend/models/api/blog"
	formsapimodels "site-backend/models/api/forms"
	jobapimodels "site-backend/models/api/job"
	showcaseapimodels "site-backend/models/api/showcase"
	dbmodels "site-backend/models/db"
)

type Provider interface {
	Blogs(ctx context.Context, page, limit int) (apimodels.ListPage[blogapimodels.Blog], error)
	Blog(ctx context.Context, id string) (*blogapimodels.Blog, error)
	Jobs(ctx context.Context) ([]jobapimodels.Job, error)
	Job(ctx context.Context, id string) (*jobapimodels.Job, error)
	Apply(ctx context.Context, jobID string, payload formsapimodels.ApplicationPayload) error
	Contact(ctx context.Context, payload formsapimodels.ContactPayload) error
	InvestmentInquiry(ctx context.Context, payload formsapimodels.InvestmentInquiryPayload) error
	PartnershipInquiry(ctx context.Context, payload formsapimodels.PartnershipInquiryPayload) error
	Partners(ctx context.Context) ([]showcaseapimodels.Partner, error)
	Reviews(ctx context.Context) ([]showcaseapimodels.Review, error)
}

var Instance Provider

type Config struct {
	Host      string
	Token     string
	Timeout   time.Duration
	WithAudit bool
}

type impl struct {
	host       string
	token      string
	withAudit  bool
	httpClient *http.Client
	auditStore auditstore.Provider
}

// NewProvider - инициализация глобального клиента
func NewProvider(cfg Config, auditStore auditstore.Provider) {
	Instance = NewInstance(cfg, auditStore)
}

// NewInstance - auditStore может быть nil, тогда журнал ошибок не ведётся
func NewInstance(cfg Config, auditStore auditstore.Provider) Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &impl{
		host:       strings.TrimRight(cfg.Host, "/"),
		token:      cfg.Token,
		withAudit:  cfg.WithAudit,
		httpClient: &http.Client{Timeout: timeout},
		auditStore: auditStore,
	}
}

const (
	blogsPath        string = "%s/blogs?page=%v&limit=%v"
	blogPath         string = "%s/blogs/%v"
	jobsPath         string = "%s/jobs"
	jobPath          string = "%s/jobs/%v"
	jobApplyPath     string = "%s/jobs/%v/apply"
	contactPath      string = "%s/contact"
	investmentsPath  string = "%s/investments"
	partnershipsPath string = "%s/partnerships"
	partnersPath     string = "%s/partners"
	reviewsPath      string = "%s/reviews"
)

const (
	serviceName       string = "CMS"
	maxLoggedBodyLen  int    = 2000
	maxAuditedBodyLen int    = 4000
	userAgent         string = "SiteBackend/1.0"
)

func (i impl) Blogs(ctx context.Context, page, limit int) (apimodels.ListPage[blogapimodels.Blog], error) {
	uri := fmt.Sprintf(blogsPath, i.host, page, limit)
	logger := log.
		WithField("page", page).
		WithField("limit", limit).
		WithField("external_request", uri)

	resp := apimodels.ListPage[blogapimodels.Blog]{}
	err := i.sendRequest(ctx, logger, http.MethodGet, uri, nil, &resp)
	if err != nil {
		return apimodels.ListPage[blogapimodels.Blog]{}, err
	}
	return resp, nil
}

func (i impl) Blog(ctx context.Context, id string) (*blogapimodels.Blog, error) {
	uri := fmt.Sprintf(blogPath, i.host, url.PathEscape(id))
	logger := log.
		WithField("blog_id", id).
		WithField("external_request", uri)

	var resp *blogapimodels.Blog
	err := i.sendRequest(ctx, logger, http.MethodGet, uri, nil, &resp)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if resp == nil {
		return nil, cmsapi.ErrNotFound
	}
	return resp, nil
}

func (i impl) Jobs(ctx context.Context) ([]jobapimodels.Job, error) {
	uri := fmt.Sprintf(jobsPath, i.host)
	logger := log.
		WithField("external_request", uri)

	resp := []jobapimodels.Job{}
	err := i.sendRequest(ctx, logger, http.MethodGet, uri, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) Job(ctx context.Context, id string) (*jobapimodels.Job, error) {
	uri := fmt.Sprintf(jobPath, i.host, url.PathEscape(id))
	logger := log.
		WithField("job_id", id).
		WithField("external_request", uri)

	var resp *jobapimodels.Job
	err := i.sendRequest(ctx, logger, http.MethodGet, uri, nil, &resp)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if resp == nil {
		return nil, cmsapi.ErrNotFound
	}
	return resp, nil
}

func (i impl) Apply(ctx context.Context, jobID string, payload formsapimodels.ApplicationPayload) error {
	uri := fmt.Sprintf(jobApplyPath, i.host, url.PathEscape(jobID))
	// резюме в лог не пишем
	logger := log.
		WithField("job_id", jobID).
		WithField("external_request", uri)
	return i.sendJSON(ctx, logger, uri, payload)
}

func (i impl) Contact(ctx context.Context, payload formsapimodels.ContactPayload) error {
	uri := fmt.Sprintf(contactPath, i.host)
	logger := log.
		WithField("external_request", uri)
	return i.sendJSON(ctx, logger, uri, payload)
}

func (i impl) InvestmentInquiry(ctx context.Context, payload formsapimodels.InvestmentInquiryPayload) error {
	uri := fmt.Sprintf(investmentsPath, i.host)
	logger := log.
		WithField("external_request", uri)
	return i.sendJSON(ctx, logger, uri, payload)
}

func (i impl) PartnershipInquiry(ctx context.Context, payload formsapimodels.PartnershipInquiryPayload) error {
	uri := fmt.Sprintf(partnershipsPath, i.host)
	logger := log.
		WithField("external_request", uri)
	return i.sendJSON(ctx, logger, uri, payload)
}

func (i impl) Partners(ctx context.Context) ([]showcaseapimodels.Partner, error) {
	uri := fmt.Sprintf(partnersPath, i.host)
	logger := log.
		WithField("external_request", uri)

	resp := []showcaseapimodels.Partner{}
	err := i.sendRequest(ctx, logger, http.MethodGet, uri, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) Reviews(ctx context.Context) ([]showcaseapimodels.Review, error) {
	uri := fmt.Sprintf(reviewsPath, i.host)
	logger := log.
		WithField("external_request", uri)

	resp := []showcaseapimodels.Review{}
	err := i.sendRequest(ctx, logger, http.MethodGet, uri, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) sendJSON(ctx context.Context, logger *log.Entry, uri string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации запроса")
	}
	return i.sendRequest(ctx, logger, http.MethodPost, uri, body, nil)
}

func (i impl) sendRequest(ctx context.Context, logger *log.Entry, method, uri string, body []byte, resp interface{}) error {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	r, err := http.NewRequestWithContext(ctx, method, uri, reqBody)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса")
	}
	r.Header.Add("Content-Type", "application/json")
	r.Header.Add("Accept", "application/json")
	r.Header.Add("User-Agent", userAgent)
	if i.token != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", i.token))
	}
	if requestID := cmsapi.ExtractAuditData(ctx).RequestID; requestID != "" {
		r.Header.Add("X-Request-ID", requestID)
	}
	if i.withAudit {
		ctx = cmsapi.GetAuditContext(ctx, method, uri)
	}

	response, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в CMS")
		return errors.Wrap(err, "ошибка отправки запроса в CMS")
	}
	defer response.Body.Close()
	// читаем Body только 1 раз
	responseBody, err := io.ReadAll(response.Body)
	logger = logger.
		WithField("response_status_code", response.StatusCode).
		WithField("response_body", helpers.Truncate(string(responseBody), maxLoggedBodyLen))
	if err != nil {
		logger.WithError(err).Error("ошибка чтения ответа CMS")
		return errors.Wrap(err, "ошибка чтения ответа CMS")
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil && len(bytes.TrimSpace(responseBody)) != 0 {
			err = json.Unmarshal(responseBody, resp)
			if err != nil {
				logger.WithError(err).Error("ошибка десериализации ответа")
				return errors.Wrap(err, "ошибка десериализации ответа")
			}
		}
		return nil
	}

	if response.StatusCode == http.StatusNotFound {
		logger.Warn("CMS: запись не найдена")
	} else {
		logger.Error("Некорректный запрос в CMS")
	}
	i.auditError(ctx, string(responseBody), response.StatusCode)
	return &cmsapi.APIError{
		Status:  response.StatusCode,
		Message: parseErrorMessage(responseBody),
	}
}

func (i impl) auditError(ctx context.Context, response string, status int) {
	if i.auditStore == nil {
		return
	}
	ctxData := cmsapi.ExtractAuditData(ctx)
	if !ctxData.WithAudit {
		return
	}
	rec := dbmodels.ExtApiAudit{
		Service:  serviceName,
		Method:   ctxData.Method,
		Uri:      ctxData.Uri,
		Response: helpers.Truncate(response, maxAuditedBodyLen),
		Status:   status,
	}
	if _, err := i.auditStore.Create(rec); err != nil {
		log.WithError(err).Warn("не удалось сохранить запись журнала внешнего API")
	}
}

type errorData struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func parseErrorMessage(body []byte) string {
	data := errorData{}
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	if data.Message != "" {
		return data.Message
	}
	return data.Error
}

func notFoundOr(err error) error {
	var apiErr *cmsapi.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return cmsapi.ErrNotFound
	}
	return err
}
