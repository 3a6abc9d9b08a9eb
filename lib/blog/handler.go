package bloghandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	cmsapi "site-backend/lib/cms-api"
	cmsclient "site-backend/lib/cms-api/client"
	contentdir "site-backend/lib/content-dir"
	"site-backend/lib/listing"
	"site-backend/lib/result"
	initchecker "site-backend/lib/utils/init-checker"
	blogapimodels "site-backend/models/api/blog"
)

const (
	BackLink     = "/blog"
	EmptyMessage = "Пока нет ни одной публикации"
)

type Provider interface {
	List(ctx context.Context, page, limit int) (result.Result[blogapimodels.BlogListView], error)
	Get(ctx context.Context, id string) (result.Result[blogapimodels.BlogView], error)
}

var Instance Provider

func NewHandler(windowSize int) {
	initchecker.CheckInit(
		"cmsclient", cmsclient.Instance,
	)
	Instance = NewInstance(cmsclient.Instance, windowSize)
}

func NewInstance(client cmsclient.Provider, windowSize int) Provider {
	if windowSize <= 0 {
		windowSize = listing.DefaultWindowSize
	}
	return &impl{
		client:     client,
		windowSize: windowSize,
	}
}

type impl struct {
	client     cmsclient.Provider
	windowSize int
}

func (i impl) List(ctx context.Context, page, limit int) (result.Result[blogapimodels.BlogListView], error) {
	logger := log.
		WithField("page", page).
		WithField("limit", limit)
	data, err := listing.FetchPage[blogapimodels.Blog](ctx, i.client.Blogs, page, limit)
	if err != nil {
		if listing.IsInvalidParams(err) {
			return result.Result[blogapimodels.BlogListView]{}, err
		}
		logger.WithError(err).Error("ошибка получения списка публикаций")
		return result.Failure[blogapimodels.BlogListView](err), err
	}
	view := listing.ToPageView(data, limit, i.windowSize, blogapimodels.BlogConvert, EmptyMessage)
	return result.Success(view), nil
}

func (i impl) Get(ctx context.Context, id string) (result.Result[blogapimodels.BlogView], error) {
	logger := log.WithField("blog_id", id)
	if id == "" {
		return result.NotFound[blogapimodels.BlogView](BackLink), cmsapi.ErrNotFound
	}
	rec, err := i.client.Blog(ctx, id)
	if err != nil {
		if cmsapi.IsNotFound(err) {
			logger.Info("публикация не найдена")
			return result.NotFound[blogapimodels.BlogView](BackLink), err
		}
		logger.WithError(err).Error("ошибка получения публикации")
		return result.Failure[blogapimodels.BlogView](err), errors.Wrap(err, "ошибка получения публикации")
	}
	view := blogapimodels.BlogConvertFull(*rec, contentdir.Detect(rec.HtmlContent))
	return result.Success(view), nil
}
