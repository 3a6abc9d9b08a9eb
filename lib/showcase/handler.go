package showcasehandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	cmsclient "site-backend/lib/cms-api/client"
	"site-backend/lib/result"
	initchecker "site-backend/lib/utils/init-checker"
	showcaseapimodels "site-backend/models/api/showcase"
)

const maxRating = 5

type Provider interface {
	Partners(ctx context.Context) (result.Result[[]showcaseapimodels.Partner], error)
	Reviews(ctx context.Context) (result.Result[[]showcaseapimodels.Review], error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"cmsclient", cmsclient.Instance,
	)
	Instance = NewInstance(cmsclient.Instance)
}

func NewInstance(client cmsclient.Provider) Provider {
	return &impl{
		client: client,
	}
}

type impl struct {
	client cmsclient.Provider
}

func (i impl) Partners(ctx context.Context) (result.Result[[]showcaseapimodels.Partner], error) {
	list, err := i.client.Partners(ctx)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка партнёров")
		return result.Failure[[]showcaseapimodels.Partner](err), err
	}
	if list == nil {
		list = []showcaseapimodels.Partner{}
	}
	return result.Success(list), nil
}

func (i impl) Reviews(ctx context.Context) (result.Result[[]showcaseapimodels.Review], error) {
	list, err := i.client.Reviews(ctx)
	if err != nil {
		log.WithError(err).Error("ошибка получения отзывов")
		return result.Failure[[]showcaseapimodels.Review](err), err
	}
	if list == nil {
		list = []showcaseapimodels.Review{}
	}
	for idx := range list {
		switch {
		case list[idx].Rating < 0:
			list[idx].Rating = 0
		case list[idx].Rating > maxRating:
			list[idx].Rating = maxRating
		}
	}
	return result.Success(list), nil
}
