package listing

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apimodels "site-backend/models/api"
)

var (
	ErrInvalidPage     = errors.New("номер страницы должен быть больше нуля")
	ErrInvalidPageSize = errors.New("размер страницы должен быть больше нуля")
	ErrPageOutOfRange  = errors.New("страница с таким номером не существует")
)

func IsInvalidParams(err error) bool {
	return errors.Is(err, ErrInvalidPage) || errors.Is(err, ErrInvalidPageSize) || errors.Is(err, ErrPageOutOfRange)
}

// FetchFunc - запрос одной страницы коллекции во внешнем API
type FetchFunc[T any] func(ctx context.Context, page, size int) (apimodels.ListPage[T], error)

// FetchPage - запрос страницы с проверкой параметров и нормализацией ответа.
// Страница не кэшируется и не объединяется с предыдущими
func FetchPage[T any](ctx context.Context, fetch FetchFunc[T], page, size int) (apimodels.ListPage[T], error) {
	if page < 1 {
		return apimodels.ListPage[T]{}, ErrInvalidPage
	}
	if size < 1 {
		return apimodels.ListPage[T]{}, ErrInvalidPageSize
	}
	data, err := fetch(ctx, page, size)
	if err != nil {
		return apimodels.ListPage[T]{}, errors.Wrapf(err, "ошибка получения страницы %d", page)
	}
	data = Normalize(data, page, size)
	if data.CurrentPage > data.TotalPages {
		return apimodels.ListPage[T]{}, errors.Wrapf(ErrPageOutOfRange, "страница %d из %d", page, data.TotalPages)
	}
	return data, nil
}

// Normalize - восстанавливает счётчики, которые API не вернул, и соблюдает ограничения страницы
func Normalize[T any](data apimodels.ListPage[T], page, size int) apimodels.ListPage[T] {
	if data.Items == nil {
		data.Items = []T{}
	}
	if len(data.Items) > size {
		log.
			WithField("page", page).
			WithField("page_size", size).
			WithField("items_count", len(data.Items)).
			Warn("API вернул больше записей, чем размер страницы")
		data.Items = data.Items[:size]
	}
	if data.CurrentPage != 0 && data.CurrentPage != page {
		log.
			WithField("page", page).
			WithField("current_page", data.CurrentPage).
			Warn("API вернул другую страницу")
	}
	data.CurrentPage = page
	if data.TotalItems < len(data.Items) {
		data.TotalItems = len(data.Items)
	}
	if data.TotalPages == 0 {
		data.TotalPages = TotalPages(data.TotalItems, size)
	}
	if data.TotalPages < 1 {
		data.TotalPages = 1
	}
	return data
}

func TotalPages(totalItems, size int) int {
	if size < 1 || totalItems < 1 {
		return 1
	}
	return (totalItems + size - 1) / size
}

// SliceFetcher - постраничная выдача коллекции, которую API отдаёт целиком (например, вакансии)
func SliceFetcher[T any](load func(ctx context.Context) ([]T, error)) FetchFunc[T] {
	return func(ctx context.Context, page, size int) (apimodels.ListPage[T], error) {
		list, err := load(ctx)
		if err != nil {
			return apimodels.ListPage[T]{}, err
		}
		return SlicePage(list, page, size), nil
	}
}

func SlicePage[T any](list []T, page, size int) apimodels.ListPage[T] {
	result := apimodels.ListPage[T]{
		Items:       []T{},
		CurrentPage: page,
		TotalPages:  TotalPages(len(list), size),
		TotalItems:  len(list),
	}
	from := (page - 1) * size
	if from < 0 || from >= len(list) {
		return result
	}
	to := from + size
	if to > len(list) {
		to = len(list)
	}
	result.Items = append(result.Items, list[from:to]...)
	return result
}
