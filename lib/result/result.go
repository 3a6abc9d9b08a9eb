package result

import (
	"context"

	"github.com/pkg/errors"
	cmsapi "site-backend/lib/cms-api"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

type ErrorKind string

const (
	ErrorKindTransport ErrorKind = "transport"
	ErrorKindNotFound  ErrorKind = "not_found"
)

const (
	TransportErrorMessage = "Не удалось загрузить данные. Попробуйте ещё раз"
	NotFoundErrorMessage  = "Запрошенная страница не найдена"
)

// Result - состояние списка или карточки на странице сайта
type Result[T any] struct {
	Status    Status    `json:"status"`
	Data      *T        `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
	BackLink  string    `json:"back_link,omitempty"` // куда вернуться, если запись не найдена
}

func Loading[T any]() Result[T] {
	return Result[T]{Status: StatusLoading}
}

func Success[T any](data T) Result[T] {
	return Result[T]{
		Status: StatusSuccess,
		Data:   &data,
	}
}

// Failure - "не найдено" и ошибка транспорта показываются по-разному
func Failure[T any](err error) Result[T] {
	if cmsapi.IsNotFound(err) {
		return Result[T]{
			Status:    StatusError,
			Error:     NotFoundErrorMessage,
			ErrorKind: ErrorKindNotFound,
		}
	}
	return Result[T]{
		Status:    StatusError,
		Error:     TransportErrorMessage,
		ErrorKind: ErrorKindTransport,
	}
}

func NotFound[T any](backLink string) Result[T] {
	res := Failure[T](cmsapi.ErrNotFound)
	res.BackLink = backLink
	return res
}

func (r Result[T]) IsLoading() bool {
	return r.Status == StatusLoading
}

func (r Result[T]) IsSuccess() bool {
	return r.Status == StatusSuccess
}

func (r Result[T]) IsNotFound() bool {
	return r.Status == StatusError && r.ErrorKind == ErrorKindNotFound
}

// IsCanceled - запрос отменён (например, заменён более новым)
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
