package cmsapi

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("запись не найдена")

// APIError - внешний API ответил статусом вне 2xx
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("внешний API вернул статус %d", e.Status)
	}
	return fmt.Sprintf("внешний API вернул статус %d: %s", e.Status, e.Message)
}

// HumanMessage - сообщение от API, которое можно показать пользователю
func (e *APIError) HumanMessage() string {
	return e.Message
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
