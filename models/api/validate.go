package apimodels

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateStruct - проверка обязательных полей по тегам `validate`. Возвращает первую ошибку в человекочитаемом виде
func ValidateStruct(v interface{}) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return errors.Wrap(err, "ошибка проверки данных")
	}
	fe := vErrs[0]
	switch fe.Tag() {
	case "required":
		return errors.Errorf("не заполнено обязательное поле: %s", fe.Field())
	case "email":
		return errors.Errorf("некорректный адрес почты: %s", fe.Field())
	case "url":
		return errors.Errorf("некорректная ссылка: %s", fe.Field())
	case "max":
		return errors.Errorf("превышена допустимая длина поля: %s", fe.Field())
	default:
		return errors.Errorf("некорректное значение поля: %s", fe.Field())
	}
}
