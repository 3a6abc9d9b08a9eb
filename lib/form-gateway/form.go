package formgateway

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	formsapimodels "site-backend/models/api/forms"
)

const (
	FallbackErrorMessage = "Не удалось отправить форму. Попробуйте ещё раз"
	DefaultDismissAfter  = 5 * time.Second
)

var (
	ErrValidation       = errors.New("форма заполнена некорректно")
	ErrAlreadySubmitted = errors.New("форма уже отправляется")
)

type Payload interface {
	Validate() error
}

// SubmitFunc - одна отправка данных формы во внешний API
type SubmitFunc[P Payload] func(ctx context.Context, payload P) error

type humanError interface {
	HumanMessage() string
}

type options struct {
	dismissAfter time.Duration
	autoDismiss  bool
}

type Option func(*options)

// WithDismissAfter - через сколько скрывать сообщение об успешной отправке
func WithDismissAfter(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.dismissAfter = d
		}
	}
}

// WithoutAutoDismiss - таймер не запускается, задержка только сообщается клиенту
func WithoutAutoDismiss() Option {
	return func(o *options) {
		o.autoDismiss = false
	}
}

// Form - состояние одной формы: поля, флаг отправки, успех и ошибка
type Form[P Payload] struct {
	mu           sync.Mutex
	submit       SubmitFunc[P]
	opts         options
	fields       P
	submitting   bool
	success      bool
	errMsg       string
	dismissTimer *time.Timer
}

func New[P Payload](submit SubmitFunc[P], opts ...Option) *Form[P] {
	o := options{
		dismissAfter: DefaultDismissAfter,
		autoDismiss:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Form[P]{
		submit: submit,
		opts:   o,
	}
}

func (f *Form[P]) SetFields(fields P) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

func (f *Form[P]) Fields() P {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submit - проверка обязательных полей и ровно одна отправка во внешний API.
// При ошибке поля сохраняются, при успехе очищаются
func (f *Form[P]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}
	fields := f.fields
	if err := fields.Validate(); err != nil {
		f.success = false
		f.errMsg = err.Error()
		f.mu.Unlock()
		return errors.Wrap(ErrValidation, err.Error())
	}
	f.submitting = true
	f.success = false
	f.errMsg = ""
	f.stopTimer()
	f.mu.Unlock()

	err := f.submit(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.errMsg = ErrorMessage(err)
		return err
	}
	f.success = true
	var empty P
	f.fields = empty
	if f.opts.autoDismiss {
		f.dismissTimer = time.AfterFunc(f.opts.dismissAfter, f.DismissSuccess)
	}
	return nil
}

// DismissSuccess - скрыть сообщение об успешной отправке
func (f *Form[P]) DismissSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.success = false
	f.stopTimer()
}

// Close - остановка таймера, когда форма больше не нужна
func (f *Form[P]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopTimer()
}

func (f *Form[P]) State() formsapimodels.FormState[P] {
	f.mu.Lock()
	defer f.mu.Unlock()
	state := formsapimodels.FormState[P]{
		Submitting: f.submitting,
		Success:    f.success,
		Error:      f.errMsg,
		Fields:     f.fields,
	}
	if f.success {
		state.DismissAfterMs = f.opts.dismissAfter.Milliseconds()
	}
	return state
}

func (f *Form[P]) stopTimer() {
	if f.dismissTimer != nil {
		f.dismissTimer.Stop()
		f.dismissTimer = nil
	}
}

// ErrorMessage - текст ошибки для пользователя: сообщение API, текст ошибки или общее сообщение
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var hErr humanError
	if errors.As(err, &hErr) {
		if msg := hErr.HumanMessage(); msg != "" {
			return msg
		}
		return FallbackErrorMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackErrorMessage
}

// SubmitOnce - отправка формы в рамках одного запроса к серверу
func SubmitOnce[P Payload](ctx context.Context, fields P, submit SubmitFunc[P], dismissAfter time.Duration) (formsapimodels.FormState[P], error) {
	form := New(submit, WithDismissAfter(dismissAfter), WithoutAutoDismiss())
	form.SetFields(fields)
	err := form.Submit(ctx)
	return form.State(), err
}
