package contacthandler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	cmsapi "site-backend/lib/cms-api"
	cmsclient "site-backend/lib/cms-api/client"
	formgateway "site-backend/lib/form-gateway"
	formsapimodels "site-backend/models/api/forms"
)

type cmsStub struct {
	cmsclient.Provider
	err   error
	calls int
}

func (s *cmsStub) Contact(ctx context.Context, payload formsapimodels.ContactPayload) error {
	s.calls++
	return s.err
}

type mailerStub struct {
	subjects []string
	messages []string
	err      error
}

func (m *mailerStub) SendEMail(from, to, message, subject string) error {
	m.subjects = append(m.subjects, subject)
	m.messages = append(m.messages, message)
	return m.err
}

func (m *mailerStub) Configured() bool {
	return true
}

func contactFixture() formsapimodels.ContactPayload {
	return formsapimodels.ContactPayload{
		Name:    "Ann",
		Email:   "ann@example.com",
		Phone:   "+100",
		Subject: "Pricing",
		Message: "Need a quote",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.TODO()
	notify := Notify{From: "site@example.com", To: "sales@example.com"}

	t.Run(`success with notification check`, func(t *testing.T) {
		cms := &cmsStub{}
		mailer := &mailerStub{}
		handler := NewInstance(cms, mailer, 5*time.Second, notify)
		state, err := handler.Submit(ctx, contactFixture())
		require.Nil(t, err)
		require.True(t, state.Success)
		require.Equal(t, formsapimodels.ContactPayload{}, state.Fields)
		require.Equal(t, int64(5000), state.DismissAfterMs)
		require.Equal(t, 1, cms.calls)
		require.Equal(t, []string{"Новое обращение: Pricing"}, mailer.subjects)
		require.Contains(t, mailer.messages[0], "Почта: ann@example.com")
	})

	t.Run(`notification failure is not fatal check`, func(t *testing.T) {
		handler := NewInstance(&cmsStub{}, &mailerStub{err: errors.New("smtp down")}, time.Second, notify)
		state, err := handler.Submit(ctx, contactFixture())
		require.Nil(t, err)
		require.True(t, state.Success)
	})

	t.Run(`api failure keeps fields check`, func(t *testing.T) {
		mailer := &mailerStub{}
		handler := NewInstance(&cmsStub{err: &cmsapi.APIError{Status: 500}}, mailer, time.Second, notify)
		state, err := handler.Submit(ctx, contactFixture())
		require.NotNil(t, err)
		require.Equal(t, formgateway.FallbackErrorMessage, state.Error)
		require.Equal(t, contactFixture(), state.Fields)
		require.Len(t, mailer.subjects, 0)
	})

	t.Run(`validation makes no request check`, func(t *testing.T) {
		cms := &cmsStub{}
		handler := NewInstance(cms, nil, time.Second, notify)
		payload := contactFixture()
		payload.Message = ""
		_, err := handler.Submit(ctx, payload)
		require.True(t, errors.Is(err, formgateway.ErrValidation))
		require.Equal(t, 0, cms.calls)
	})
}
