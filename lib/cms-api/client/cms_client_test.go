package cmsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	cmsapi "site-backend/lib/cms-api"
	formsapimodels "site-backend/models/api/forms"
	dbmodels "site-backend/models/db"
)

type auditStub struct {
	recs []dbmodels.ExtApiAudit
}

func (a *auditStub) Create(rec dbmodels.ExtApiAudit) (string, error) {
	a.recs = append(a.recs, rec)
	return "id", nil
}

func (a *auditStub) List(filter dbmodels.ExtApiAuditFilter) ([]dbmodels.ExtApiAudit, int64, error) {
	return a.recs, int64(len(a.recs)), nil
}

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/blogs", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "9", r.URL.Query().Get("limit"))
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"items":[{"id":"b1","title":"First","author":"Ann","publishAt":"2024-01-02"}],"currentPage":2,"totalPages":5,"totalItems":42}`))
	})
	mux.HandleFunc("/blogs/known", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"known","title":"Known","htmlContent":"<p>hi</p>","tags":["go"]}`))
	})
	mux.HandleFunc("/blogs/null", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})
	mux.HandleFunc("/jobs", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"j1","name":"Backend","status":"opened"},{"id":"j2","title":"Designer","status":"closed"}]`))
	})
	mux.HandleFunc("/jobs/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database is down"}`))
	})
	mux.HandleFunc("/jobs/j1/apply", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		body, err := io.ReadAll(r.Body)
		require.Nil(t, err)
		payload := formsapimodels.ApplicationPayload{}
		require.Nil(t, json.Unmarshal(body, &payload))
		require.Equal(t, "Ann", payload.Name)
		require.Equal(t, "data:application/pdf;base64,JVBERi0=", payload.Resume)
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"email is blocked"}`))
	})
	return httptest.NewServer(mux)
}

func TestCmsClient(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	audit := &auditStub{}
	client := NewInstance(Config{Host: srv.URL + "/", Token: "secret", WithAudit: true}, audit)
	ctx := context.TODO()

	t.Run(`Blogs page check`, func(t *testing.T) {
		page, err := client.Blogs(ctx, 2, 9)
		require.Nil(t, err)
		require.Len(t, page.Items, 1)
		require.Equal(t, 2, page.CurrentPage)
		require.Equal(t, 5, page.TotalPages)
		require.Equal(t, 42, page.TotalItems)
		require.Equal(t, "Ann", page.Items[0].Author)
	})

	t.Run(`Blog found check`, func(t *testing.T) {
		rec, err := client.Blog(ctx, "known")
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "<p>hi</p>", rec.HtmlContent)
		require.Equal(t, []string{"go"}, rec.Tags)
	})

	t.Run(`Blog null is not found check`, func(t *testing.T) {
		rec, err := client.Blog(ctx, "null")
		require.Nil(t, rec)
		require.True(t, cmsapi.IsNotFound(err))
	})

	t.Run(`Blog 404 is not found check`, func(t *testing.T) {
		rec, err := client.Blog(ctx, "missing")
		require.Nil(t, rec)
		require.True(t, cmsapi.IsNotFound(err))
	})

	t.Run(`Jobs name or title check`, func(t *testing.T) {
		list, err := client.Jobs(ctx)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Backend", list[0].GetTitle())
		require.Equal(t, "Designer", list[1].GetTitle())
	})

	t.Run(`Job transport error check`, func(t *testing.T) {
		rec, err := client.Job(ctx, "broken")
		require.Nil(t, rec)
		require.False(t, cmsapi.IsNotFound(err))
		var apiErr *cmsapi.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusInternalServerError, apiErr.Status)
		require.Equal(t, "database is down", apiErr.HumanMessage())
	})

	t.Run(`Apply check`, func(t *testing.T) {
		err := client.Apply(ctx, "j1", formsapimodels.ApplicationPayload{
			Name:   "Ann",
			Email:  "ann@example.com",
			Phone:  "+100",
			Resume: "data:application/pdf;base64,JVBERi0=",
		})
		require.Nil(t, err)
	})

	t.Run(`Contact error is audited check`, func(t *testing.T) {
		before := len(audit.recs)
		err := client.Contact(ctx, formsapimodels.ContactPayload{Name: "Ann", Email: "ann@example.com", Message: "hi"})
		var apiErr *cmsapi.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "email is blocked", apiErr.Message)
		require.Len(t, audit.recs, before+1)
		last := audit.recs[len(audit.recs)-1]
		require.Equal(t, "CMS", last.Service)
		require.Equal(t, http.MethodPost, last.Method)
		require.Equal(t, srv.URL+"/contact", last.Uri)
		require.Equal(t, http.StatusUnprocessableEntity, last.Status)
	})
}
