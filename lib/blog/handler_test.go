package bloghandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	cmsapi "site-backend/lib/cms-api"
	cmsclient "site-backend/lib/cms-api/client"
	"site-backend/lib/listing"
	"site-backend/lib/result"
	"site-backend/models"
	apimodels "site-backend/models/api"
	blogapimodels "site-backend/models/api/blog"
)

type cmsStub struct {
	cmsclient.Provider
	blogsCalls int
	blogs      func(page, limit int) (apimodels.ListPage[blogapimodels.Blog], error)
	blog       func(id string) (*blogapimodels.Blog, error)
}

func (s *cmsStub) Blogs(ctx context.Context, page, limit int) (apimodels.ListPage[blogapimodels.Blog], error) {
	s.blogsCalls++
	return s.blogs(page, limit)
}

func (s *cmsStub) Blog(ctx context.Context, id string) (*blogapimodels.Blog, error) {
	return s.blog(id)
}

func blogsFixture(total int) []blogapimodels.Blog {
	list := make([]blogapimodels.Blog, 0, total)
	for i := 1; i <= total; i++ {
		list = append(list, blogapimodels.Blog{ID: string(rune('a' + i%26)), Title: "Post"})
	}
	return list
}

func TestList(t *testing.T) {
	ctx := context.TODO()
	all := blogsFixture(42)
	stub := &cmsStub{
		blogs: func(page, limit int) (apimodels.ListPage[blogapimodels.Blog], error) {
			return listing.SlicePage(all, page, limit), nil
		},
	}
	handler := NewInstance(stub, 5)

	t.Run(`first page of 42 check`, func(t *testing.T) {
		res, err := handler.List(ctx, 1, 9)
		require.Nil(t, err)
		require.True(t, res.IsSuccess())
		require.Len(t, res.Data.Items, 9)
		require.Equal(t, 5, res.Data.TotalPages)
		require.Equal(t, []int{1, 2, 3, 4, 5}, res.Data.PageWindow)
		require.True(t, res.Data.ShowPagination)
		require.Equal(t, models.ContentDirectionLTR, res.Data.Items[0].Style.Direction)
		require.Empty(t, res.Data.Items[0].HtmlContent)
	})

	t.Run(`last page check`, func(t *testing.T) {
		res, err := handler.List(ctx, 5, 9)
		require.Nil(t, err)
		require.Len(t, res.Data.Items, 6)
		require.Equal(t, 5, res.Data.CurrentPage)
	})

	t.Run(`invalid page check`, func(t *testing.T) {
		before := stub.blogsCalls
		_, err := handler.List(ctx, 0, 9)
		require.True(t, listing.IsInvalidParams(err))
		require.Equal(t, before, stub.blogsCalls)
	})

	t.Run(`empty collection check`, func(t *testing.T) {
		empty := NewInstance(&cmsStub{
			blogs: func(page, limit int) (apimodels.ListPage[blogapimodels.Blog], error) {
				return apimodels.ListPage[blogapimodels.Blog]{}, nil
			},
		}, 5)
		res, err := empty.List(ctx, 1, 9)
		require.Nil(t, err)
		require.True(t, res.Data.Empty)
		require.Equal(t, EmptyMessage, res.Data.EmptyMessage)
		require.False(t, res.Data.ShowPagination)
	})

	t.Run(`transport error check`, func(t *testing.T) {
		failing := NewInstance(&cmsStub{
			blogs: func(page, limit int) (apimodels.ListPage[blogapimodels.Blog], error) {
				return apimodels.ListPage[blogapimodels.Blog]{}, errors.New("connection refused")
			},
		}, 5)
		res, err := failing.List(ctx, 1, 9)
		require.NotNil(t, err)
		require.Equal(t, result.StatusError, res.Status)
		require.Equal(t, result.ErrorKindTransport, res.ErrorKind)
		require.Nil(t, res.Data)
	})
}

func TestGet(t *testing.T) {
	ctx := context.TODO()
	stub := &cmsStub{
		blog: func(id string) (*blogapimodels.Blog, error) {
			switch id {
			case "rtl":
				return &blogapimodels.Blog{ID: id, HtmlContent: "<p>مرحبا</p>"}, nil
			case "ltr":
				return &blogapimodels.Blog{ID: id, HtmlContent: "<p>Hello</p>"}, nil
			case "down":
				return nil, &cmsapi.APIError{Status: 503}
			}
			return nil, cmsapi.ErrNotFound
		},
	}
	handler := NewInstance(stub, 5)

	t.Run(`rtl content style check`, func(t *testing.T) {
		res, err := handler.Get(ctx, "rtl")
		require.Nil(t, err)
		require.Equal(t, models.ContentDirectionRTL, res.Data.Style.Direction)
		require.Equal(t, "right", res.Data.Style.TextAlign)
		require.Equal(t, "<p>مرحبا</p>", res.Data.HtmlContent)
	})

	t.Run(`ltr content style check`, func(t *testing.T) {
		res, err := handler.Get(ctx, "ltr")
		require.Nil(t, err)
		require.Equal(t, "left", res.Data.Style.TextAlign)
	})

	t.Run(`not found check`, func(t *testing.T) {
		res, err := handler.Get(ctx, "missing")
		require.True(t, cmsapi.IsNotFound(err))
		require.True(t, res.IsNotFound())
		require.Equal(t, BackLink, res.BackLink)
		require.Equal(t, result.NotFoundErrorMessage, res.Error)
	})

	t.Run(`transport error differs from not found check`, func(t *testing.T) {
		res, err := handler.Get(ctx, "down")
		require.NotNil(t, err)
		require.False(t, res.IsNotFound())
		require.Equal(t, result.ErrorKindTransport, res.ErrorKind)
		require.Equal(t, result.TransportErrorMessage, res.Error)
	})
}
