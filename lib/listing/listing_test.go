package listing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	cmsapi "site-backend/lib/cms-api"
	"site-backend/lib/result"
	apimodels "site-backend/models/api"
)

func blogsFixture(total int) []string {
	list := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		list = append(list, fmt.Sprintf("blog-%d", i))
	}
	return list
}

func TestWindow(t *testing.T) {
	t.Run(`all pages when total fits check`, func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3, 4, 5}, Window(1, 5, 5))
		require.Equal(t, []int{1, 2, 3}, Window(2, 3, 5))
		require.Equal(t, []int{1}, Window(1, 1, 5))
	})

	t.Run(`centered window check`, func(t *testing.T) {
		require.Equal(t, []int{3, 4, 5, 6, 7}, Window(5, 10, 5))
		require.Equal(t, []int{4, 5, 6, 7}, Window(6, 10, 4))
	})

	t.Run(`window clamped at edges check`, func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3, 4, 5}, Window(1, 10, 5))
		require.Equal(t, []int{1, 2, 3, 4, 5}, Window(2, 10, 5))
		require.Equal(t, []int{6, 7, 8, 9, 10}, Window(10, 10, 5))
		require.Equal(t, []int{6, 7, 8, 9, 10}, Window(9, 10, 5))
	})

	t.Run(`window never out of range check`, func(t *testing.T) {
		for total := 1; total <= 30; total++ {
			for size := 1; size <= 9; size++ {
				for current := 1; current <= total; current++ {
					pages := Window(current, total, size)
					require.NotEmpty(t, pages)
					require.Contains(t, pages, current)
					for _, p := range pages {
						require.GreaterOrEqual(t, p, 1)
						require.LessOrEqual(t, p, total)
					}
				}
			}
		}
	})

	t.Run(`no pagination for single page check`, func(t *testing.T) {
		require.False(t, ShowPagination(1))
		require.False(t, ShowPagination(0))
		require.True(t, ShowPagination(2))
	})
}

func TestFetchPage(t *testing.T) {
	ctx := context.TODO()
	all := blogsFixture(42)
	fetch := SliceFetcher(func(ctx context.Context) ([]string, error) {
		return all, nil
	})

	t.Run(`page contract for every page check`, func(t *testing.T) {
		for page := 1; page <= 5; page++ {
			data, err := FetchPage(ctx, fetch, page, 9)
			require.Nil(t, err)
			require.Equal(t, page, data.CurrentPage)
			require.LessOrEqual(t, len(data.Items), 9)
			require.Equal(t, 5, data.TotalPages)
			require.Equal(t, 42, data.TotalItems)
		}
		last, err := FetchPage(ctx, fetch, 5, 9)
		require.Nil(t, err)
		require.Equal(t, []string{"blog-37", "blog-38", "blog-39", "blog-40", "blog-41", "blog-42"}, last.Items)
	})

	t.Run(`invalid params make no request check`, func(t *testing.T) {
		called := false
		spy := func(ctx context.Context, page, size int) (apimodels.ListPage[string], error) {
			called = true
			return apimodels.ListPage[string]{}, nil
		}
		_, err := FetchPage[string](ctx, spy, 0, 9)
		require.True(t, errors.Is(err, ErrInvalidPage))
		_, err = FetchPage[string](ctx, spy, 1, 0)
		require.True(t, errors.Is(err, ErrInvalidPageSize))
		require.False(t, called)
	})

	t.Run(`normalize incomplete response check`, func(t *testing.T) {
		raw := func(ctx context.Context, page, size int) (apimodels.ListPage[string], error) {
			return apimodels.ListPage[string]{
				Items:      []string{"a", "b", "c", "d"},
				TotalItems: 10,
			}, nil
		}
		data, err := FetchPage[string](ctx, raw, 2, 3)
		require.Nil(t, err)
		require.Equal(t, 2, data.CurrentPage)
		require.Equal(t, 4, data.TotalPages)
		require.Equal(t, []string{"a", "b", "c"}, data.Items)
	})

	t.Run(`page beyond last page check`, func(t *testing.T) {
		small := SliceFetcher(func(ctx context.Context) ([]string, error) {
			return blogsFixture(3), nil
		})
		_, err := FetchPage(ctx, small, 7, 10)
		require.True(t, errors.Is(err, ErrPageOutOfRange))
		require.True(t, IsInvalidParams(err))

		empty := SliceFetcher(func(ctx context.Context) ([]string, error) {
			return nil, nil
		})
		_, err = FetchPage(ctx, empty, 2, 10)
		require.True(t, errors.Is(err, ErrPageOutOfRange))
	})

	t.Run(`requested page wins over echoed page check`, func(t *testing.T) {
		echo := func(ctx context.Context, page, size int) (apimodels.ListPage[string], error) {
			return apimodels.ListPage[string]{
				Items:       []string{"a"},
				CurrentPage: 1,
				TotalItems:  30,
			}, nil
		}
		data, err := FetchPage[string](ctx, echo, 3, 10)
		require.Nil(t, err)
		require.Equal(t, 3, data.CurrentPage)
		require.Equal(t, 3, data.TotalPages)
	})

	t.Run(`empty collection check`, func(t *testing.T) {
		empty := SliceFetcher(func(ctx context.Context) ([]string, error) {
			return nil, nil
		})
		data, err := FetchPage(ctx, empty, 1, 9)
		require.Nil(t, err)
		require.NotNil(t, data.Items)
		require.Len(t, data.Items, 0)
		require.Equal(t, 1, data.TotalPages)

		view := ToPageView(data, 9, 5, func(s string) string { return s }, "")
		require.True(t, view.Empty)
		require.Equal(t, DefaultEmptyMessage, view.EmptyMessage)
		require.False(t, view.ShowPagination)
	})

	t.Run(`fetch error is wrapped check`, func(t *testing.T) {
		failing := SliceFetcher(func(ctx context.Context) ([]string, error) {
			return nil, &cmsapi.APIError{Status: 502}
		})
		_, err := FetchPage(ctx, failing, 1, 9)
		var apiErr *cmsapi.APIError
		require.True(t, errors.As(err, &apiErr))
	})
}

func TestToPageView(t *testing.T) {
	t.Run(`first page of 42 blogs check`, func(t *testing.T) {
		data := apimodels.ListPage[string]{
			Items:       blogsFixture(9),
			CurrentPage: 1,
			TotalPages:  5,
			TotalItems:  42,
		}
		view := ToPageView(data, 9, 5, func(s string) string { return "card:" + s }, "")
		require.Len(t, view.Items, 9)
		require.Equal(t, "card:blog-1", view.Items[0])
		require.Equal(t, []int{1, 2, 3, 4, 5}, view.PageWindow)
		require.Equal(t, 1, view.CurrentPage)
		require.True(t, view.ShowPagination)
		require.False(t, view.Empty)
	})
}

func TestPager(t *testing.T) {
	ctx := context.TODO()

	t.Run(`load and retry check`, func(t *testing.T) {
		calls := 0
		fail := true
		fetch := func(ctx context.Context, page, size int) (apimodels.ListPage[string], error) {
			calls++
			if fail {
				return apimodels.ListPage[string]{}, &cmsapi.APIError{Status: 503}
			}
			return SlicePage(blogsFixture(20), page, size), nil
		}
		pager := NewPager[string](fetch, 9)
		require.True(t, pager.State().IsLoading())

		state, err := pager.Load(ctx, 2)
		require.NotNil(t, err)
		require.Equal(t, result.StatusError, state.Status)
		require.Equal(t, result.ErrorKindTransport, state.ErrorKind)
		require.Equal(t, []int{}, pager.Window(5))

		fail = false
		state, err = pager.Retry(ctx)
		require.Nil(t, err)
		require.True(t, state.IsSuccess())
		require.Equal(t, 2, state.Data.CurrentPage)
		require.Equal(t, 2, pager.Page())
		require.Equal(t, 2, calls)
		require.Equal(t, []int{1, 2, 3}, pager.Window(5))
	})

	t.Run(`stale response is discarded check`, func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		fetch := func(ctx context.Context, page, size int) (apimodels.ListPage[string], error) {
			if page == 1 {
				close(started)
				<-release
				return SlicePage([]string{"stale"}, 1, size), nil
			}
			return SlicePage([]string{"a", "b", "fresh"}, page, 2), nil
		}
		pager := NewPager[string](fetch, 2)

		type loadRes struct {
			state result.Result[apimodels.ListPage[string]]
			err   error
		}
		first := make(chan loadRes, 1)
		go func() {
			state, err := pager.Load(ctx, 1)
			first <- loadRes{state: state, err: err}
		}()
		<-started

		state, err := pager.Load(ctx, 2)
		require.Nil(t, err)
		require.Equal(t, []string{"fresh"}, state.Data.Items)

		close(release)
		select {
		case res := <-first:
			require.True(t, errors.Is(res.err, ErrSuperseded))
		case <-time.After(time.Second):
			t.Fatal("first load did not finish")
		}
		require.Equal(t, 2, pager.Page())
		require.Equal(t, []string{"fresh"}, pager.State().Data.Items)
	})

	t.Run(`superseded load is canceled check`, func(t *testing.T) {
		started := make(chan struct{})
		fetch := func(ctx context.Context, page, size int) (apimodels.ListPage[string], error) {
			if page == 1 {
				close(started)
				<-ctx.Done()
				return apimodels.ListPage[string]{}, ctx.Err()
			}
			return apimodels.ListPage[string]{Items: []string{"x"}, TotalItems: 6}, nil
		}
		pager := NewPager[string](fetch, 5)
		first := make(chan error, 1)
		go func() {
			_, err := pager.Load(ctx, 1)
			first <- err
		}()
		<-started
		_, err := pager.Load(ctx, 2)
		require.Nil(t, err)
		select {
		case err := <-first:
			require.True(t, errors.Is(err, ErrSuperseded))
		case <-time.After(time.Second):
			t.Fatal("first load was not canceled")
		}
	})
}
