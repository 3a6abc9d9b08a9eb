package showcasehandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	cmsapi "site-backend/lib/cms-api"
	cmsclient "site-backend/lib/cms-api/client"
	"site-backend/lib/result"
	showcaseapimodels "site-backend/models/api/showcase"
)

type cmsStub struct {
	cmsclient.Provider
	partners []showcaseapimodels.Partner
	reviews  []showcaseapimodels.Review
	err      error
}

func (s *cmsStub) Partners(ctx context.Context) ([]showcaseapimodels.Partner, error) {
	return s.partners, s.err
}

func (s *cmsStub) Reviews(ctx context.Context) ([]showcaseapimodels.Review, error) {
	return s.reviews, s.err
}

func TestShowcase(t *testing.T) {
	ctx := context.TODO()

	t.Run(`partners null is empty list check`, func(t *testing.T) {
		res, err := NewInstance(&cmsStub{}).Partners(ctx)
		require.Nil(t, err)
		require.NotNil(t, *res.Data)
		require.Len(t, *res.Data, 0)
	})

	t.Run(`review rating clamped check`, func(t *testing.T) {
		stub := &cmsStub{reviews: []showcaseapimodels.Review{
			{ID: "1", Rating: 7},
			{ID: "2", Rating: -1},
			{ID: "3", Rating: 4.5},
		}}
		res, err := NewInstance(stub).Reviews(ctx)
		require.Nil(t, err)
		list := *res.Data
		require.Equal(t, 5.0, list[0].Rating)
		require.Equal(t, 0.0, list[1].Rating)
		require.Equal(t, 4.5, list[2].Rating)
	})

	t.Run(`transport error check`, func(t *testing.T) {
		res, err := NewInstance(&cmsStub{err: &cmsapi.APIError{Status: 502}}).Reviews(ctx)
		require.NotNil(t, err)
		require.Equal(t, result.ErrorKindTransport, res.ErrorKind)
	})
}
