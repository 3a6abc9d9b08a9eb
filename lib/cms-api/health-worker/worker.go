package cmshealthworker

import (
	"context"
	"sync"
	"time"

	cmsclient "site-backend/lib/cms-api/client"
	"site-backend/lib/listing"
	baseworker "site-backend/lib/utils/base-worker"
	initchecker "site-backend/lib/utils/init-checker"
	blogapimodels "site-backend/models/api/blog"
)

const firstRunDelay = 10 * time.Second

// Status - результат последней проверки доступности CMS
type Status struct {
	CheckedAt  time.Time `json:"checked_at"`
	Available  bool      `json:"available"`
	TotalBlogs int       `json:"total_blogs"`
	Error      string    `json:"error,omitempty"`
}

var (
	lastMu sync.RWMutex
	last   *Status
)

// LastStatus - false, если проверка ещё не выполнялась
func LastStatus() (Status, bool) {
	lastMu.RLock()
	defer lastMu.RUnlock()
	if last == nil {
		return Status{}, false
	}
	return *last, true
}

func setLastStatus(status Status) {
	lastMu.Lock()
	defer lastMu.Unlock()
	last = &status
}

func StartWorker(ctx context.Context, interval time.Duration) {
	initchecker.CheckInit("cmsclient", cmsclient.Instance)
	i := newInstance(cmsclient.Instance, interval)
	go i.Run(ctx, i.handle)
}

func newInstance(client cmsclient.Provider, interval time.Duration) *impl {
	return &impl{
		BaseImpl: *baseworker.NewInstance("CmsHealthWorker", firstRunDelay, interval),
		pager:    listing.NewPager[blogapimodels.Blog](client.Blogs, 1),
	}
}

type impl struct {
	baseworker.BaseImpl
	pager *listing.Pager[blogapimodels.Blog]
}

func (i *impl) handle(ctx context.Context) {
	i.check(ctx)
}

func (i *impl) check(ctx context.Context) Status {
	logger := i.GetLogger()
	status := Status{CheckedAt: time.Now()}
	state, err := i.pager.Load(ctx, 1)
	if err != nil {
		status.Error = state.Error
		logger.WithError(err).Warn("CMS недоступна")
	} else {
		status.Available = true
		status.TotalBlogs = state.Data.TotalItems
		logger.
			WithField("total_blogs", status.TotalBlogs).
			Info("CMS доступна")
	}
	setLastStatus(status)
	return status
}
