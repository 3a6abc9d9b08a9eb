package listing

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"site-backend/lib/result"
	apimodels "site-backend/models/api"
)

var ErrSuperseded = errors.New("запрос страницы заменён более новым")

// Pager - состояние одного списка на странице: текущая страница и результат последней загрузки.
// Каждая загрузка получает порядковый номер, предыдущая загрузка отменяется, а её ответ отбрасывается
type Pager[T any] struct {
	mu     sync.Mutex
	fetch  FetchFunc[T]
	size   int
	page   int
	seq    uint64
	cancel context.CancelFunc
	state  result.Result[apimodels.ListPage[T]]
}

func NewPager[T any](fetch FetchFunc[T], size int) *Pager[T] {
	return &Pager[T]{
		fetch: fetch,
		size:  size,
		page:  1,
		state: result.Loading[apimodels.ListPage[T]](),
	}
}

// Load - загрузка страницы. Данные заменяют предыдущие целиком
func (p *Pager[T]) Load(ctx context.Context, page int) (result.Result[apimodels.ListPage[T]], error) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	if p.cancel != nil {
		p.cancel()
	}
	rCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.page = page
	p.state = result.Loading[apimodels.ListPage[T]]()
	p.mu.Unlock()

	data, err := FetchPage(rCtx, p.fetch, page, p.size)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		cancel()
		return p.state, ErrSuperseded
	}
	cancel()
	p.cancel = nil
	if err != nil {
		p.state = result.Failure[apimodels.ListPage[T]](err)
		return p.state, err
	}
	p.state = result.Success(data)
	return p.state, nil
}

// Retry - повтор последней загрузки с теми же параметрами
func (p *Pager[T]) Retry(ctx context.Context) (result.Result[apimodels.ListPage[T]], error) {
	return p.Load(ctx, p.Page())
}

func (p *Pager[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

func (p *Pager[T]) State() result.Result[apimodels.ListPage[T]] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pager[T]) Window(windowSize int) []int {
	state := p.State()
	if !state.IsSuccess() {
		return []int{}
	}
	return Window(state.Data.CurrentPage, state.Data.TotalPages, windowSize)
}
