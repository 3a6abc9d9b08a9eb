package listing

import (
	apimodels "site-backend/models/api"
)

const DefaultEmptyMessage = "Пока здесь ничего нет"

// ToPageView - страница для сайта: элементы, счётчики и окно кнопок пагинации
func ToPageView[T, V any](data apimodels.ListPage[T], size, windowSize int, convert func(T) V, emptyMessage string) apimodels.PageView[V] {
	items := make([]V, 0, len(data.Items))
	for _, rec := range data.Items {
		items = append(items, convert(rec))
	}
	view := apimodels.PageView[V]{
		Items:          items,
		CurrentPage:    data.CurrentPage,
		TotalPages:     data.TotalPages,
		TotalItems:     data.TotalItems,
		PageSize:       size,
		PageWindow:     Window(data.CurrentPage, data.TotalPages, windowSize),
		ShowPagination: ShowPagination(data.TotalPages),
		Empty:          len(items) == 0,
	}
	if view.Empty {
		if emptyMessage == "" {
			emptyMessage = DefaultEmptyMessage
		}
		view.EmptyMessage = emptyMessage
	}
	return view
}
