package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //для списков, общее кол-во записей, учитывая фильтр (если он есть)
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

// NewErrorWithData - ошибка с данными (например, состояние формы, которое нужно вернуть клиенту)
func NewErrorWithData(message string, data interface{}) Response {
	return Response{
		Status:  "fail",
		Message: message,
		Data:    data,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // Записей на странице
	Page  int `json:"page" query:"page"`   // Страница (1,2,3..)
}

func (r Pagination) Validate() error {
	return nil
}

// GetPage - страница и размер страницы с учётом значений по умолчанию
func (r Pagination) GetPage(defaultLimit, maxLimit int) (page, limit int) {
	page = 1
	limit = defaultLimit
	if limit <= 0 {
		limit = 10
	}
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

// ListPage - одна страница коллекции внешнего API
type ListPage[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

// PageView - страница коллекции для сайта, с данными для элементов пагинации
type PageView[T any] struct {
	Items          []T    `json:"items"`
	CurrentPage    int    `json:"current_page"`
	TotalPages     int    `json:"total_pages"`
	TotalItems     int    `json:"total_items"`
	PageSize       int    `json:"page_size"`
	PageWindow     []int  `json:"page_window"`
	ShowPagination bool   `json:"show_pagination"`
	Empty          bool   `json:"empty"`
	EmptyMessage   string `json:"empty_message,omitempty"`
}
