package listing

const DefaultWindowSize = 5

// Window - номера страниц для кнопок пагинации. Окно центрируется на текущей странице
// и прижимается к краям, поэтому номера всегда в диапазоне [1, total]
func Window(current, total, size int) []int {
	if total < 1 {
		return []int{}
	}
	if size < 1 {
		size = DefaultWindowSize
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if total <= size {
		return pageRange(1, total)
	}
	start := current - size/2
	if start < 1 {
		start = 1
	}
	if maxStart := total - size + 1; start > maxStart {
		start = maxStart
	}
	return pageRange(start, start+size-1)
}

// ShowPagination - пагинация нужна, только если страниц больше одной
func ShowPagination(total int) bool {
	return total > 1
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}
