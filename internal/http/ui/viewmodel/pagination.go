package viewmodel

import "strconv"

// Ellipsis marks a gap in the page number strip.
const Ellipsis = "..."

// Pagination contains pagination metadata for list views.
type Pagination struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
	Items      []PageItem
}

// PageItem is one entry in the page number strip: a numbered link or an
// ellipsis placeholder.
type PageItem struct {
	Label    string
	URL      string
	IsActive bool
	IsGap    bool
}

// NewPagination builds the page strip for the given current page and total,
// using buildURL to produce the link for each page number.
func NewPagination(page, totalPages int, buildURL func(page int) string) Pagination {
	p := Pagination{
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if p.HasPrev {
		p.PrevURL = buildURL(page - 1)
	}
	if p.HasNext {
		p.NextURL = buildURL(page + 1)
	}

	for _, label := range PageLabels(page, totalPages) {
		item := PageItem{Label: label}
		if label == Ellipsis {
			item.IsGap = true
		} else {
			n, _ := strconv.Atoi(label)
			item.URL = buildURL(n)
			item.IsActive = n == page
		}
		p.Items = append(p.Items, item)
	}
	return p
}

// PageLabels produces the visible page strip for a pager. Short ranges show
// every page; longer ranges collapse the middle or an edge into an ellipsis
// while keeping the first, last, and current pages visible.
func PageLabels(current, total int) []string {
	const window = 7
	if total <= window {
		labels := make([]string, 0, total)
		for i := 1; i <= total; i++ {
			labels = append(labels, strconv.Itoa(i))
		}
		return labels
	}

	if current <= 3 {
		return []string{"1", "2", "3", Ellipsis, strconv.Itoa(total - 1), strconv.Itoa(total)}
	}
	if current >= total-2 {
		return []string{
			"1", "2", Ellipsis,
			strconv.Itoa(total - 2), strconv.Itoa(total - 1), strconv.Itoa(total),
		}
	}
	return []string{
		"1",
		Ellipsis,
		strconv.Itoa(current - 1),
		strconv.Itoa(current),
		strconv.Itoa(current + 1),
		Ellipsis,
		strconv.Itoa(total),
	}
}
