package model

// Pagination is derived per request from the fetched page. Zero means no such page.
type Pagination struct {
	Prev int
	Next int
}

func (p Pagination) HasPrev() bool { return p.Prev > 0 }

func (p Pagination) HasNext() bool { return p.Next > 0 }
