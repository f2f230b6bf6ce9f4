package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Request describe una página pedida por el cliente (page empieza en 0).
type Request struct {
	Page int
	Size int
	Sort string
	Desc bool
}

func (p Request) Offset() int { return p.Page * p.Size }

// Normalize aplica defaults y límites.
func (p Request) Normalize(defaultSort string, defaultDesc bool) Request {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	if strings.TrimSpace(p.Sort) == "" {
		p.Sort = defaultSort
		p.Desc = defaultDesc
	}
	return p
}

// FromQuery lee ?page=&size=&sort=campo,desc (estilo Spring Pageable).
func FromQuery(r *http.Request) Request {
	q := r.URL.Query()
	var p Request

	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("size")); err == nil {
		p.Size = v
	}
	if raw := strings.TrimSpace(q.Get("sort")); raw != "" {
		parts := strings.SplitN(raw, ",", 2)
		p.Sort = strings.TrimSpace(parts[0])
		if len(parts) == 2 {
			p.Desc = strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
		}
	}
	return p
}

// Page es el sobre de respuesta paginada.
type Page[T any] struct {
	Items         []T `json:"items"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
}

func NewPage[T any](items []T, req Request, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return Page[T]{
		Items:         items,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Map convierte los items de una página manteniendo la metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, fn(it))
	}
	return Page[U]{
		Items:         out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// Slice pagina en memoria un slice ya ordenado (usado por los repos in-memory).
func Slice[T any](all []T, req Request) ([]T, int) {
	total := len(all)
	start := req.Offset()
	if start >= total {
		return []T{}, total
	}
	end := start + req.Size
	if end > total {
		end = total
	}
	return all[start:end], total
}
