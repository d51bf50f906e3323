package domain

import "math"

// PageRequest ventana de consulta paginada. Number es 0-based (el cliente envía 1-based).
type PageRequest struct {
	Number int
	Size   int
}

// Offset filas a saltar en la consulta.
func (p PageRequest) Offset() int {
	if p.Size > 0 && p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Number * p.Size
}

// Page resultado paginado: elementos de la ventana más el total sin paginar.
type Page[T any] struct {
	Items         []T
	TotalElements int64
	Number        int // 0-based
	Size          int
}

// TotalPages número de páginas para el total y tamaño dados.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// MapPage transforma los elementos de una página conservando sus metadatos.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[R]{Items: items, TotalElements: p.TotalElements, Number: p.Number, Size: p.Size}
}
