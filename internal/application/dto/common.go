package dto

import "math"

// Valores por defecto de paginación (page 1-based en el wire).
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageQuery parámetros de paginación de los listados: ?page=1&size=10.
type PageQuery struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize aplica valores por defecto: page < 1 pasa a 1, size < 1 a 10, size se limita a 100.
// page se acota para que el offset (page-1)*size quepa en un int.
func (p PageQuery) Normalize() PageQuery {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if maxPage := math.MaxInt / p.Size; p.Page > maxPage {
		p.Page = maxPage
	}
	return p
}

// PageResult página ya convertida a DTO, con numeración 1-based.
type PageResult[T any] struct {
	Items         []T
	TotalElements int64
	TotalPages    int
	PageNumber    int
	PageSize      int
}

// Envelope cuerpo uniforme de todas las respuestas, incluidas las de error.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    Meta        `json:"meta"`
}

// Meta metadatos de la petición; los campos de paginación solo aparecen en listados.
type Meta struct {
	Method        string `json:"method"`
	URL           string `json:"url"`
	TotalPages    *int   `json:"totalPages,omitempty"`
	TotalElements *int64 `json:"totalElements,omitempty"`
	PageNumber    *int   `json:"pageNumber,omitempty"`
	PageSize      *int   `json:"pageSize,omitempty"`
}

// WithPage completa la paginación a partir de un resultado paginado.
func (m Meta) WithPage(totalPages int, totalElements int64, pageNumber, pageSize int) Meta {
	m.TotalPages = &totalPages
	m.TotalElements = &totalElements
	m.PageNumber = &pageNumber
	m.PageSize = &pageSize
	return m
}
