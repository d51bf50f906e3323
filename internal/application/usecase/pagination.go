package usecase

import (
	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
)

// toPageRequest traduce la página 1-based del cliente a la ventana 0-based del repositorio.
func toPageRequest(q dto.PageQuery) domain.PageRequest {
	q = q.Normalize()
	return domain.PageRequest{Number: q.Page - 1, Size: q.Size}
}

func toPageResult[T, R any](p domain.Page[T], fn func(T) R) *dto.PageResult[R] {
	mapped := domain.MapPage(p, fn)
	return &dto.PageResult[R]{
		Items:         mapped.Items,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages(),
		PageNumber:    mapped.Number + 1,
		PageSize:      mapped.Size,
	}
}
