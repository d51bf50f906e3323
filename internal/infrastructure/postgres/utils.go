package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isUniqueViolation verifica si un error es una violación de constraint único.
// Con TranslateError GORM ya devuelve ErrDuplicatedKey; el 23505 cubre errores sin traducir.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// paginate aplica la ventana de la página a una consulta.
func paginate(q *gorm.DB, offset, limit int) *gorm.DB {
	return q.Offset(offset).Limit(limit)
}
