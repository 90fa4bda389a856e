package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// likePattern escapa comodines de LIKE y envuelve el término en %...%.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// orderDirection traduce la bandera de orden a SQL; solo produce literales fijos.
func orderDirection(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}

// placeholder devuelve $n para el n-ésimo argumento.
func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
