// Package repository - общие для postgres репозиториев разборы ошибок драйвера.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ConstraintTruckAssignee - у водителя не больше одной активной машины.
const ConstraintTruckAssignee = "trucks_assigned_to_uniq"

// ViolatesUnique сообщает, что запись нарушила уникальное ограничение.
// Пустое constraint подходит под любое ограничение.
func ViolatesUnique(err error, constraint string) bool {
	return violates(err, pgUniqueViolation, constraint)
}

// ViolatesForeignKey - запись ссылается на строку, которой уже нет.
func ViolatesForeignKey(err error) bool {
	return violates(err, pgForeignKeyViolation, "")
}

func violates(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
