package service

import "errors"

var (
	// ErrValidation - некорректные координаты, статус или другие входные данные
	ErrValidation = errors.New("validation error")
	// ErrForbidden - роль не допускает операцию
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound - тревога или турист не найдены
	ErrNotFound = errors.New("not found")
	// ErrConflict - запись изменена конкурентно
	ErrConflict = errors.New("conflict")
)
