package calendar

import "errors"

var (
	// ErrNoSession возвращается при операции без открытой сессии выбора
	ErrNoSession = errors.New("no selection session")

	// ErrInvalidTransition возвращается при недопустимом переходе состояния
	ErrInvalidTransition = errors.New("invalid selection state transition")

	// ErrReasonRequired возвращается при попытке отправки без причины визита
	ErrReasonRequired = errors.New("visit reason is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
