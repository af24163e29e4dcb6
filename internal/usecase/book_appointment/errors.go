package book_appointment

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда доктор не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrReasonRequired возвращается, когда причина визита пустая.
	// Проверяется до любого сетевого вызова
	ErrReasonRequired = errors.New("visit reason is required")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrSlotNotAvailable возвращается, когда слот структурно недоступен
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrSubmissionInFlight возвращается при повторной отправке той же заявки,
	// пока первая еще не завершилась
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
