package availability

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда доктор не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrNoDraft возвращается при операции редактирования без загруженного черновика
	ErrNoDraft = errors.New("no draft loaded for doctor")

	// ErrRuleNotFound возвращается, когда правило с указанным индексом не существует
	ErrRuleNotFound = errors.New("rule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUpdateRejected возвращается, когда DoctorService отклонил сохранение
	ErrUpdateRejected = errors.New("availability update rejected")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
