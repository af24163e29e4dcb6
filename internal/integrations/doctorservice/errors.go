package doctorservice

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда доктор не найден
	ErrDoctorNotFound = errors.New("doctorservice client: doctor not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("doctorservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("doctorservice client: invalid response")

	// ErrUpdateRejected возвращается, когда сервис отклонил обновление расписания
	ErrUpdateRejected = errors.New("doctorservice client: availability update rejected")
)
