package appointmentservice

import (
	"errors"
	"fmt"
)

var (
	// ErrDoctorNotFound возвращается, когда доктор не найден
	ErrDoctorNotFound = errors.New("appointmentservice client: doctor not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что список занятых окон недоступен и вызывающий должен
	// осознанно решить, работать ли с пустым списком
	ErrServiceDegraded = errors.New("appointmentservice unavailable: graceful degradation applied")
)

// RejectionError отказ сервиса записи с сообщением, пригодным для показа пациенту
// Сообщение передается дословно, как его сформировал сервис
type RejectionError struct {
	Message string
}

// Error реализует error
func (e *RejectionError) Error() string {
	return fmt.Sprintf("appointmentservice client: booking rejected: %s", e.Message)
}
