package book_appointment

import (
	"fmt"
	"strings"

	"github.com/sarthakk1890/CureAi/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Все локальные проверки выполняются до единственного сетевого вызова:
// заявка с пустой причиной не доходит до сервиса записей вообще
func validateRequest(req *Request) error {
	if req.Session.PatientID == "" {
		return fmt.Errorf("%w: patient session is required", ErrInvalidInput)
	}

	if req.DoctorID == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := req.Start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slot start time: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Reason) == "" {
		return ErrReasonRequired
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}
