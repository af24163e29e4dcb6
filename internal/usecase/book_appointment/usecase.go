package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sarthakk1890/CureAi/internal/domain"
	appointmentClient "github.com/sarthakk1890/CureAi/internal/integrations/appointmentservice"
	doctorClient "github.com/sarthakk1890/CureAi/internal/integrations/doctorservice"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// UseCase use case создания записи на прием
type UseCase struct {
	doctorClient      DoctorServiceClient
	appointmentClient AppointmentServiceClient
	cache             ScheduleCache
	timeProvider      TimeProvider
	logger            Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorSvc DoctorServiceClient,
	appointmentSvc AppointmentServiceClient,
	cache ScheduleCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorClient:      doctorSvc,
		appointmentClient: appointmentSvc,
		cache:             cache,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
		inFlight:          make(map[string]struct{}),
	}
}

// Execute выполняет use case создания записи.
// Сервис записей вызывается ровно один раз на заявку; повторная отправка
// той же заявки до завершения первой отклоняется сразу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: patient=%s, doctor=%s, date=%s, start=%s",
		req.Session.PatientID, req.DoctorID, req.Date, req.Start)

	// 1. Валидация входных данных, до любого сетевого вызова
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Защита от повторной отправки той же заявки
	key := submissionKey(req)
	if !uc.acquire(key) {
		uc.logger.Warn("BookAppointment: duplicate submission for %s", key)
		return nil, ErrSubmissionInFlight
	}
	defer uc.release(key)

	// 3. Прошедшие даты отклоняются локально
	now := uc.timeProvider.Now()
	if req.Date.Before(types.NewDateStamp(now)) {
		uc.logger.Warn("BookAppointment: date %s is in the past", req.Date)
		return nil, ErrInvalidDate
	}

	// 4. Получаем конфигурацию доступности ради длительности приема
	cfg, cached := uc.cache.GetConfig(req.DoctorID)
	if !cached {
		fetched, err := uc.doctorClient.GetAvailability(ctx, req.DoctorID)
		if err != nil {
			if errors.Is(err, doctorClient.ErrDoctorNotFound) {
				uc.logger.Warn("BookAppointment: doctor=%s not found", req.DoctorID)
				return nil, ErrDoctorNotFound
			}
			uc.logger.Error("BookAppointment: failed to get availability for doctor=%s: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		uc.cache.StoreConfig(req.DoctorID, fetched)
		cfg = fetched
	}

	// 5. Полностью недоступная дата не доходит до сервиса записей
	if cfg.IsDateUnavailable(req.Date) {
		uc.logger.Warn("BookAppointment: doctor=%s is unavailable on %s", req.DoctorID, req.Date)
		return nil, ErrSlotNotAvailable
	}

	// 6. Вычисляем метку диапазона - под ней сервис записей резервирует слот
	meetingLength := cfg.MeetingLengthMinutes
	if meetingLength <= 0 {
		meetingLength = domain.DefaultMeetingLengthMinutes
	}
	end, err := req.Start.AddMinutes(meetingLength)
	if err != nil {
		uc.logger.Warn("BookAppointment: slot end out of day range: %v", err)
		return nil, fmt.Errorf("%w: slot does not fit the day", ErrInvalidInput)
	}
	timeSlot := types.RangeLabel(req.Start, end)

	// 7. Единственный вызов сервиса записей
	details := req.Session.Details
	symptoms := append(append([]string(nil), details.Symptoms...), strings.TrimSpace(req.Reason))

	appointment, err := uc.appointmentClient.CreateAppointment(ctx, &appointmentClient.NewAppointmentRequest{
		DoctorID:  req.DoctorID,
		PatientID: req.Session.PatientID,
		Date:      req.Date.String(),
		TimeSlot:  timeSlot,
		Reference: uuid.NewString(),
		PatientDetails: appointmentClient.PatientDetailsPayload{
			Age:      details.Age,
			Gender:   details.Gender,
			Symptoms: symptoms,
		},
	})
	if err != nil {
		var rejection *appointmentClient.RejectionError
		switch {
		case errors.As(err, &rejection):
			// Отказ сервиса записей доводится до пациента дословно
			uc.logger.Warn("BookAppointment: rejected for patient=%s, doctor=%s: %s",
				req.Session.PatientID, req.DoctorID, rejection.Message)
			return nil, err
		case errors.Is(err, appointmentClient.ErrDoctorNotFound):
			uc.logger.Warn("BookAppointment: doctor=%s not found by appointment service", req.DoctorID)
			return nil, ErrDoctorNotFound
		default:
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}

	// 8. Занятые окна доктора устарели - следующая генерация слотов
	// обязана перечитать их и сразу показать новую бронь занятой
	uc.cache.InvalidateBookedWindows(req.DoctorID)

	uc.logger.Info("BookAppointment: created appointment id=%s for patient=%s, doctor=%s, slot=%s",
		appointment.ID, req.Session.PatientID, req.DoctorID, timeSlot)

	return &Response{
		Appointment: appointment,
		TimeSlot:    timeSlot,
	}, nil
}

func submissionKey(req *Request) string {
	return fmt.Sprintf("%s|%s|%s|%s", req.Session.PatientID, req.DoctorID, req.Date, req.Start)
}

func (uc *UseCase) acquire(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inFlight[key]; busy {
		return false
	}
	uc.inFlight[key] = struct{}{}
	return true
}

func (uc *UseCase) release(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	delete(uc.inFlight, key)
}
