package generate_slots

import (
	"context"
	"errors"
	"fmt"

	appointmentClient "github.com/sarthakk1890/CureAi/internal/integrations/appointmentservice"
	doctorClient "github.com/sarthakk1890/CureAi/internal/integrations/doctorservice"
)

// UseCase use case генерации доступных слотов на выбранную дату
type UseCase struct {
	doctorClient      DoctorServiceClient
	appointmentClient AppointmentServiceClient
	cache             ScheduleCache
	timeProvider      TimeProvider
	strictOverlap     bool
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorSvc DoctorServiceClient,
	appointmentSvc AppointmentServiceClient,
	cache ScheduleCache,
	strictOverlap bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorClient:      doctorSvc,
		appointmentClient: appointmentSvc,
		cache:             cache,
		timeProvider:      &RealTimeProvider{},
		strictOverlap:     strictOverlap,
		logger:            logger,
	}
}

// Execute выполняет use case генерации слотов.
// Генерация идемпотентна: повторный запрос на ту же дату при неизменных
// конфигурации и занятых окнах дает тот же результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: doctor=%s, date=%s", req.DoctorID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	emptyResponse := &Response{
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Morning:   []Slot{},
		Afternoon: []Slot{},
	}

	// 2. Прошедшие даты отклоняются сразу, без обращения к коллабораторам
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GenerateSlots: date %s is in the past", req.Date)
		return emptyResponse, nil
	}

	// 3. Получаем конфигурацию доступности (кэш, затем DoctorService)
	cfg, cached := uc.cache.GetConfig(req.DoctorID)
	if !cached {
		fetched, err := uc.doctorClient.GetAvailability(ctx, req.DoctorID)
		if err != nil {
			if errors.Is(err, doctorClient.ErrDoctorNotFound) {
				uc.logger.Warn("GenerateSlots: doctor=%s not found", req.DoctorID)
				return nil, ErrDoctorNotFound
			}
			uc.logger.Error("GenerateSlots: failed to get availability for doctor=%s: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		uc.cache.StoreConfig(req.DoctorID, fetched)
		cfg = fetched
	}
	normalizeTiming(cfg)

	// 4. Полностью недоступная дата - пустой результат, а не ошибка
	if cfg.IsDateUnavailable(req.Date) {
		uc.logger.Info("GenerateSlots: doctor=%s is unavailable on %s", req.DoctorID, req.Date)
		return emptyResponse, nil
	}

	// 5. Генерируем структурные кандидаты по рабочим окнам
	candidates := generateCandidates(cfg, req.Date)
	if len(candidates) == 0 {
		uc.logger.Info("GenerateSlots: no structural slots for doctor=%s on %s", req.DoctorID, req.Date)
		return emptyResponse, nil
	}

	// 6. Получаем занятые окна (кэш, затем AppointmentService).
	// Недоступность сервиса записей не блокирует пациента: показываем все
	// структурные слоты, конфликт поймает сервис записей при подтверждении
	degraded := false
	booked, cached := uc.cache.GetBookedWindows(req.DoctorID)
	if !cached {
		fetched, err := uc.appointmentClient.GetBookedWindowsWithGracefulDegradation(ctx, req.DoctorID)
		switch {
		case errors.Is(err, appointmentClient.ErrServiceDegraded):
			uc.logger.Warn("GenerateSlots: booked windows unavailable for doctor=%s, degrading: %v", req.DoctorID, err)
			degraded = true
			booked = nil
		case err != nil:
			uc.logger.Error("GenerateSlots: failed to get booked windows for doctor=%s: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get booked windows: %v", ErrInternal, err)
		default:
			uc.cache.StoreBookedWindows(req.DoctorID, fetched)
			booked = fetched
		}
	}

	// 7. Убираем занятые слоты
	free := filterBooked(candidates, req.Date, booked, uc.strictOverlap)

	// 8. Раскладываем по корзинам утро/день
	morning, afternoon := splitBuckets(free)

	uc.logger.Info("GenerateSlots: doctor=%s, date=%s: %d morning, %d afternoon slots",
		req.DoctorID, req.Date, len(morning), len(afternoon))

	return &Response{
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Degraded:  degraded,
		Morning:   morning,
		Afternoon: afternoon,
	}, nil
}
