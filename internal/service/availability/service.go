package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sarthakk1890/CureAi/internal/domain"
	doctorClient "github.com/sarthakk1890/CureAi/internal/integrations/doctorservice"
	"github.com/sarthakk1890/CureAi/pkg/ptr"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// Service редактор доступности доктора.
//
// Все правки применяются к локальному черновику и не видны генератору
// слотов до явного Save: черновик копится порцией и уходит в DoctorService
// одной полной конфигурацией. Авторитетная версия - та, что вернул сервис
type Service struct {
	doctorClient DoctorServiceClient
	cache        ScheduleCache
	logger       Logger

	mu     sync.Mutex
	drafts map[string]*domain.AvailabilityConfig
}

// NewService создает новый экземпляр редактора доступности
func NewService(doctorSvc DoctorServiceClient, cache ScheduleCache, logger Logger) *Service {
	return &Service{
		doctorClient: doctorSvc,
		cache:        cache,
		logger:       logger,
		drafts:       make(map[string]*domain.AvailabilityConfig),
	}
}

// Load загружает текущую конфигурацию доктора и открывает черновик.
// Несохраненные правки предыдущего черновика отбрасываются
func (s *Service) Load(ctx context.Context, doctorID string) (*domain.AvailabilityConfig, error) {
	if doctorID == "" {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	cfg, cached := s.cache.GetConfig(doctorID)
	if !cached {
		fetched, err := s.doctorClient.GetAvailability(ctx, doctorID)
		if err != nil {
			if errors.Is(err, doctorClient.ErrDoctorNotFound) {
				s.logger.Warn("Load: doctor=%s not found", doctorID)
				return nil, ErrDoctorNotFound
			}
			s.logger.Error("Load: failed to get availability for doctor=%s: %v", doctorID, err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		s.cache.StoreConfig(doctorID, fetched)
		cfg = fetched
	}

	s.mu.Lock()
	s.drafts[doctorID] = cfg.Clone()
	s.mu.Unlock()

	s.logger.Info("Load: opened draft for doctor=%s", doctorID)
	return cfg.Clone(), nil
}

// Draft возвращает копию текущего черновика
func (s *Service) Draft(doctorID string) (*domain.AvailabilityConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[doctorID]
	if !ok {
		return nil, ErrNoDraft
	}
	return draft.Clone(), nil
}

// ToggleWeekday переключает доступность дня недели.
// Выключение убирает все рабочие окна дня и явно исключает его;
// включение снимает исключение и ставит дефолтное окно 09:00-17:00,
// если других окон у дня нет
func (s *Service) ToggleWeekday(doctorID string, day domain.Weekday) error {
	if !day.IsValid() {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
	}

	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		if draft.IsWeekdayUnavailable(day) {
			draft.UnavailableDays = removeWeekday(draft.UnavailableDays, day)
			if len(draft.WorkingHoursFor(day)) == 0 {
				draft.WorkingHours = append(draft.WorkingHours, domain.WorkingHourRule{
					Day:   day,
					Start: types.TimeString(domain.DefaultWorkingDayStart),
					End:   types.TimeString(domain.DefaultWorkingDayEnd),
				})
			}
			s.logger.Info("ToggleWeekday: doctor=%s, enabled %s", doctorID, day)
			return nil
		}

		kept := make([]domain.WorkingHourRule, 0, len(draft.WorkingHours))
		for _, rule := range draft.WorkingHours {
			if rule.Day != day {
				kept = append(kept, rule)
			}
		}
		draft.WorkingHours = kept
		draft.UnavailableDays = append(draft.UnavailableDays, day)

		s.logger.Info("ToggleWeekday: doctor=%s, disabled %s", doctorID, day)
		return nil
	})
}

// AddWorkingHours добавляет рабочее окно дню недели.
// День автоматически перестает быть явно исключенным
func (s *Service) AddWorkingHours(doctorID string, rule domain.WorkingHourRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}

	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		draft.WorkingHours = append(draft.WorkingHours, rule)
		draft.UnavailableDays = removeWeekday(draft.UnavailableDays, rule.Day)
		return nil
	})
}

// UpdateWorkingHours заменяет рабочее окно по индексу
func (s *Service) UpdateWorkingHours(doctorID string, index int, rule domain.WorkingHourRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}

	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		if index < 0 || index >= len(draft.WorkingHours) {
			return ErrRuleNotFound
		}
		draft.WorkingHours[index] = rule
		return nil
	})
}

// RemoveWorkingHours удаляет рабочее окно по индексу
func (s *Service) RemoveWorkingHours(doctorID string, index int) error {
	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		if index < 0 || index >= len(draft.WorkingHours) {
			return ErrRuleNotFound
		}
		draft.WorkingHours = append(draft.WorkingHours[:index], draft.WorkingHours[index+1:]...)
		return nil
	})
}

// AddRecurringBreak добавляет еженедельный перерыв
func (s *Service) AddRecurringBreak(doctorID string, brk domain.RecurringBreak) error {
	if len(brk.Days) == 0 {
		return fmt.Errorf("%w: break must apply to at least one weekday", ErrInvalidInput)
	}
	for _, day := range brk.Days {
		if !day.IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
	}
	if err := validateWindow(brk.Start, brk.End); err != nil {
		return err
	}

	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		draft.RecurringBreaks = append(draft.RecurringBreaks, brk)
		return nil
	})
}

// RemoveRecurringBreak удаляет перерыв по индексу
func (s *Service) RemoveRecurringBreak(doctorID string, index int) error {
	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		if index < 0 || index >= len(draft.RecurringBreaks) {
			return ErrRuleNotFound
		}
		draft.RecurringBreaks = append(draft.RecurringBreaks[:index], draft.RecurringBreaks[index+1:]...)
		return nil
	})
}

// AddBlockedSlot добавляет разовую блокировку с обязательной причиной
func (s *Service) AddBlockedSlot(doctorID string, blocked domain.BlockedInterval) error {
	if err := blocked.Start.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start date: %v", ErrInvalidInput, err)
	}
	if err := blocked.End.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end date: %v", ErrInvalidInput, err)
	}
	if err := blocked.Start.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := blocked.End.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if blocked.End.Date.Before(blocked.Start.Date) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	if blocked.Start.Date.Equal(blocked.End.Date) && !blocked.Start.Time.IsBefore(blocked.End.Time) {
		// Конец в 00:00 того же дня - известный дефектный ввод,
		// нормализуется при генерации, поэтому пропускается
		if blocked.End.Time.Minutes() != 0 {
			return fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
		}
	}
	if len(ptr.Deref(blocked.Reason)) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		draft.BlockedIntervals = append(draft.BlockedIntervals, blocked)
		return nil
	})
}

// RemoveBlockedSlot удаляет разовую блокировку по индексу
func (s *Service) RemoveBlockedSlot(doctorID string, index int) error {
	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		if index < 0 || index >= len(draft.BlockedIntervals) {
			return ErrRuleNotFound
		}
		draft.BlockedIntervals = append(draft.BlockedIntervals[:index], draft.BlockedIntervals[index+1:]...)
		return nil
	})
}

// AddUnavailableDate полностью исключает дату из записи
func (s *Service) AddUnavailableDate(doctorID string, date types.DateStamp) error {
	if err := date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		for _, d := range draft.UnavailableDates {
			if d.Equal(date) {
				return nil
			}
		}
		draft.UnavailableDates = append(draft.UnavailableDates, date)
		return nil
	})
}

// RemoveUnavailableDate снимает исключение даты
func (s *Service) RemoveUnavailableDate(doctorID string, date types.DateStamp) error {
	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		kept := make([]types.DateStamp, 0, len(draft.UnavailableDates))
		for _, d := range draft.UnavailableDates {
			if !d.Equal(date) {
				kept = append(kept, d)
			}
		}
		draft.UnavailableDates = kept
		return nil
	})
}

// SetSlotTiming задает параметры сетки слотов
func (s *Service) SetSlotTiming(doctorID string, slotDuration, bufferTime, meetingLength int) error {
	if slotDuration < domain.MinSlotDurationMinutes || slotDuration > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if bufferTime < 0 || bufferTime > domain.MaxBufferTimeMinutes {
		return fmt.Errorf("%w: buffer time must be between 0 and %d minutes",
			ErrInvalidInput, domain.MaxBufferTimeMinutes)
	}
	if meetingLength < domain.MinMeetingLengthMinutes || meetingLength > domain.MaxMeetingLengthMinutes {
		return fmt.Errorf("%w: meeting length must be between %d and %d minutes",
			ErrInvalidInput, domain.MinMeetingLengthMinutes, domain.MaxMeetingLengthMinutes)
	}

	return s.withDraft(doctorID, func(draft *domain.AvailabilityConfig) error {
		draft.SlotDurationMinutes = slotDuration
		draft.BufferTimeMinutes = bufferTime
		draft.MeetingLengthMinutes = meetingLength
		return nil
	})
}

// Update заменяет конфигурацию доктора целиком, минуя черновик.
// Путь для внешнего API: конфигурация валидируется, уходит в DoctorService
// и кэш с открытым черновиком заменяются авторитетным ответом
func (s *Service) Update(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	if cfg == nil || cfg.DoctorID == "" {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	saved, err := s.doctorClient.UpdateAvailability(ctx, cfg)
	if err != nil {
		switch {
		case errors.Is(err, doctorClient.ErrDoctorNotFound):
			s.logger.Warn("Update: doctor=%s not found", cfg.DoctorID)
			return nil, ErrDoctorNotFound
		case errors.Is(err, doctorClient.ErrUpdateRejected):
			s.logger.Warn("Update: rejected for doctor=%s: %v", cfg.DoctorID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpdateRejected, err)
		default:
			s.logger.Error("Update: failed for doctor=%s: %v", cfg.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to update availability: %v", ErrInternal, err)
		}
	}

	s.mu.Lock()
	if _, ok := s.drafts[cfg.DoctorID]; ok {
		s.drafts[cfg.DoctorID] = saved.Clone()
	}
	s.mu.Unlock()
	s.cache.StoreConfig(cfg.DoctorID, saved)

	s.logger.Info("Update: saved availability for doctor=%s", cfg.DoctorID)
	return saved.Clone(), nil
}

// Save отправляет черновик в DoctorService целиком.
// Черновик и кэш заменяются авторитетной версией из ответа сервиса -
// только после этого генератор слотов видит новое расписание
func (s *Service) Save(ctx context.Context, doctorID string) (*domain.AvailabilityConfig, error) {
	s.mu.Lock()
	draft, ok := s.drafts[doctorID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoDraft
	}
	draft = draft.Clone()
	s.mu.Unlock()

	saved, err := s.doctorClient.UpdateAvailability(ctx, draft)
	if err != nil {
		switch {
		case errors.Is(err, doctorClient.ErrDoctorNotFound):
			s.logger.Warn("Save: doctor=%s not found", doctorID)
			return nil, ErrDoctorNotFound
		case errors.Is(err, doctorClient.ErrUpdateRejected):
			// Черновик сохраняется: правки не теряются при отказе
			s.logger.Warn("Save: update rejected for doctor=%s: %v", doctorID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpdateRejected, err)
		default:
			s.logger.Error("Save: failed to update availability for doctor=%s: %v", doctorID, err)
			return nil, fmt.Errorf("%w: failed to update availability: %v", ErrInternal, err)
		}
	}

	s.mu.Lock()
	s.drafts[doctorID] = saved.Clone()
	s.mu.Unlock()
	s.cache.StoreConfig(doctorID, saved)

	s.logger.Info("Save: saved availability for doctor=%s", doctorID)
	return saved.Clone(), nil
}

func (s *Service) withDraft(doctorID string, mutate func(draft *domain.AvailabilityConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[doctorID]
	if !ok {
		return ErrNoDraft
	}
	return mutate(draft)
}

func validateConfig(cfg *domain.AvailabilityConfig) error {
	for _, rule := range cfg.WorkingHours {
		if err := validateRule(rule); err != nil {
			return err
		}
	}
	for _, day := range cfg.UnavailableDays {
		if !day.IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
	}
	for _, date := range cfg.UnavailableDates {
		if err := date.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	for _, brk := range cfg.RecurringBreaks {
		for _, day := range brk.Days {
			if !day.IsValid() {
				return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
			}
		}
		if err := validateWindow(brk.Start, brk.End); err != nil {
			return err
		}
	}
	if cfg.SlotDurationMinutes != 0 {
		if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
			return fmt.Errorf("%w: slot duration out of range", ErrInvalidInput)
		}
	}
	if cfg.BufferTimeMinutes < 0 || cfg.BufferTimeMinutes > domain.MaxBufferTimeMinutes {
		return fmt.Errorf("%w: buffer time out of range", ErrInvalidInput)
	}
	if cfg.MeetingLengthMinutes != 0 {
		if cfg.MeetingLengthMinutes < domain.MinMeetingLengthMinutes || cfg.MeetingLengthMinutes > domain.MaxMeetingLengthMinutes {
			return fmt.Errorf("%w: meeting length out of range", ErrInvalidInput)
		}
	}
	return nil
}

func validateRule(rule domain.WorkingHourRule) error {
	if !rule.Day.IsValid() {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, rule.Day)
	}
	return validateWindow(rule.Start, rule.End)
}

func validateWindow(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}
	return nil
}

func removeWeekday(days []domain.Weekday, day domain.Weekday) []domain.Weekday {
	kept := make([]domain.Weekday, 0, len(days))
	for _, d := range days {
		if d != day {
			kept = append(kept, d)
		}
	}
	return kept
}
