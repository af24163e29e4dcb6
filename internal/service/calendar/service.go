package calendar

import (
	"sync"

	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// DayCell ячейка календарной сетки
type DayCell struct {
	Date  types.DateStamp
	State CellState
}

// Service держит сессии выбора слота, по одной на пациента.
// Сессии эфемерны: создаются при открытии формы записи и теряются
// при перезапуске без каких-либо последствий для данных
type Service struct {
	timeProvider TimeProvider
	logger       Logger

	mu       sync.Mutex
	sessions map[string]*SelectionState
}

// NewService создает новый экземпляр сервиса календаря
func NewService(logger Logger) *Service {
	return &Service{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessions:     make(map[string]*SelectionState),
	}
}

// Open открывает сессию выбора для пациента на текущем месяце.
// Повторное открытие сбрасывает предыдущую сессию
func (s *Service) Open(patientID string) (*SelectionState, error) {
	if patientID == "" {
		return nil, ErrInvalidInput
	}

	today := types.NewDateStamp(s.timeProvider.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	state := newSelectionState(today)
	s.sessions[patientID] = state

	s.logger.Info("Open: selection session for patient=%s, month=%s", patientID, state.DisplayedMonth)
	return s.snapshot(state), nil
}

// Close закрывает сессию пациента
func (s *Service) Close(patientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, patientID)
}

// State возвращает снапшот состояния сессии
func (s *Service) State(patientID string) (*SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[patientID]
	if !ok {
		return nil, ErrNoSession
	}
	return s.snapshot(state), nil
}

// AdvanceMonth листает сетку на месяц вперед
func (s *Service) AdvanceMonth(patientID string) (types.YearMonth, error) {
	var month types.YearMonth
	err := s.withSession(patientID, func(state *SelectionState) error {
		state.advanceMonth()
		month = state.DisplayedMonth
		return nil
	})
	return month, err
}

// RetreatMonth листает сетку на месяц назад, не раньше текущего
func (s *Service) RetreatMonth(patientID string) (types.YearMonth, error) {
	today := types.NewDateStamp(s.timeProvider.Now())

	var month types.YearMonth
	err := s.withSession(patientID, func(state *SelectionState) error {
		state.retreatMonth(today)
		month = state.DisplayedMonth
		return nil
	})
	return month, err
}

// SelectDate выбирает дату в сетке. Клик по прошедшей или недоступной
// ячейке инертен - ошибки нет, состояние не меняется
func (s *Service) SelectDate(patientID string, date types.DateStamp, cfg *domain.AvailabilityConfig) error {
	if err := date.Validate(); err != nil {
		return ErrInvalidInput
	}

	today := types.NewDateStamp(s.timeProvider.Now())
	return s.withSession(patientID, func(state *SelectionState) error {
		state.selectDate(date, cfg, today)
		return nil
	})
}

// SelectSlot выбирает слот на выбранной дате
func (s *Service) SelectSlot(patientID string, slot SelectedSlot) error {
	if err := slot.Start.Validate(); err != nil || slot.TimeSlot == "" {
		return ErrInvalidInput
	}

	return s.withSession(patientID, func(state *SelectionState) error {
		return state.selectSlot(slot)
	})
}

// SetReason задает причину визита
func (s *Service) SetReason(patientID, reason string) error {
	return s.withSession(patientID, func(state *SelectionState) error {
		return state.setReason(reason)
	})
}

// BeginSubmit переводит заявку в фазу отправки
func (s *Service) BeginSubmit(patientID string) error {
	return s.withSession(patientID, func(state *SelectionState) error {
		return state.beginSubmit()
	})
}

// ConfirmSubmit фиксирует подтверждение записи и очищает выбор
func (s *Service) ConfirmSubmit(patientID string) error {
	return s.withSession(patientID, func(state *SelectionState) error {
		return state.confirmSubmit()
	})
}

// FailSubmit возвращает отклоненную заявку к выбранному слоту
func (s *Service) FailSubmit(patientID string) error {
	return s.withSession(patientID, func(state *SelectionState) error {
		return state.failSubmit()
	})
}

// Reset возвращает сессию к чистому листанию текущего месяца
func (s *Service) Reset(patientID string) error {
	today := types.NewDateStamp(s.timeProvider.Now())
	return s.withSession(patientID, func(state *SelectionState) error {
		state.reset(today)
		return nil
	})
}

// ApplyMonthAvailability применяет результат загрузки недоступных дат месяца.
// Возвращает true, если месяц все еще отображается: только тогда результат
// попадает в видимую сетку. Опоздавший ответ по пролистнутому месяцу
// сохраняется в кэше, но текущую сетку не трогает
func (s *Service) ApplyMonthAvailability(patientID string, month types.YearMonth, unavailable []types.DateStamp) (bool, error) {
	displayed := false
	err := s.withSession(patientID, func(state *SelectionState) error {
		state.applyMonthAvailability(month, unavailable)
		displayed = month == state.DisplayedMonth
		return nil
	})
	if err != nil {
		return false, err
	}

	if !displayed {
		s.logger.Info("ApplyMonthAvailability: patient=%s, stale month %s ignored for display", patientID, month)
	}
	return displayed, nil
}

// MonthGrid строит сетку отображаемого месяца. Состояние каждой ячейки
// вычисляется из конфигурации и закэшированных недоступных дат месяца
func (s *Service) MonthGrid(patientID string, cfg *domain.AvailabilityConfig) ([]DayCell, error) {
	today := types.NewDateStamp(s.timeProvider.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[patientID]
	if !ok {
		return nil, ErrNoSession
	}

	cached := state.monthUnavailable[state.DisplayedMonth]
	days := state.DisplayedMonth.Days()

	grid := make([]DayCell, 0, len(days))
	for _, day := range days {
		cell := CellStateFor(day, cfg, today, state.SelectedDate)
		if cell == CellAvailable && containsDate(cached, day) {
			cell = CellUnavailable
		}
		grid = append(grid, DayCell{Date: day, State: cell})
	}

	return grid, nil
}

func (s *Service) withSession(patientID string, fn func(state *SelectionState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[patientID]
	if !ok {
		return ErrNoSession
	}
	return fn(state)
}

// snapshot возвращает копию состояния без разделяемых ссылок
func (s *Service) snapshot(state *SelectionState) *SelectionState {
	copied := *state
	copied.monthUnavailable = nil
	if state.SelectedSlot != nil {
		slot := *state.SelectedSlot
		copied.SelectedSlot = &slot
	}
	return &copied
}

func containsDate(dates []types.DateStamp, date types.DateStamp) bool {
	for _, d := range dates {
		if d.Equal(date) {
			return true
		}
	}
	return false
}
