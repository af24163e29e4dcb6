package calendar

import (
	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// Phase фаза процесса выбора слота
type Phase string

const (
	PhaseBrowsing     Phase = "BROWSING"      // листание календаря, дата не выбрана
	PhaseDateSelected Phase = "DATE_SELECTED" // дата выбрана, слот нет
	PhaseTimeSelected Phase = "TIME_SELECTED" // выбраны дата и слот
	PhaseSubmitting   Phase = "SUBMITTING"    // заявка отправлена, ответа еще нет
	PhaseConfirmed    Phase = "CONFIRMED"     // запись подтверждена
)

// CellState состояние ячейки календарной сетки
type CellState string

const (
	CellPast        CellState = "PAST"        // прошедшая дата, клик инертен
	CellUnavailable CellState = "UNAVAILABLE" // доктор недоступен, клик инертен
	CellSelected    CellState = "SELECTED"    // выбранная дата
	CellAvailable   CellState = "AVAILABLE"   // доступна для выбора
)

// SelectedSlot выбранный пациентом слот
type SelectedSlot struct {
	Start    types.TimeString
	TimeSlot string // метка диапазона, под которой слот будет забронирован
}

// SelectionState состояние одной сессии выбора: какой месяц показан, какая
// дата и слот выбраны и на какой фазе находится заявка. Эфемерно - живет
// только в памяти, при выходе пациента теряется без последствий
type SelectionState struct {
	Phase          Phase
	DisplayedMonth types.YearMonth
	SelectedDate   types.DateStamp
	SelectedSlot   *SelectedSlot
	Reason         string

	// Закэшированные недоступные даты по месяцам. Ответ загрузки месяца
	// применяется к сетке только если месяц все еще отображается -
	// опоздавший ответ по пролистнутому месяцу сетку не перетирает
	monthUnavailable map[types.YearMonth][]types.DateStamp
}

// newSelectionState открывает сессию на месяце, содержащем сегодняшнюю дату
func newSelectionState(today types.DateStamp) *SelectionState {
	return &SelectionState{
		Phase:            PhaseBrowsing,
		DisplayedMonth:   types.YearMonthOf(today),
		monthUnavailable: make(map[types.YearMonth][]types.DateStamp),
	}
}

// advanceMonth листает сетку на месяц вперед. Смена месяца сбрасывает
// выбранный слот и причину: устаревшая комбинация не должна дожить до отправки
func (s *SelectionState) advanceMonth() {
	if s.Phase == PhaseSubmitting || s.Phase == PhaseConfirmed {
		return
	}

	s.DisplayedMonth = s.DisplayedMonth.Next()
	s.discardSelection()
}

// retreatMonth листает сетку на месяц назад, но не раньше текущего месяца.
// На нижней границе клик инертен и выбор не трогает
func (s *SelectionState) retreatMonth(today types.DateStamp) {
	if s.Phase == PhaseSubmitting || s.Phase == PhaseConfirmed {
		return
	}

	current := types.YearMonthOf(today)
	prev := s.DisplayedMonth.Prev()
	if prev.Year < current.Year || (prev.Year == current.Year && prev.Month < current.Month) {
		return
	}
	s.DisplayedMonth = prev
	s.discardSelection()
}

// discardSelection сбрасывает слот и причину, оставляя выбранную дату.
// Фаза возвращается к листанию либо к выбранной дате
func (s *SelectionState) discardSelection() {
	s.SelectedSlot = nil
	s.Reason = ""
	if s.SelectedDate != "" {
		s.Phase = PhaseDateSelected
	} else {
		s.Phase = PhaseBrowsing
	}
}

// selectDate выбирает дату. Клик по прошедшей или недоступной ячейке инертен:
// состояние не меняется и ошибки нет. Смена даты сбрасывает выбранный слот
// и причину визита
func (s *SelectionState) selectDate(date types.DateStamp, cfg *domain.AvailabilityConfig, today types.DateStamp) {
	if s.Phase == PhaseSubmitting || s.Phase == PhaseConfirmed {
		return
	}

	state := CellStateFor(date, cfg, today, s.SelectedDate)
	if state == CellPast || state == CellUnavailable {
		return
	}
	if date.Equal(s.SelectedDate) {
		return
	}

	s.SelectedDate = date
	s.SelectedSlot = nil
	s.Reason = ""
	s.Phase = PhaseDateSelected
}

// selectSlot выбирает слот на уже выбранной дате
func (s *SelectionState) selectSlot(slot SelectedSlot) error {
	if s.Phase != PhaseDateSelected && s.Phase != PhaseTimeSelected {
		return ErrInvalidTransition
	}

	s.SelectedSlot = &slot
	s.Phase = PhaseTimeSelected
	return nil
}

// setReason задает причину визита, допустимо на любой фазе до отправки
func (s *SelectionState) setReason(reason string) error {
	if s.Phase == PhaseSubmitting || s.Phase == PhaseConfirmed {
		return ErrInvalidTransition
	}
	s.Reason = reason
	return nil
}

// beginSubmit переводит заявку в фазу отправки
func (s *SelectionState) beginSubmit() error {
	if s.Phase != PhaseTimeSelected {
		return ErrInvalidTransition
	}
	if s.Reason == "" {
		return ErrReasonRequired
	}
	s.Phase = PhaseSubmitting
	return nil
}

// confirmSubmit фиксирует подтвержденную запись и очищает выбор
func (s *SelectionState) confirmSubmit() error {
	if s.Phase != PhaseSubmitting {
		return ErrInvalidTransition
	}
	s.Phase = PhaseConfirmed
	s.SelectedDate = ""
	s.SelectedSlot = nil
	s.Reason = ""
	return nil
}

// failSubmit возвращает заявку к выбранному слоту. Выбор сохраняется:
// пациент видит отказ и может выбрать другой слот или повторить
func (s *SelectionState) failSubmit() error {
	if s.Phase != PhaseSubmitting {
		return ErrInvalidTransition
	}
	s.Phase = PhaseTimeSelected
	return nil
}

// reset возвращает сессию к чистому листанию текущего месяца
func (s *SelectionState) reset(today types.DateStamp) {
	s.Phase = PhaseBrowsing
	s.DisplayedMonth = types.YearMonthOf(today)
	s.SelectedDate = ""
	s.SelectedSlot = nil
	s.Reason = ""
}

// applyMonthAvailability сохраняет недоступные даты загруженного месяца.
// Побеждает последний завершившийся ответ по каждому месяцу
func (s *SelectionState) applyMonthAvailability(month types.YearMonth, unavailable []types.DateStamp) {
	s.monthUnavailable[month] = append([]types.DateStamp(nil), unavailable...)
}

// CellStateFor вычисляет состояние ячейки сетки. Чистая функция от даты,
// конфигурации, сегодняшней даты и выбранной даты
func CellStateFor(date types.DateStamp, cfg *domain.AvailabilityConfig, today, selected types.DateStamp) CellState {
	if date.Before(today) {
		return CellPast
	}
	if cfg != nil && cfg.IsDateUnavailable(date) {
		return CellUnavailable
	}
	if date.Equal(selected) {
		return CellSelected
	}
	return CellAvailable
}
