package generate_slots

import (
	"strings"
	"time"

	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// generateCandidates генерирует все структурно возможные слоты на дату:
// курсор идет от начала каждого рабочего окна с шагом SlotDurationMinutes,
// слот принимается, пока встреча вместе с буфером помещается в окно.
// Конфликты с перерывами и разовыми блокировками отбрасывают слот,
// но НЕ сдвигают курсор - сетка стартовых времен остается стабильной
func generateCandidates(cfg *domain.AvailabilityConfig, date types.DateStamp) []domain.SlotCandidate {
	day := domain.WeekdayOf(date.Weekday())

	windows := cfg.WorkingHoursFor(day)
	breaks := cfg.RecurringBreaksFor(day)
	blocked := cfg.BlockedIntervalsOn(date)

	step := cfg.SlotDurationMinutes
	total := cfg.TotalSlotMinutes()
	if step <= 0 || total <= 0 {
		return []domain.SlotCandidate{}
	}

	candidates := make([]domain.SlotCandidate, 0)

	for _, window := range windows {
		windowEnd := window.End.Minutes()

		for cursor := window.Start.Minutes(); cursor+total <= windowEnd; cursor += step {
			start, err := types.NewTimeStringFromMinutes(cursor)
			if err != nil {
				break
			}
			// Окно занятости слота - сама встреча, буфер пациенту не показывается
			end, err := types.NewTimeStringFromMinutes(cursor + cfg.MeetingLengthMinutes)
			if err != nil {
				break
			}

			if conflictsWithBreaks(start, end, breaks) {
				continue
			}
			if conflictsWithBlocked(start, end, blocked) {
				continue
			}

			candidates = append(candidates, domain.NewSlotCandidate(start, end))
		}
	}

	return candidates
}

// conflictsWithBreaks проверяет пересечение окна занятости с перерывами.
// Полуоткрытые интервалы: слот, заканчивающийся ровно в начале перерыва
// (или начинающийся ровно в его конце), конфликтом не считается
func conflictsWithBreaks(start, end types.TimeString, breaks []domain.TimeWindow) bool {
	for _, brk := range breaks {
		if types.Overlaps(start, end, brk.Start, brk.End) {
			return true
		}
	}
	return false
}

// conflictsWithBlocked проверяет пересечение окна занятости с разовыми
// блокировками. Проверка нестрогая: засчитывается граница блокировки строго
// внутри слота либо полное вложение одного интервала в другой
func conflictsWithBlocked(start, end types.TimeString, blocked []domain.TimeWindow) bool {
	for _, b := range blocked {
		if types.LooseOverlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// filterBooked убирает из кандидатов слоты, занятые подтвержденными записями.
// В обычном режиме сравнение идет по точному совпадению метки диапазона -
// так резервирует слоты сервис записей, и так совпадение остается устойчивым
// к смене параметров сетки только при их неизменности. Строгий режим
// (strict_overlap_check) дополнительно разбирает метку занятого окна обратно
// в интервал и отбрасывает любое реальное пересечение по времени
func filterBooked(
	candidates []domain.SlotCandidate,
	date types.DateStamp,
	booked []domain.BookedWindow,
	strictOverlap bool,
) []domain.SlotCandidate {
	if len(booked) == 0 {
		return candidates
	}

	free := make([]domain.SlotCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		if isBooked(candidate, date, booked, strictOverlap) {
			continue
		}
		free = append(free, candidate)
	}

	return free
}

func isBooked(candidate domain.SlotCandidate, date types.DateStamp, booked []domain.BookedWindow, strictOverlap bool) bool {
	for _, window := range booked {
		if !window.Date.Equal(date) {
			continue
		}

		if window.TimeSlot == candidate.TimeSlot {
			return true
		}

		if strictOverlap {
			bookedStart, bookedEnd, ok := parseRangeLabel(window.TimeSlot)
			if ok && types.Overlaps(candidate.Start, candidate.End, bookedStart, bookedEnd) {
				return true
			}
		}
	}

	return false
}

// parseRangeLabel разбирает метку диапазона "9:00 AM - 9:30 AM" обратно
// в пару времен. Нераспознаваемая метка не ошибка: такое окно сравнивается
// только по точному совпадению строк
func parseRangeLabel(label string) (types.TimeString, types.TimeString, bool) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return "", "", false
	}

	start, err := time.Parse("3:04 PM", strings.TrimSpace(parts[0]))
	if err != nil {
		return "", "", false
	}
	end, err := time.Parse("3:04 PM", strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", false
	}

	return types.NewTimeString(start), types.NewTimeString(end), true
}

// splitBuckets раскладывает слоты по корзинам: утро до 12:00, день с 12:00.
// Порядок внутри корзины сохраняет порядок генерации (по возрастанию времени)
func splitBuckets(candidates []domain.SlotCandidate) (morning, afternoon []Slot) {
	morning = make([]Slot, 0, len(candidates))
	afternoon = make([]Slot, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.IsMorning() {
			morning = append(morning, slotFromCandidate(candidate))
		} else {
			afternoon = append(afternoon, slotFromCandidate(candidate))
		}
	}

	return morning, afternoon
}

// normalizeTiming подставляет дефолтные параметры сетки вместо отсутствующих.
// Коллаборатор может вернуть конфигурацию без таймингов - это не ошибка
func normalizeTiming(cfg *domain.AvailabilityConfig) {
	if cfg.SlotDurationMinutes <= 0 {
		cfg.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cfg.MeetingLengthMinutes <= 0 {
		cfg.MeetingLengthMinutes = domain.DefaultMeetingLengthMinutes
	}
	if cfg.BufferTimeMinutes < 0 {
		cfg.BufferTimeMinutes = domain.DefaultBufferTimeMinutes
	}
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date types.DateStamp, now time.Time) bool {
	return date.Before(types.NewDateStamp(now))
}
