package generate_slots

import (
	"github.com/sarthakk1890/CureAi/internal/domain"
	"github.com/sarthakk1890/CureAi/pkg/types"
)

// Request модель запроса на генерацию слотов
type Request struct {
	DoctorID string          // ID доктора
	Date     types.DateStamp // Дата, на которую запрашиваются слоты
}

// Response модель ответа с двумя корзинами слотов.
// Обе корзины пустые - валидный результат, а не ошибка: у доктора просто
// нет свободного времени в этот день
type Response struct {
	DoctorID string          // ID доктора
	Date     types.DateStamp // Дата, на которую генерировались слоты
	Degraded bool            // Занятые окна получить не удалось, показаны все структурные слоты

	Morning   []Slot // Слоты до 12:00
	Afternoon []Slot // Слоты с 12:00 и позже
}

// Slot модель предлагаемого пациенту слота
type Slot struct {
	StartTime types.TimeString // Время начала приема ("09:00")
	EndTime   types.TimeString // Время конца приема, без буфера ("09:30")
	Label     string           // Отображаемая метка начала ("9:00 AM")
	TimeSlot  string           // Метка диапазона, под которой слот бронируется ("9:00 AM - 9:30 AM")
}

func slotFromCandidate(c domain.SlotCandidate) Slot {
	return Slot{
		StartTime: c.Start,
		EndTime:   c.End,
		Label:     c.Label,
		TimeSlot:  c.TimeSlot,
	}
}
