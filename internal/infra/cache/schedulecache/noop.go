package schedulecache

import "github.com/sarthakk1890/CureAi/internal/domain"

// Noop кэш-заглушка для выключенного кэширования: каждый запрос идет
// к внешним сервисам напрямую
type Noop struct{}

// NewNoop создает отключенный кэш
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) GetConfig(string) (*domain.AvailabilityConfig, bool) { return nil, false }

func (*Noop) StoreConfig(string, *domain.AvailabilityConfig) {}

func (*Noop) GetBookedWindows(string) ([]domain.BookedWindow, bool) { return nil, false }

func (*Noop) StoreBookedWindows(string, []domain.BookedWindow) {}

func (*Noop) InvalidateBookedWindows(string) {}

func (*Noop) Invalidate(string) {}
