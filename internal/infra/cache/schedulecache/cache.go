package schedulecache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sarthakk1890/CureAi/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
}

// entry кэшированное состояние одного доктора
type entry struct {
	Config        *domain.AvailabilityConfig
	BookedWindows []domain.BookedWindow
	HasWindows    bool
}

// Cache in-memory LRU кэш конфигураций доступности и занятых окон по докторам.
// Единственный разделяемый мутабельный ресурс ядра: занятые окна после успешной
// записи заменяются целиком (refresh, не merge), генератор всегда читает
// текущее содержимое кэша как истину без собственного отслеживания устаревания
type Cache struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, *entry]
	log   Logger
}

// New создает кэш на указанное количество докторов
func New(size int, log Logger) (*Cache, error) {
	inner, err := lru.New[string, *entry](size)
	if err != nil {
		return nil, err
	}

	return &Cache{
		cache: inner,
		log:   log,
	}, nil
}

// GetConfig возвращает кэшированную конфигурацию доктора
func (c *Cache) GetConfig(doctorID string) (*domain.AvailabilityConfig, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.cache.Get(doctorID)
	if !exists || e.Config == nil {
		return nil, false
	}

	// Генератору отдается снапшот - кэшированная конфигурация неизменяема
	return e.Config.Clone(), true
}

// StoreConfig сохраняет конфигурацию доктора
func (c *Cache) StoreConfig(doctorID string, cfg *domain.AvailabilityConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.cache.Get(doctorID)
	if !exists {
		e = &entry{}
	}
	e.Config = cfg.Clone()
	c.cache.Add(doctorID, e)

	c.log.Debug("schedulecache: stored config for doctor=%s", doctorID)
}

// GetBookedWindows возвращает кэшированные занятые окна доктора
func (c *Cache) GetBookedWindows(doctorID string) ([]domain.BookedWindow, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.cache.Get(doctorID)
	if !exists || !e.HasWindows {
		return nil, false
	}

	return append([]domain.BookedWindow(nil), e.BookedWindows...), true
}

// StoreBookedWindows заменяет занятые окна доктора целиком
func (c *Cache) StoreBookedWindows(doctorID string, windows []domain.BookedWindow) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.cache.Get(doctorID)
	if !exists {
		e = &entry{}
	}
	e.BookedWindows = append([]domain.BookedWindow(nil), windows...)
	e.HasWindows = true
	c.cache.Add(doctorID, e)

	c.log.Debug("schedulecache: stored %d booked windows for doctor=%s", len(windows), doctorID)
}

// InvalidateBookedWindows сбрасывает занятые окна доктора
// Вызывается после успешной записи: следующая генерация слотов обязана
// перечитать окна у сервиса записей и сразу учесть новую бронь
func (c *Cache) InvalidateBookedWindows(doctorID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.cache.Get(doctorID)
	if !exists {
		return
	}
	e.BookedWindows = nil
	e.HasWindows = false
	c.cache.Add(doctorID, e)

	c.log.Debug("schedulecache: invalidated booked windows for doctor=%s", doctorID)
}

// Invalidate удаляет все данные доктора из кэша
func (c *Cache) Invalidate(doctorID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Remove(doctorID)
}
