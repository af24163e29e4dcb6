package schedulecache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakk1890/CureAi/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Debug(format string, v ...interface{}) {}
func (noopLogger) Info(format string, v ...interface{})  {}

func newTestCache(t *testing.T, size int) *Cache {
	t.Helper()
	c, err := New(size, noopLogger{})
	require.NoError(t, err)
	return c
}

func sampleConfig(doctorID string) *domain.AvailabilityConfig {
	cfg := domain.DefaultAvailabilityConfig(doctorID)
	cfg.WorkingHours = append(cfg.WorkingHours, domain.WorkingHourRule{
		Day: domain.Monday, Start: "09:00", End: "17:00",
	})
	return cfg
}

func TestCache_ConfigRoundTrip(t *testing.T) {
	c := newTestCache(t, 4)

	_, ok := c.GetConfig("doc-1")
	assert.False(t, ok)

	c.StoreConfig("doc-1", sampleConfig("doc-1"))

	got, ok := c.GetConfig("doc-1")
	require.True(t, ok)
	assert.Equal(t, "doc-1", got.DoctorID)
	require.Len(t, got.WorkingHours, 1)
}

func TestCache_ConfigSnapshotsAreIsolated(t *testing.T) {
	c := newTestCache(t, 4)

	original := sampleConfig("doc-1")
	c.StoreConfig("doc-1", original)

	// Мутация сохраненного оригинала не видна кэшу
	original.WorkingHours[0].Start = "08:00"

	first, ok := c.GetConfig("doc-1")
	require.True(t, ok)
	assert.Equal(t, "09:00", string(first.WorkingHours[0].Start))

	// Мутация выданного снапшота не видна следующему читателю
	first.WorkingHours[0].Start = "07:00"

	second, ok := c.GetConfig("doc-1")
	require.True(t, ok)
	assert.Equal(t, "09:00", string(second.WorkingHours[0].Start))
}

func TestCache_BookedWindowsReplaceWholesale(t *testing.T) {
	c := newTestCache(t, 4)

	_, ok := c.GetBookedWindows("doc-1")
	assert.False(t, ok)

	c.StoreBookedWindows("doc-1", []domain.BookedWindow{
		{Date: "2026-09-07", TimeSlot: "9:00 AM - 9:30 AM"},
		{Date: "2026-09-07", TimeSlot: "10:00 AM - 10:30 AM"},
	})

	windows, ok := c.GetBookedWindows("doc-1")
	require.True(t, ok)
	assert.Len(t, windows, 2)

	// Повторное сохранение заменяет содержимое целиком, не сливает
	c.StoreBookedWindows("doc-1", []domain.BookedWindow{
		{Date: "2026-09-08", TimeSlot: "2:00 PM - 2:30 PM"},
	})

	windows, ok = c.GetBookedWindows("doc-1")
	require.True(t, ok)
	require.Len(t, windows, 1)
	assert.Equal(t, "2:00 PM - 2:30 PM", windows[0].TimeSlot)
}

func TestCache_EmptyWindowsIsCacheableState(t *testing.T) {
	c := newTestCache(t, 4)

	// Пустой набор окон - валидное кэшированное состояние, не промах
	c.StoreBookedWindows("doc-1", nil)

	windows, ok := c.GetBookedWindows("doc-1")
	assert.True(t, ok)
	assert.Empty(t, windows)
}

func TestCache_InvalidateBookedWindowsKeepsConfig(t *testing.T) {
	c := newTestCache(t, 4)

	c.StoreConfig("doc-1", sampleConfig("doc-1"))
	c.StoreBookedWindows("doc-1", []domain.BookedWindow{
		{Date: "2026-09-07", TimeSlot: "9:00 AM - 9:30 AM"},
	})

	c.InvalidateBookedWindows("doc-1")

	_, ok := c.GetBookedWindows("doc-1")
	assert.False(t, ok)

	_, ok = c.GetConfig("doc-1")
	assert.True(t, ok)
}

func TestCache_InvalidateRemovesEverything(t *testing.T) {
	c := newTestCache(t, 4)

	c.StoreConfig("doc-1", sampleConfig("doc-1"))
	c.StoreBookedWindows("doc-1", []domain.BookedWindow{
		{Date: "2026-09-07", TimeSlot: "9:00 AM - 9:30 AM"},
	})

	c.Invalidate("doc-1")

	_, ok := c.GetConfig("doc-1")
	assert.False(t, ok)
	_, ok = c.GetBookedWindows("doc-1")
	assert.False(t, ok)
}

func TestCache_LRUEviction(t *testing.T) {
	c := newTestCache(t, 2)

	c.StoreConfig("doc-1", sampleConfig("doc-1"))
	c.StoreConfig("doc-2", sampleConfig("doc-2"))
	c.StoreConfig("doc-3", sampleConfig("doc-3"))

	// Самая старая запись вытеснена
	_, ok := c.GetConfig("doc-1")
	assert.False(t, ok)

	_, ok = c.GetConfig("doc-2")
	assert.True(t, ok)
	_, ok = c.GetConfig("doc-3")
	assert.True(t, ok)
}
