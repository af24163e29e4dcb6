package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	// Частичное пересечение
	assert.True(t, Overlaps("09:00", "10:00", "09:30", "10:30"))
	assert.True(t, Overlaps("09:30", "10:30", "09:00", "10:00"))

	// Вложенность
	assert.True(t, Overlaps("09:00", "12:00", "10:00", "11:00"))
	assert.True(t, Overlaps("10:00", "11:00", "09:00", "12:00"))

	// Соприкосновение концами - не пересечение
	assert.False(t, Overlaps("09:00", "10:00", "10:00", "11:00"))
	assert.False(t, Overlaps("10:00", "11:00", "09:00", "10:00"))

	// Разнесенные интервалы
	assert.False(t, Overlaps("09:00", "10:00", "11:00", "12:00"))
}

func TestLooseOverlaps(t *testing.T) {
	// Граница B строго внутри A
	assert.True(t, LooseOverlaps("09:00", "10:00", "09:30", "10:30"))
	assert.True(t, LooseOverlaps("09:00", "10:00", "08:30", "09:30"))

	// B содержит A
	assert.True(t, LooseOverlaps("09:30", "10:00", "09:00", "11:00"))

	// A содержит B
	assert.True(t, LooseOverlaps("09:00", "11:00", "09:30", "10:00"))

	// Точное совпадение считается пересечением (взаимное содержание)
	assert.True(t, LooseOverlaps("09:00", "10:00", "09:00", "10:00"))

	// Соприкосновение концами без содержания
	assert.False(t, LooseOverlaps("09:00", "10:00", "10:00", "11:00"))
	assert.False(t, LooseOverlaps("10:00", "11:00", "09:00", "10:00"))

	// Разнесенные интервалы
	assert.False(t, LooseOverlaps("09:00", "10:00", "11:00", "12:00"))
}
