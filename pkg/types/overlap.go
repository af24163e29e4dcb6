package types

// Overlaps проверяет пересечение двух полуинтервалов [startA, endA) и [startB, endB)
// Граничные случаи пересечением не считаются: интервалы, которые только
// соприкасаются концами, не накладываются друг на друга
func Overlaps(startA, endA, startB, endB TimeString) bool {
	return startA.Minutes() < endB.Minutes() && startB.Minutes() < endA.Minutes()
}

// LooseOverlaps проверяет пересечение по трем условиям: граница одного интервала
// строго внутри другого, либо один интервал полностью содержит другой.
// Используется для заблокированных интервалов - правило отличается от Overlaps
// и должно сохраняться как есть, его смягчение ломает защиту от записи в занятое время
func LooseOverlaps(startA, endA, startB, endB TimeString) bool {
	aStart, aEnd := startA.Minutes(), endA.Minutes()
	bStart, bEnd := startB.Minutes(), endB.Minutes()

	// Начало или конец B строго внутри A
	if (bStart > aStart && bStart < aEnd) || (bEnd > aStart && bEnd < aEnd) {
		return true
	}

	// B полностью содержит A
	if bStart <= aStart && bEnd >= aEnd {
		return true
	}

	// A полностью содержит B
	if aStart <= bStart && aEnd >= bEnd {
		return true
	}

	return false
}
