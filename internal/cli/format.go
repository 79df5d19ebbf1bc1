package cli

import (
	"fmt"
	"time"

	"blockday/internal/domain"
)

// statusGlyph renders a status as the board's checkbox notation
func statusGlyph(status domain.Status) string {
	switch status {
	case domain.StatusDone:
		return "[x]"
	case domain.StatusPartial:
		return "[~]"
	default:
		return "[ ]"
	}
}

// formatStart renders a schedule block's start as HH:MM
func formatStart(block domain.ScheduleBlock) string {
	return fmt.Sprintf("%02d:%02d", block.StartHour, block.StartMinute)
}

// formatBlock renders a schedule block as a start-end range
func formatBlock(block domain.ScheduleBlock) string {
	start := block.StartMinutes()
	end := start + int(block.DurationHours*60)
	// Blocks that run past midnight wrap on the clock
	end %= 24 * 60
	return fmt.Sprintf("%02d:%02d-%02d:%02d", start/60, start%60, end/60, end%60)
}

// formatDuration renders fractional hours compactly: 1h, 1.5h, 45m
func formatDuration(hours float64) string {
	minutes := int(hours * 60)
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// formatSeconds renders a duration in whole seconds as h/m/s
func formatSeconds(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
