package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a size with binary units, keeping at most one decimal and
// dropping it for whole values: 512B, 1.5KB, 5MB.
func FormatBytes(n int64) string {
	if n < 0 {
		return "-" + FormatBytes(-n)
	}

	size, idx := float64(n), 0
	for size >= 1024 && idx < len(byteUnits)-1 {
		size /= 1024
		idx++
	}

	return strings.TrimSuffix(strconv.FormatFloat(size, 'f', 1, 64), ".0") + byteUnits[idx]
}

// FormatDuration renders elapsed time for command output. Sub-second runs keep
// millisecond precision, longer ones are rounded to the unit that matters.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return d.Round(10 * time.Millisecond).String()
	case d < time.Hour:
		d = d.Round(time.Second)

		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		d = d.Round(time.Minute)

		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
