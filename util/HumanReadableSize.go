package util

import "fmt"

// HumanReadableSize formats a byte count for display, using the largest
// unit that keeps the value above 1 (capped at TB).
func HumanReadableSize(size int64) string {
	const unit = 1024

	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	units := []string{"KB", "MB", "GB", "TB"}
	value := float64(size) / unit
	for _, u := range units {
		if value < unit || u == "TB" {
			return fmt.Sprintf("%.1f %s", value, u)
		}
		value /= unit
	}
	return fmt.Sprintf("%.1f TB", value)
}
