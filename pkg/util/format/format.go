package format

import "fmt"

var units = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count using the largest unit that keeps the
// value at or above one, dropping the decimals for whole values.
func FormatBytes(b int64) string {
	val := float64(b)
	i := 0
	for val >= 1024 && i < len(units)-1 {
		val /= 1024
		i++
	}

	if i == 0 {
		return fmt.Sprintf("%d%s", b, units[0])
	}
	if val == float64(int64(val)) {
		return fmt.Sprintf("%.0f%s", val, units[i])
	}
	return fmt.Sprintf("%.2f%s", val, units[i])
}
