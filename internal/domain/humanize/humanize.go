// Package humanize renders byte counts and second counts for people. These
// are fixed-scale utilities and do not go through the unit registry.
package humanize

import (
	"fmt"
	"strings"
)

const (
	kibi = 1024.0
	mebi = kibi * kibi
)

var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// Megabytes returns n bytes expressed in MiB.
func Megabytes(n uint64) float64 {
	return float64(n) / mebi
}

// Bytes scales n by 1024 until it drops below 1024 or the largest unit is
// reached, e.g. 1536 -> "1.50 KB".
func Bytes(n uint64) string {
	size := float64(n)
	idx := 0
	for size >= kibi && idx < len(byteUnits)-1 {
		size /= kibi
		idx++
	}
	return fmt.Sprintf("%.2f %s", size, byteUnits[idx])
}

// Seconds breaks n into days, hours, minutes and seconds and prints the
// nonzero parts, largest first: 90061 -> "1d 1h 1m 1s". Zero prints "0s".
func Seconds(n uint64) string {
	minutes, secs := n/60, n%60
	hours, minutes := minutes/60, minutes%60
	days, hours := hours/24, hours%24

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}
