package app

import (
	"fmt"

	"github.com/corey/convertx/internal/domain/humanize"
)

// BytesMode selects the rendering of the bytes command.
type BytesMode int

const (
	BytesUnset BytesMode = iota
	BytesMegabytes
	BytesHuman
)

// FormatBytes renders n in the requested mode. ok is false for BytesUnset.
func FormatBytes(n uint64, mode BytesMode) (line string, ok bool) {
	switch mode {
	case BytesMegabytes:
		return fmt.Sprintf("%d bytes = %.2f MB", n, humanize.Megabytes(n)), true
	case BytesHuman:
		return fmt.Sprintf("%d bytes = %s", n, humanize.Bytes(n)), true
	default:
		return "", false
	}
}

// FormatSeconds renders n as "3661 seconds = 1h 1m 1s".
func FormatSeconds(n uint64) string {
	return fmt.Sprintf("%d seconds = %s", n, humanize.Seconds(n))
}
