package okx

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout for OK-ACCESS-TIMESTAMP values. The exchange requires exactly
// three fractional digits and a literal 'Z' suffix, so the layout uses
// ".000" rather than ".999" which would drop trailing zeros.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders a milliseconds-since-epoch value as the ISO-8601
// UTC string the exchange expects in OK-ACCESS-TIMESTAMP, e.g.
// "2022-02-07T21:37:33.383Z".
func FormatTimestamp(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(timestampLayout)
}

// MillisFromEpochSeconds converts a decimal-seconds epoch string as
// returned by the older API's time endpoint (e.g. "1644270025.791") to
// milliseconds since epoch. The fractional part is truncated or
// zero-padded to millisecond precision.
func MillisFromEpochSeconds(epoch string) (int64, error) {
	secPart, fracPart, _ := strings.Cut(epoch, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing epoch seconds %q | %w", epoch, err)
	}
	if len(fracPart) > 3 {
		fracPart = fracPart[:3]
	}
	for len(fracPart) < 3 {
		fracPart += "0"
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing epoch fraction %q | %w", epoch, err)
	}
	return sec*1000 + frac, nil
}

// MillisFromString parses a milliseconds-since-epoch numeral as returned
// by the v5 API's time endpoint (e.g. "1644499170774").
func MillisFromString(millis string) (int64, error) {
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing epoch millis %q | %w", millis, err)
	}
	return ms, nil
}
