package driver

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sailfin-io/tap-xero/types"
)

// The API serializes timestamps in the legacy .NET JSON form
// /Date(1419937200000+0000)/ embedding epoch milliseconds and a UTC offset.
var dotnetDatePattern = regexp.MustCompile(`^/Date\((-?\d+)([+-]\d{4})?\)/$`)

const normalizedTimeLayout = "2006-01-02T15:04:05.000000Z"

// NormalizeDates rewrites every .NET-encoded date anywhere inside the record
// to an RFC3339 UTC string with microsecond precision. Pure in behavior and
// total: values that do not look like encoded dates are left byte-identical.
// The record is mutated in place and returned for convenience.
func NormalizeDates(record types.Record) types.Record {
	for key, value := range record {
		record[key] = normalizeValue(value)
	}
	return record
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case string:
		if !strings.Contains(v, "/Date(") {
			return v
		}
		return parseDotnetDate(v)
	case map[string]any:
		return NormalizeDates(v)
	case []any:
		for i, item := range v {
			if nested, ok := item.(map[string]any); ok {
				v[i] = NormalizeDates(nested)
			}
		}
		return v
	default:
		return value
	}
}

// parseDotnetDate converts one encoded date to the normalized layout.
// Pre-epoch values clamp to epoch zero. Date-shaped strings that fail to
// parse become nil rather than leaking the raw encoding downstream.
func parseDotnetDate(value string) any {
	match := dotnetDatePattern.FindStringSubmatch(value)
	if match == nil {
		return nil
	}

	millis, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		// digits that overflow int64 are as malformed as any other
		// unparseable date string
		return nil
	}
	if millis < 0 {
		millis = 0
	}

	return time.UnixMilli(millis).UTC().Format(normalizedTimeLayout)
}
