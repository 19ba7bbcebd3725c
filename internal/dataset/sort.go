package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"timeplay/internal/domain"
)

// dateLayouts are tried in order when a CSV sort cell is not a number
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
	"01/02/2006",
}

// ParseSortKey turns a raw text cell into the most specific key type:
// a number, then a date, otherwise the trimmed string
func ParseSortKey(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return s
}

// normalizeKey maps decoded values onto float64, time.Time or string
func normalizeKey(v any) any {
	switch k := v.(type) {
	case nil:
		return nil
	case int:
		return float64(k)
	case int64:
		return float64(k)
	case int32:
		return float64(k)
	case uint64:
		return float64(k)
	case float32:
		return float64(k)
	case float64:
		return k
	case time.Time:
		return k
	case toml.LocalDate:
		return k.AsTime(time.UTC)
	case toml.LocalDateTime:
		return k.AsTime(time.UTC)
	case string:
		return k
	default:
		return fmt.Sprint(k)
	}
}

// CompareKeys orders two sort keys. Numbers compare numerically and times
// chronologically. Mixed or other types fall back to their string form.
// Missing keys sort last.
func CompareKeys(a, b any) int {
	a, b = normalizeKey(a), normalizeKey(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	switch x := a.(type) {
	case float64:
		if y, ok := b.(float64); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// SortItems stable-sorts items by sort key in place. Items without a key
// stay at the end in both directions.
func SortItems(items []domain.Item, ascending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].SortKey, items[j].SortKey
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		c := CompareKeys(a, b)
		if ascending {
			return c < 0
		}
		return c > 0
	})
}
