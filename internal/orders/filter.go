package orders

import (
	"log/slog"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FilterCriteria refines an already-loaded result set. Dates carry date-only
// semantics: DateFrom matches from the start of its day, DateTo through
// 23:59:59.999 of its day, both inclusive.
type FilterCriteria struct {
	DateFrom    *time.Time
	DateTo      *time.Time
	PartnerName string
}

// Empty reports whether the criteria narrow anything.
func (c FilterCriteria) Empty() bool {
	return c.DateFrom == nil && c.DateTo == nil && c.PartnerName == ""
}

// ApplyFilter returns the subsequence of records matching the criteria,
// preserving relative order. It is pure apart from logging: a record whose
// payload cannot be decoded stays in the base set and is only excluded by
// an active partner filter (its partner name reads as empty, and an empty
// name never matches a non-empty query).
func ApplyFilter(records []OrderAttempt, c FilterCriteria, logger *slog.Logger) []OrderAttempt {
	if c.Empty() {
		return records
	}

	var from, to time.Time
	if c.DateFrom != nil {
		from = startOfDay(*c.DateFrom)
	}
	if c.DateTo != nil {
		to = endOfDay(*c.DateTo)
	}
	partner := foldAccents(c.PartnerName)

	out := make([]OrderAttempt, 0, len(records))
	for _, rec := range records {
		if c.DateFrom != nil && rec.CreatedAt.Before(from) {
			continue
		}
		if c.DateTo != nil && rec.CreatedAt.After(to) {
			continue
		}
		if partner != "" {
			if rec.Payload != nil && !rec.Payload.Valid() && logger != nil {
				logger.Warn("malformed payload while filtering", slog.Int64("id", rec.ID))
			}
			name := ""
			if rec.Payload != nil {
				name = rec.Payload.PartnerName()
			}
			if !strings.Contains(foldAccents(name), partner) {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldAccents lowercases and strips combining marks so PT-BR partner names
// match regardless of accents ("São João" contains "sao joao").
func foldAccents(s string) string {
	stripped, _, err := transform.String(accentStripper, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(stripped)
}
