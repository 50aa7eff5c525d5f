// Package rrule assembles RFC 5545 recurrence rules from simple form fields
// and previews them with github.com/teambition/rrule-go.
package rrule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Build returns the RRULE line for opts, or "" when opts.Freq is FreqNone.
//
// INTERVAL is emitted only when greater than 1, BYDAY only for WEEKLY and
// BYMONTHDAY only for MONTHLY/YEARLY. COUNT wins over UNTIL. UNTIL is the
// given calendar date at 23:59:59 UTC.
func Build(opts Options) (string, error) {
	freq := Frequency(strings.ToUpper(string(opts.Freq)))
	if freq == FreqNone || freq == "" {
		return "", nil
	}
	if !freq.valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, opts.Freq)
	}

	parts := []string{"FREQ=" + string(freq)}

	if opts.Interval > 1 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(opts.Interval))
	}

	if freq == FreqWeekly && len(opts.ByWeekDays) > 0 {
		days := make([]string, 0, len(opts.ByWeekDays))
		for _, d := range opts.ByWeekDays {
			d = strings.ToUpper(strings.TrimSpace(d))
			if !validWeekDays[d] {
				return "", fmt.Errorf("%w: %q", ErrInvalidWeekDay, d)
			}
			days = append(days, d)
		}
		parts = append(parts, "BYDAY="+strings.Join(days, ","))
	}

	if (freq == FreqMonthly || freq == FreqYearly) && opts.ByMonthDay != 0 {
		if opts.ByMonthDay < -31 || opts.ByMonthDay > 31 {
			return "", fmt.Errorf("%w: %d", ErrInvalidMonthDay, opts.ByMonthDay)
		}
		parts = append(parts, "BYMONTHDAY="+strconv.Itoa(opts.ByMonthDay))
	}

	if opts.Count > 0 {
		parts = append(parts, "COUNT="+strconv.Itoa(opts.Count))
	} else if opts.Until != "" {
		until, err := time.Parse(DateLayout, opts.Until)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidUntil, opts.Until)
		}
		parts = append(parts, "UNTIL="+until.Format("20060102")+"T235959Z")
	}

	return Prefix + strings.Join(parts, ";"), nil
}

// Validate reports whether rule parses as a recurrence rule.
func Validate(rule string) error {
	if _, err := rrule.StrToROption(strings.TrimPrefix(rule, Prefix)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return nil
}

// Occurrences returns up to n instances of rule starting at dtstart.
func Occurrences(rule string, dtstart time.Time, n int) ([]time.Time, error) {
	opt, err := rrule.StrToROption(strings.TrimPrefix(rule, Prefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	opt.Dtstart = dtstart

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	out := make([]time.Time, 0, n)
	next := r.Iterator()
	for len(out) < n {
		t, ok := next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

// ExDate renders an EXDATE line excluding each of dates (YYYY-MM-DD) at the
// wall-clock time of start in start's location.
func ExDate(dates []string, start time.Time) (string, error) {
	if len(dates) == 0 {
		return "", nil
	}

	clock := start.Format("150405")
	values := make([]string, 0, len(dates))
	for _, raw := range dates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		d, err := time.Parse(DateLayout, raw)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidExDate, raw)
		}
		values = append(values, d.Format("20060102")+"T"+clock)
	}
	if len(values) == 0 {
		return "", nil
	}

	return fmt.Sprintf("EXDATE;TZID=%s:%s", start.Location().String(), strings.Join(values, ",")), nil
}

// ExDateAllDay renders an EXDATE line of whole dates for an all-day series.
func ExDateAllDay(dates []string) (string, error) {
	values := make([]string, 0, len(dates))
	for _, raw := range dates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		d, err := time.Parse(DateLayout, raw)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidExDate, raw)
		}
		values = append(values, d.Format("20060102"))
	}
	if len(values) == 0 {
		return "", nil
	}
	return "EXDATE;VALUE=DATE:" + strings.Join(values, ","), nil
}
