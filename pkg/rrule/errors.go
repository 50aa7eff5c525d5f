package rrule

import "errors"

var (
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidWeekDay   = errors.New("invalid weekday")
	ErrInvalidMonthDay  = errors.New("invalid day of month")
	ErrInvalidUntil     = errors.New("invalid until date")
	ErrInvalidExDate    = errors.New("invalid exception date")
	ErrInvalidRule      = errors.New("invalid recurrence rule")
)
