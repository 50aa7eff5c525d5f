package rrule

// Frequency is the FREQ part of a rule. FreqNone means "does not repeat".
type Frequency string

const (
	FreqNone    Frequency = "NONE"
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

func (f Frequency) valid() bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
		return true
	}
	return false
}

// Options are the form fields a rule is built from.
type Options struct {
	Freq       Frequency `json:"freq"`
	Interval   int       `json:"interval,omitempty"`
	ByWeekDays []string  `json:"by_week_days,omitempty"` // MO..SU, WEEKLY only
	ByMonthDay int       `json:"by_month_day,omitempty"` // MONTHLY/YEARLY only
	Count      int       `json:"count,omitempty"`
	Until      string    `json:"until,omitempty"` // YYYY-MM-DD
}
