package rrule

const (
	Prefix     = "RRULE:"
	DateLayout = "2006-01-02"
)

var validWeekDays = map[string]bool{
	"MO": true, "TU": true, "WE": true, "TH": true, "FR": true, "SA": true, "SU": true,
}
