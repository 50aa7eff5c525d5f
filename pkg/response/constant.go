package response

import "time"

const (
	MessageSuccess = "Success"

	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)
