package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// Submit reasons for quiz attempts. Both converge on the same scoring path.
const (
	SubmitManual      = "manual"
	SubmitTimeExpired = "time_expired"
)
