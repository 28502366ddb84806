package quiz

import "strconv"

// Summary is the final correct/total count reported once per session.
type Summary struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// String formats the summary as "<correct> / <total>".
func (s Summary) String() string {
	return strconv.Itoa(s.Correct) + " / " + strconv.Itoa(s.Total)
}
