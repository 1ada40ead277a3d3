// Package duration converts the YouTube duration encoding (PT#H#M#S) into
// display strings and seconds.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var encodingRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

type Components struct {
	Hours   int
	Minutes int
	Seconds int
}

// Decode never fails: an encoding that does not match the grammar yields
// zero components.
func Decode(encoding string) Components {
	m := encodingRe.FindStringSubmatch(encoding)
	if m == nil {
		return Components{}
	}

	return Components{
		Hours:   atoi(m[1]),
		Minutes: atoi(m[2]),
		Seconds: atoi(m[3]),
	}
}

func Encode(c Components) string {
	var b strings.Builder
	b.WriteString("PT")
	if c.Hours > 0 {
		fmt.Fprintf(&b, "%dH", c.Hours)
	}
	if c.Minutes > 0 {
		fmt.Fprintf(&b, "%dM", c.Minutes)
	}
	if c.Seconds > 0 || (c.Hours == 0 && c.Minutes == 0) {
		fmt.Fprintf(&b, "%dS", c.Seconds)
	}

	return b.String()
}

// DisplayShort renders HH:MM:SS when there are hours and MM:SS otherwise.
func DisplayShort(encoding string) string {
	c := Decode(encoding)
	if c.Hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
	}

	return fmt.Sprintf("%02d:%02d", c.Minutes, c.Seconds)
}

func Seconds(encoding string) int {
	c := Decode(encoding)
	return c.Hours*3600 + c.Minutes*60 + c.Seconds
}

// DisplayLong always renders the hours, which may take more than two digits.
func DisplayLong(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
