package shift

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const minutesPerDay = 24 * 60

// CalcWorkHours computes the net working hours of a shift from its start and
// end times ("HH:MM") and its break. An end before the start means the shift
// runs past midnight. A break that consumes the whole span is rejected rather
// than clamped.
func CalcWorkHours(start, end string, breakMinutes int) (hours float64, overnight bool, err error) {
	startMin, err := parseClock(start)
	if err != nil {
		return 0, false, errors.Wrap(err, "parsing start time")
	}

	endMin, err := parseClock(end)
	if err != nil {
		return 0, false, errors.Wrap(err, "parsing end time")
	}

	if breakMinutes < 0 {
		return 0, false, errors.New("break minutes must not be negative")
	}

	if endMin < startMin {
		endMin += minutesPerDay
		overnight = true
	}

	net := endMin - startMin - breakMinutes
	if net <= 0 {
		return 0, false, errors.New("break exceeds shift duration")
	}

	hours = math.Round(float64(net)/60*100) / 100

	return hours, overnight, nil
}

// parseClock converts "HH:MM" to minutes since midnight. Seconds are accepted
// and ignored so values read back from the database ("09:00:00") also parse.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return h*60 + m, nil
}
