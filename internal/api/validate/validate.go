package validate

import (
	"fmt"
	"regexp"
)

// meetingIdRx matches seed identifiers ("1") and locally generated ones
// ("local-1735689600000").
var meetingIdRx = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)

// monthKeyRx matches the "YYYY-MM" bucket keys used by the archive.
var monthKeyRx = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MeetingID validates a meeting identifier taken from a URL path.
func MeetingID(v string) error {
	if v == "" {
		return fmt.Errorf("meetingId is required")
	}
	if !meetingIdRx.MatchString(v) {
		return fmt.Errorf("meetingId must match %s", meetingIdRx.String())
	}
	return nil
}

// MonthKey validates a "YYYY-MM" archive bucket key.
func MonthKey(v string) error {
	if v == "" {
		return fmt.Errorf("month is required")
	}
	if !monthKeyRx.MatchString(v) {
		return fmt.Errorf("month must be in YYYY-MM form")
	}
	return nil
}
