package usage

import (
	"strings"
	"time"
)

const usagePeriod = 7 * 24 * time.Hour

// defaultUsageFor returns the starting quota for a user. Guests get a
// smaller allowance than signed-in users.
func defaultUsageFor(userID string) Usage {
	u := Usage{
		Plan:     "Free",
		Limit:    25,
		Used:     0,
		ResetsAt: time.Now().UTC().Add(usagePeriod),
	}
	if strings.HasPrefix(userID, "guest:") {
		u.Plan = "Guest"
		u.Limit = 5
	}
	return u
}
