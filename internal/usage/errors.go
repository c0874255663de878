package usage

import "errors"

// ErrLimitReached indicates the user exceeded their analysis quota.
var ErrLimitReached = errors.New("limit reached")
