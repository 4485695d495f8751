package common

import (
	"errors"
	"regexp"
	"strconv"
)

// MaxID is the largest id accepted from a request, 2^53-1, so every id the
// API hands out survives a round trip through a JSON number.
const MaxID = 1<<53 - 1

var (
	ErrInvalidID = errors.New("invalid ID parameter")

	idRX = regexp.MustCompile(`^[0-9]+$`)
)

// ParseID accepts only unsigned base-10 digits naming a value in [1, MaxID].
func ParseID(s string) (int, error) {
	if !idRX.MatchString(s) {
		return 0, ErrInvalidID
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 || id > MaxID {
		return 0, ErrInvalidID
	}

	return int(id), nil
}
