package common

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	testCases := []struct {
		input string
		want  int
		valid bool
	}{
		{input: "1", want: 1, valid: true},
		{input: "999", want: 999, valid: true},
		{input: "007", want: 7, valid: true},
		{input: strconv.Itoa(MaxID), want: MaxID, valid: true},
		{input: strconv.Itoa(MaxID + 1), valid: false},
		{input: "99999999999999999999999", valid: false},
		{input: "0", valid: false},
		{input: "-1", valid: false},
		{input: "+1", valid: false},
		{input: "12abc", valid: false},
		{input: "abc123", valid: false},
		{input: "12.5", valid: false},
		{input: "1e3", valid: false},
		{input: " 1", valid: false},
		{input: "null", valid: false},
		{input: "undefined", valid: false},
		{input: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			id, err := ParseID(tc.input)
			if !tc.valid {
				assert.ErrorIs(t, err, ErrInvalidID)
				assert.Zero(t, id)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
