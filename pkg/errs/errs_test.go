package errs

import (
	"testing"
)

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		OutOfRange{What: "list index here", ValidLow: 0, ValidHigh: 2, Actual: "3"},
		"out of range: list index here must be from 0 to 2, but is 3",
	},
	{
		OutOfRange{What: "list index here", ValidLow: 1, ValidHigh: 0, Actual: "0"},
		"out of range: list index here has no valid value, but is 0",
	},
	{
		IndexOutOfRange(5, 5),
		"out of range: index must be from 0 to 4, but is 5",
	},
	{
		IndexOutOfRange(-1, 3),
		"out of range: index must be from 0 to 2, but is -1",
	},
	{
		IndexOutOfRange(0, 0),
		"out of range: index has no valid value, but is 0",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}
