package testutil

import "testing"

func TestFormatMessage(t *testing.T) {
	var tests = []struct {
		args []interface{}
		want string
	}{
		{nil, ""},
		{[]interface{}{"plain"}, "plain"},
		{[]interface{}{"fen", 3, true}, "fen 3 true"},
		{[]interface{}{"ParseMove(%q)", "e9"}, "ParseMove(%q) e9"},
	}
	for _, test := range tests {
		var got = formatMessage(test.args...)
		if got != test.want {
			t.Errorf("formatMessage(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
