package raw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_TrimsValue(t *testing.T) {
	t.Setenv("LOG_LEVEL", " warn ")
	t.Setenv("LOG_FORMAT", "   ")

	c := New().Prefix("LOG_")
	assert.Equal(t, "warn", c.Get("LEVEL", "debug"))
	assert.Equal(t, "console", c.Get("FORMAT", "console"))
	assert.Equal(t, "x", c.Get("UNSET", "x"))
	assert.Equal(t, "warn", New().Get("LOG_LEVEL", ""))
}

func TestBool_Parses(t *testing.T) {
	c := New().Prefix("LOG_")
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"TRUE", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"0", true, false},
		{"off", true, false},
		{"No", true, false},
		{"sometimes", true, true},
		{"sometimes", false, false},
	}
	for _, tc := range cases {
		t.Setenv("LOG_CALLER", tc.val)
		assert.Equal(t, tc.want, c.Bool("CALLER", tc.def), "value %q", tc.val)
	}
}
