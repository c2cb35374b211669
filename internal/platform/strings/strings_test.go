package strings

import (
	"testing"

	"launchdeck/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
)

func TestIfEmpty_FallsBack(t *testing.T) {
	methods := []string{"GET", "POST", "DELETE", "OPTIONS"}
	assert.Equal(t, []string{"GET"}, IfEmpty([]string{"GET"}, methods))
	assert.Equal(t, methods, IfEmpty(nil, methods))
	assert.Equal(t, methods, IfEmpty([]string{}, methods))
}

func TestMustString_PanicsOnBlank(t *testing.T) {
	assert.Equal(t, "dashboard", MustString("dashboard", "module name"))
	testkit.MustPanic(t, func() { MustString(" \t", "module name") }, "module name is required")
}

func TestMustPrefix_PanicsOnBlank(t *testing.T) {
	for in, want := range map[string]string{
		"/launches/":    "/launches",
		" launches ":    "/launches",
		"//dashboard//": "/dashboard",
		"meta":          "/meta",
	} {
		assert.Equal(t, want, MustPrefix(in), "input %q", in)
	}
	for _, in := range []string{"", "/", " // "} {
		testkit.MustPanic(t, func() { MustPrefix(in) }, "route prefix")
	}
}
