package colors

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/vladimir-rom/blueorgreen/cmd/config"
)

func TestColorizer(t *testing.T) {
	testee := newTestColorizer(config.Palette{
		"teal":  {36, 1},
		"Olive": {33},
		"green": {32, 4},
		"empty": {},
	})

	checkColor(t, testee, "blue", color.FgBlue)
	checkColor(t, testee, "BLUE", color.FgBlue)
	checkColor(t, testee, "red", color.FgRed)
	checkColor(t, testee, "teal", color.FgCyan, color.Bold)
	checkColor(t, testee, "olive", color.FgYellow)
	checkColor(t, testee, "green", color.FgGreen, color.Underline)
	checkColor(t, testee, "empty")
	checkColor(t, testee, "unknown color")
	checkColor(t, testee, "")
}

func TestColorizerDisabled(t *testing.T) {
	testee := newTestColorizer(nil)
	testee.Enabled = false
	checkColor(t, testee, "blue")
}

func TestKnown(t *testing.T) {
	testee := newTestColorizer(config.Palette{"teal": {36}, "blue": {34, 1}})
	require.Equal(t,
		[]string{"black", "blue", "cyan", "green", "magenta", "red", "teal", "white", "yellow"},
		testee.Known())
}

func TestCaseCollidingPaletteNames(t *testing.T) {
	for i := 0; i < 50; i++ {
		testee := newTestColorizer(config.Palette{"Teal": {36}, "teal": {31}})
		checkColor(t, testee, "teal", color.FgRed)
		checkColor(t, testee, "TEAL", color.FgRed)
	}
}

func TestKnownFoldsPaletteNames(t *testing.T) {
	testee := newTestColorizer(config.Palette{"Blue": {34, 1}, "TEAL": {36}})
	require.Equal(t,
		[]string{"black", "blue", "cyan", "green", "magenta", "red", "teal", "white", "yellow"},
		testee.Known())
	checkColor(t, testee, "blue", color.FgBlue, color.Bold)
}

func newTestColorizer(palette config.Palette) *Colorizer {
	c := NewColorizer(palette, colorBuilder)
	c.Enabled = true
	return c
}

func checkColor(t *testing.T, testee *Colorizer, name string, expectedColor ...color.Attribute) {
	t.Helper()
	res := testee.ForColor(name)(name)
	if len(expectedColor) == 0 {
		require.Equal(t, name, res)
	} else {
		require.Equal(t, fmt.Sprintf("%v", expectedColor), res)
	}
}

func colorBuilder(value ...color.Attribute) StrColorizer {
	return func(s string) string {
		return fmt.Sprintf("%v", value)
	}
}
