package colors

import (
	"slices"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/vladimir-rom/blueorgreen/cmd/config"
)

type Colorizer struct {
	Enabled      bool
	def          StrColorizer
	palette      config.Palette
	colorBuilder ColorBuilder
	builtins     map[config.PColor]color.Attribute
}

type ColorBuilder func(value ...color.Attribute) StrColorizer

type StrColorizer func(s string) string

// NewColorizer folds palette names. When two names fold to the same form the
// one sorting last byte-wise wins, so "teal" beats "Teal".
func NewColorizer(palette config.Palette, colorBuilder ColorBuilder) *Colorizer {
	names := lo.Keys(palette)
	slices.Sort(names)
	folded := make(config.Palette, len(palette))
	for _, name := range names {
		folded[config.FoldName(name)] = palette[name]
	}

	return &Colorizer{
		Enabled:      !color.NoColor,
		def:          func(s string) string { return s },
		palette:      folded,
		colorBuilder: colorBuilder,
		builtins: map[config.PColor]color.Attribute{
			config.PColorBlack:   color.FgBlack,
			config.PColorRed:     color.FgRed,
			config.PColorGreen:   color.FgGreen,
			config.PColorYellow:  color.FgYellow,
			config.PColorBlue:    color.FgBlue,
			config.PColorMagenta: color.FgMagenta,
			config.PColorCyan:    color.FgCyan,
			config.PColorWhite:   color.FgWhite,
		},
	}
}

func DefaultColorBuilder(value ...color.Attribute) StrColorizer {
	c := color.New(value...)
	return toStrColorizer(c.SprintFunc())
}

func toStrColorizer(cf func(a ...any) string) StrColorizer {
	return func(s string) string {
		return cf(s)
	}
}

// ForColor returns a colorizer painting text in the named color. Palette
// entries shadow built-in names; unknown names yield plain text.
func (c *Colorizer) ForColor(name string) StrColorizer {
	if !c.Enabled || name == "" {
		return c.def
	}

	key := config.FoldName(name)
	if custom := c.palette[key]; len(custom) > 0 {
		return c.colorBuilder(toAttributes(custom)...)
	}
	if attr, ok := c.builtins[config.PColor(key)]; ok {
		return c.colorBuilder(attr)
	}
	return c.def
}

// Known lists built-in and folded palette color names, sorted and deduplicated.
func (c *Colorizer) Known() []string {
	names := lo.Map(config.BuiltinColors, func(pc config.PColor, _ int) string { return string(pc) })
	names = append(names, lo.Keys(c.palette)...)
	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

func toAttributes(ints []int) []color.Attribute {
	return lo.Map(ints, func(c, _ int) color.Attribute { return color.Attribute(c) })
}
