package config

import (
	"fmt"
	"slices"

	"github.com/charlievieth/strcase"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

type (
	Palette     map[string]CustomColor
	CustomColor []int
	PColor      string
)

const (
	PColorBlack   PColor = "black"
	PColorRed     PColor = "red"
	PColorGreen   PColor = "green"
	PColorYellow  PColor = "yellow"
	PColorBlue    PColor = "blue"
	PColorMagenta PColor = "magenta"
	PColorCyan    PColor = "cyan"
	PColorWhite   PColor = "white"
)

const (
	KeyColor   = "color"
	KeyPalette = "palette"
)

var BuiltinColors = []PColor{
	PColorBlack,
	PColorRed,
	PColorGreen,
	PColorYellow,
	PColorBlue,
	PColorMagenta,
	PColorCyan,
	PColorWhite,
}

func LoadPalette(k *koanf.Koanf) (Palette, error) {
	palette := make(Palette)
	if !k.Exists(KeyPalette) {
		return palette, nil
	}
	if err := k.Unmarshal(KeyPalette, &palette); err != nil {
		return nil, fmt.Errorf("invalid %s section: %w", KeyPalette, err)
	}

	names := lo.Keys(palette)
	slices.SortFunc(names, strcase.Compare)
	for i := 1; i < len(names); i++ {
		if strcase.EqualFold(names[i-1], names[i]) {
			return nil, fmt.Errorf("%s names %q and %q differ only in case", KeyPalette, names[i-1], names[i])
		}
	}
	return palette, nil
}

// FoldName maps a color name to the form used for lookups.
func FoldName(name string) string {
	return cases.Fold().String(name)
}
