package config

import (
	"github.com/knadh/koanf/v2"

	"github.com/vladimir-rom/blueorgreen/properties"
)

// BindColorProperties builds the holder from the merged configuration. An
// absent key leaves the color unset.
func BindColorProperties(k *koanf.Koanf) *properties.ColorProperties {
	p := properties.NewColorProperties()
	if k.Exists(KeyColor) {
		p.SetColor(k.String(KeyColor))
	}
	return p
}
