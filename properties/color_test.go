package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsUnset(t *testing.T) {
	assert.Empty(t, NewColorProperties().Color())

	var zero ColorProperties
	assert.Empty(t, zero.Color())
}

func TestSetColorRoundTrip(t *testing.T) {
	for _, v := range []string{"", "green", "blue", "  spaced ", "Ünïcode", "#00ff00"} {
		p := NewColorProperties()
		p.SetColor(v)
		require.Equal(t, v, p.Color())
	}
}

func TestSetColorIdempotent(t *testing.T) {
	p := NewColorProperties()
	p.SetColor("green")
	p.SetColor("green")
	assert.Equal(t, "green", p.Color())
}

func TestSetColorOverwrites(t *testing.T) {
	p := NewColorProperties()
	p.SetColor("green")
	p.SetColor("blue")
	assert.Equal(t, "blue", p.Color())

	p.SetColor("")
	assert.Empty(t, p.Color())
}

func TestBlueGreenSwitch(t *testing.T) {
	p := NewColorProperties()
	assert.Empty(t, p.Color())

	p.SetColor("green")
	assert.Equal(t, "green", p.Color())

	p.SetColor("blue")
	assert.Equal(t, "blue", p.Color())
}
