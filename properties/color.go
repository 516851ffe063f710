package properties

// ColorProperties holds the "color" setting. It is not safe for concurrent
// writes; bind it once at startup and only read it afterwards.
type ColorProperties struct {
	color string
}

func NewColorProperties() *ColorProperties {
	return &ColorProperties{}
}

func (p *ColorProperties) Color() string {
	return p.color
}

func (p *ColorProperties) SetColor(color string) {
	p.color = color
}
