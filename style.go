package ui

// ColorID selects a role in the style's color table. The hover and focus
// variants of Button and Base directly follow their base role so control
// frames can add the interaction state to the base ID.
type ColorID int

const (
	ColorText ColorID = iota
	ColorBorder
	ColorWindowBg
	ColorTitleBg
	ColorTitleText
	ColorPanelBg
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	ColorMax
)

var colorNames = [ColorMax]string{
	ColorText:        "text",
	ColorBorder:      "border",
	ColorWindowBg:    "windowbg",
	ColorTitleBg:     "titlebg",
	ColorTitleText:   "titletext",
	ColorPanelBg:     "panelbg",
	ColorButton:      "button",
	ColorButtonHover: "buttonhover",
	ColorButtonFocus: "buttonfocus",
	ColorBase:        "base",
	ColorBaseHover:   "basehover",
	ColorBaseFocus:   "basefocus",
	ColorScrollBase:  "scrollbase",
	ColorScrollThumb: "scrollthumb",
}

// String returns the lower-case role name used in theme files.
func (c ColorID) String() string {
	if c < 0 || c >= ColorMax {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColorID maps a role name back to its ColorID.
func ParseColorID(name string) (ColorID, bool) {
	for i, n := range colorNames {
		if n == name {
			return ColorID(i), true
		}
	}
	return 0, false
}

// Font is an opaque handle handed back to the TextMeasurer and carried by
// TEXT commands. The core never inspects it.
type Font any

// Style defines the metrics and palette every widget reads.
type Style struct {
	Font          Font
	Size          Vec2 // default widget content size, before padding
	Padding       int
	Spacing       int
	Indent        int
	TitleHeight   int
	ScrollbarSize int
	ThumbSize     int
	Colors        [ColorMax]Color
}

// DefaultStyle returns the stock dark palette.
func DefaultStyle() Style {
	return Style{
		Size:          Vec2{X: 68, Y: 10},
		Padding:       5,
		Spacing:       4,
		Indent:        24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		Colors: [ColorMax]Color{
			ColorText:        {230, 230, 230, 255},
			ColorBorder:      {25, 25, 25, 255},
			ColorWindowBg:    {50, 50, 50, 255},
			ColorTitleBg:     {25, 25, 25, 255},
			ColorTitleText:   {240, 240, 240, 255},
			ColorPanelBg:     {0, 0, 0, 0},
			ColorButton:      {75, 75, 75, 255},
			ColorButtonHover: {95, 95, 95, 255},
			ColorButtonFocus: {115, 115, 115, 255},
			ColorBase:        {30, 30, 30, 255},
			ColorBaseHover:   {35, 35, 35, 255},
			ColorBaseFocus:   {40, 40, 40, 255},
			ColorScrollBase:  {43, 43, 43, 255},
			ColorScrollThumb: {30, 30, 30, 255},
		},
	}
}

// Style returns a pointer to the live style. Mutations take effect for the
// widgets declared after them.
func (ctx *Context) Style() *Style { return &ctx.style }

// SetStyle replaces the live style.
func (ctx *Context) SetStyle(s Style) { ctx.style = s }
