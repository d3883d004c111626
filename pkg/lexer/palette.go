package lexer

// RGB is a packed 24-bit 0xRRGGBB colour.
type RGB uint32

func (c RGB) red() int32   { return int32((c >> 16) & 0xff) }
func (c RGB) green() int32 { return int32((c >> 8) & 0xff) }
func (c RGB) blue() int32  { return int32(c & 0xff) }

// The 16 system colours as used by default by xterm, taken from XTerm-col.ad
// distributed with the xterm source code.
var basePalette = [16]RGB{
	0x000000, 0xcd0000, 0x00cd00, 0xcdcd00,
	0x0000ee, 0xcd00cd, 0x00cdcd, 0xe5e5e5,
	0x7f7f7f, 0xff0000, 0x00ff00, 0xffff00,
	0x5c5cff, 0xff00ff, 0x00ffff, 0xffffff,
}

var baseStyles = [16]Style{
	StyleEsBlack, StyleEsRed,
	StyleEsGreen, StyleEsBrown,
	StyleEsBlue, StyleEsMagenta,
	StyleEsCyan, StyleEsGray,
	StyleEsDarkGray, StyleEsBrightRed,
	StyleEsBrightGreen, StyleEsYellow,
	StyleEsBrightBlue, StyleEsBrightMagenta,
	StyleEsBrightCyan, StyleEsWhite,
}

// ansi256 holds the full 256-colour ANSI palette: the 16 system colours,
// the 6x6x6 colour cube and the 24-step grayscale ramp. Built once and never
// mutated afterwards.
var ansi256 = buildAnsi256()

func buildAnsi256() [256]RGB {
	var table [256]RGB

	copy(table[:16], basePalette[:])

	// On each axis the six cube indices map to these component values.
	cube := [6]RGB{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	for i := 0; i < 216; i++ {
		r := cube[i/36]
		g := cube[(i/6)%6]
		b := cube[i%6]
		table[16+i] = r<<16 | g<<8 | b
	}

	for i := 0; i < 24; i++ {
		gray := RGB(i*10 + 8)
		table[232+i] = gray<<16 | gray<<8 | gray
	}

	return table
}

// colorDistance ranks how far apart two colours are perceptually. It is a
// redmean-style weighted squared difference (see compuphase.com/cmetric.htm)
// without the square root: not a true metric, but d(x, x) = 0 and relative
// ordering hold, which is all the nearest-colour search needs.
func colorDistance(x, y RGB) int32 {
	rSum := x.red() + y.red()
	r := x.red() - y.red()
	g := x.green() - y.green()
	b := x.blue() - y.blue()
	return (1024+rSum)*r*r + 2048*g*g + (1534-rSum)*b*b
}

// nearestBaseColor returns the style of the base palette entry closest to c.
// Ties resolve to the lowest palette index.
func nearestBaseColor(c RGB) Style {
	best := 0
	bestDist := colorDistance(c, basePalette[0])
	for i := 1; i < len(basePalette); i++ {
		if dist := colorDistance(c, basePalette[i]); dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return baseStyles[best]
}

// styleFromColorNumber maps an SGR colour code to a style. Codes 30-37 and
// 90-97 address the base palette directly; anything else is treated as a
// 256-colour index and quantized to the nearest base colour.
func styleFromColorNumber(n int) Style {
	if n >= 30 && n <= 37 {
		return baseStyles[n-30]
	}
	if n >= 90 && n <= 97 {
		return baseStyles[n-90+8]
	}
	return nearestBaseColor(ansi256[n])
}
