package holdmenu

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// backdropDim is the darkness of a backdrop at full blur intensity.
const backdropDim = 0.35

// cornerSegments is the number of triangle-fan steps per rounded corner.
const cornerSegments = 6

// whitePixel is a 1x1 white image used to fill solid boxes. Created on
// first draw.
var whitePixel *ebiten.Image

func solidImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA(1))
	}
	return whitePixel
}

// Draw paints the scene onto screen: the content layer first, then the
// overlay with every mounted menu.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor != (Color{}) {
		screen.Fill(s.ClearColor.toRGBA(1))
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.drawNode(screen, s.root)
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible || (n.worldAlpha <= 0 && n.Blur <= 0) {
		return
	}
	if n.Blur > 0 && s.cfg.BlurIntensity > 0 {
		dim := backdropDim * clamp01(n.Blur/s.cfg.BlurIntensity)
		s.fillBox(dst, n, Color{A: dim}, 1)
	}
	if n.Color.A > 0 {
		s.fillBox(dst, n, n.Color, n.worldAlpha)
	}
	if n.Image != nil {
		s.drawImage(dst, n)
	}
	if n.Label != "" {
		s.drawLabel(dst, n)
	}
	for _, child := range n.children {
		s.drawNode(dst, child)
	}
}

// nodeGeoM converts a node's world transform into an ebiten.GeoM.
func nodeGeoM(n *Node) ebiten.GeoM {
	t := n.worldTransform
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

// fillBox fills the node's Width x Height box. Boxes with a BorderRadius are
// drawn as a triangle fan so the corners are rounded.
func (s *Scene) fillBox(dst *ebiten.Image, n *Node, c Color, alpha float64) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	rgba := c.toRGBA(alpha)
	if n.BorderRadius <= 0 {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Concat(nodeGeoM(n))
		op.ColorScale.ScaleWithColor(rgba)
		dst.DrawImage(solidImage(), &op)
		return
	}

	r := math.Min(n.BorderRadius, math.Min(n.Width, n.Height)/2)
	corners := [4][3]float64{
		{n.Width - r, n.Height - r, 0},
		{r, n.Height - r, math.Pi / 2},
		{r, r, math.Pi},
		{n.Width - r, r, 3 * math.Pi / 2},
	}
	cr := float32(rgba.R) / 255
	cg := float32(rgba.G) / 255
	cb := float32(rgba.B) / 255
	ca := float32(rgba.A) / 255

	vertex := func(lx, ly float64) ebiten.Vertex {
		wx, wy := transformPoint(n.worldTransform, lx, ly)
		return ebiten.Vertex{
			DstX: float32(wx), DstY: float32(wy),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	verts := make([]ebiten.Vertex, 0, 1+4*(cornerSegments+1))
	verts = append(verts, vertex(n.Width/2, n.Height/2))
	for _, corner := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := corner[2] + float64(i)/cornerSegments*math.Pi/2
			verts = append(verts, vertex(corner[0]+r*math.Cos(a), corner[1]+r*math.Sin(a)))
		}
	}
	rim := uint16(len(verts) - 1)
	inds := make([]uint16, 0, 3*int(rim))
	for i := uint16(1); i <= rim; i++ {
		next := i + 1
		if next > rim {
			next = 1
		}
		inds = append(inds, 0, i, next)
	}

	op := roundedFillOptions()
	dst.DrawTriangles(verts, inds, solidImage(), &op)
}

// roundedFillOptions returns the triangle options for rounded fills. Vertex
// colors come from toRGBA and are already premultiplied.
func roundedFillOptions() ebiten.DrawTrianglesOptions {
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	return op
}

// drawImage draws the node's image as a square of the box's shorter side at
// the node's origin. Nodes without a size draw it at its natural size.
func (s *Scene) drawImage(dst *ebiten.Image, n *Node) {
	b := n.Image.Bounds()
	var op ebiten.DrawImageOptions
	if n.Width > 0 && n.Height > 0 && b.Dx() > 0 && b.Dy() > 0 {
		side := math.Min(n.Width, n.Height)
		op.GeoM.Scale(side/float64(b.Dx()), side/float64(b.Dy()))
	}
	op.GeoM.Concat(nodeGeoM(n))
	op.ColorScale.ScaleAlpha(float32(n.worldAlpha))
	dst.DrawImage(n.Image, &op)
}

// drawLabel prints the label with the debug font, vertically centered in
// the box. The debug font cannot be scaled or tinted, so only position and
// visibility follow the node.
func (s *Scene) drawLabel(dst *ebiten.Image, n *Node) {
	if n.worldAlpha < 0.5 {
		return
	}
	const glyphH = 16
	x := 8.0
	if n.Image != nil {
		x += math.Min(n.Width, n.Height)
	}
	wx, wy := transformPoint(n.worldTransform, x, (n.Height-glyphH)/2)
	ebitenutil.DebugPrintAt(dst, n.Label, int(wx), int(wy))
}
