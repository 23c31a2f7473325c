package tile

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Compositor blits cached tile pixels onto a display surface sized to the
// viewport, offset by the current scroll position. Uses
// golang.org/x/image/draw.Draw (the teacher's own x/image dependency,
// otherwise used for font rasterization) in place of a hand-rolled pixel
// copy loop, per spec.md §4.5's compositing step.
type Compositor struct {
	cache *Cache
}

// NewCompositor builds a Compositor over a tile Cache.
func NewCompositor(cache *Cache) *Compositor {
	return &Compositor{cache: cache}
}

// Composite clears a viewportW x viewportH surface and blits every clean
// tile whose (x, y-scrollY, w, h) intersects (0, 0, viewportW, viewportH),
// per spec.md §4.5. Tiles that are not yet clean are left blank (their
// region stays the cleared background) rather than blocking on a render.
func (c *Compositor) Composite(viewportW, viewportH, scrollY int) *image.RGBA {
	surface := image.NewRGBA(image.Rect(0, 0, viewportW, viewportH))
	xdraw.Draw(surface, surface.Bounds(), image.NewUniform(color.Transparent), image.Point{}, xdraw.Src)

	viewport := image.Rect(0, 0, viewportW, viewportH)
	for _, t := range c.cache.Grid().Tiles() {
		px, ok := c.cache.Get(t.ID)
		if !ok {
			continue
		}
		dest := image.Rect(t.X, t.Y-scrollY, t.X+t.W, t.Y-scrollY+t.H)
		clipped := dest.Intersect(viewport)
		if clipped.Empty() {
			continue
		}
		srcOffset := px.Bounds().Min.Add(image.Pt(clipped.Min.X-dest.Min.X, clipped.Min.Y-dest.Min.Y))
		xdraw.Draw(surface, clipped, px, srcOffset, xdraw.Src)
	}
	return surface
}
