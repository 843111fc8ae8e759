// Command patterndemo resolves a pattern fill and writes the painted
// rectangle to a PNG file.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/svgpaint"
)

func main() {
	var (
		width   = flag.Int("width", 400, "image width")
		height  = flag.Int("height", 300, "image height")
		output  = flag.String("output", "pattern.png", "output file")
		tileSrc = flag.String("image", "", "tile image (PNG, JPEG, GIF, WebP, BMP or TIFF); default is a checkerboard")
		units   = flag.String("units", "userSpaceOnUse", "patternUnits: userSpaceOnUse or objectBoundingBox")
		rotate  = flag.Float64("rotate", 0, "patternTransform rotation in degrees")
		verbose = flag.Bool("v", false, "log why paint does not resolve")
		version = flag.Bool("version", false, "print the svgpaint version and exit")
	)
	flag.Parse()

	if *version {
		log.Printf("svgpaint %s", svgpaint.Version)
		return
	}

	if *verbose {
		svgpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	patternUnits, ok := svgpaint.ParseUnits(*units)
	if !ok {
		log.Fatalf("Unknown pattern units %q", *units)
	}

	src, err := loadTile(*tileSrc)
	if err != nil {
		log.Fatalf("Failed to load tile: %v", err)
	}

	bbox := svgpaint.RectXYWH(20, 20, float64(*width-40), float64(*height-40))
	rect, background := buildScene(src, patternUnits, *rotate, *width, *height)

	r := svgpaint.NewPaintResolver()
	bg, ok := r.FillBrush(background, svgpaint.PaintContext{
		PathBoundingBox: svgpaint.RectXYWH(0, 0, float64(*width), float64(*height)),
		PaintTransform:  svgpaint.Identity(),
	})
	if !ok {
		bg = svgpaint.Solid(svgpaint.White)
	}
	fill, ok := r.FillBrush(rect, svgpaint.PaintContext{
		PathBoundingBox: bbox,
		PaintTransform:  svgpaint.Identity(),
	})
	if !ok {
		log.Fatalf("Pattern fill did not resolve (run with -v for details)")
	}

	out, err := svgpaint.NewImageBuf(*width, *height)
	if err != nil {
		log.Fatalf("Failed to allocate output: %v", err)
	}
	paint(out, bg, fill, bbox)

	if err := out.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Pattern saved to %s (%dx%d)\n", *output, *width, *height)
}

// buildScene creates
//
//	svg > rect#background(fill=url(#bg)) + rect#r(fill=url(#tile))
//	    + linearGradient#bg + pattern#tile > image#src
func buildScene(src image.Image, units svgpaint.Units, rotate float64, w, h int) (rect, background *svgpaint.Element) {
	doc := svgpaint.NewDocument()
	svg := doc.CreateElement(svgpaint.KindSVG, "")
	svg.SetLayout(&svgpaint.Layout{
		Rect:      svgpaint.RectXYWH(0, 0, float64(w), float64(h)),
		Transform: svgpaint.Identity(),
	})

	grad := doc.CreateElement(svgpaint.KindLinearGradient, "bg")
	grad.SetGradient(&svgpaint.GradientAttrs{
		X2: svgpaint.Ptr(svgpaint.Percent(0)),
		Y2: svgpaint.Ptr(svgpaint.Percent(100)),
		Stops: []svgpaint.ColorStop{
			{Offset: 0, Color: svgpaint.Hex("#1a3366")},
			{Offset: 1, Color: svgpaint.Hex("#66809a")},
		},
	})

	attrs := &svgpaint.PatternAttrs{Units: svgpaint.Ptr(units)}
	if units == svgpaint.UnitsObjectBoundingBox {
		attrs.SetWidth(svgpaint.Percentage(20))
		attrs.SetHeight(svgpaint.Percentage(25))
	} else {
		attrs.SetWidth(svgpaint.Number(48))
		attrs.SetHeight(svgpaint.Number(48))
	}
	if rotate != 0 {
		attrs.SetTransformList(svgpaint.TransformList{svgpaint.RotateOp(rotate, 0, 0)}, true)
	}
	pattern := doc.CreateElement(svgpaint.KindPattern, "tile")
	pattern.SetPattern(attrs)

	img := doc.CreateElement(svgpaint.KindImage, "src")
	img.SetImage(src)
	pattern.AppendChild(img)

	background = doc.CreateElement(svgpaint.KindRect, "background")
	rect = doc.CreateElement(svgpaint.KindRect, "r")
	for _, e := range []*svgpaint.Element{background, rect, grad, pattern} {
		svg.AppendChild(e)
	}

	bgStyle := svgpaint.DefaultStyle()
	bgStyle.Fill = svgpaint.URLPaint("#bg")
	background.SetStyle(&bgStyle)

	style := svgpaint.DefaultStyle()
	style.Fill = svgpaint.URLPaint("#tile")
	rect.SetStyle(&style)

	return rect, background
}

func loadTile(path string) (image.Image, error) {
	if path == "" {
		return checkerboard(16, 8), nil
	}
	return svgpaint.LoadImage(path)
}

func checkerboard(size, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 240, G: 200, B: 60, A: 255}
	dark := color.NRGBA{R: 200, G: 60, B: 40, A: 220}
	for y := range size {
		for x := range size {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}

// paint samples each pixel center: the background everywhere, the fill
// composited over it inside bbox.
func paint(out *svgpaint.ImageBuf, bg, fill svgpaint.Brush, bbox svgpaint.Rect) {
	for y := range out.Height() {
		for x := range out.Width() {
			p := svgpaint.Pt(float64(x)+0.5, float64(y)+0.5)
			c := bg.ColorAt(p.X, p.Y)
			if bbox.Contains(p) {
				fg := fill.ColorAt(p.X, p.Y)
				c = c.Lerp(svgpaint.RGBA{R: fg.R, G: fg.G, B: fg.B, A: 1}, fg.A)
			}
			n := c.Color()
			_ = out.SetRGBA(x, y, n.R, n.G, n.B, n.A)
		}
	}
}
