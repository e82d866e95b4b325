package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strconv"

	"github.com/fogleman/gg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"csviz/internal/colstats"
	"csviz/internal/utils"
)

// Options controls histogram rendering.
type Options struct {
	Title  string
	XLabel string
	// Width and Height are in printer's points (72 per inch).
	Width  float64
	Height float64
	// MinLabel and MaxLabel, when set, are stamped over the lower corners of
	// the exported image as custom axis range labels.
	MinLabel string
	MaxLabel string
}

var (
	barColor    = color.RGBA{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff}
	meanColor   = color.RGBA{R: 0xe1, G: 0x57, B: 0x59, A: 0xff}
	medianColor = color.RGBA{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff}
)

// Render draws the histogram with mean and median reference lines and
// returns the encoded PNG.
func Render(h *Histogram, sum colstats.Summary, opt Options) ([]byte, error) {
	if opt.Width <= 0 {
		opt.Width = 640
	}
	if opt.Height <= 0 {
		opt.Height = 400
	}

	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = "count"

	vals := make(plotter.Values, len(h.Counts))
	for i, c := range h.Counts {
		vals[i] = float64(c)
	}
	barWidth := vg.Points(opt.Width / float64(len(h.Counts)+2) * 0.7)
	bars, err := plotter.NewBarChart(vals, barWidth)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	labels := make([]string, len(h.Labels))
	for i, l := range h.Labels {
		labels[i] = strconv.Itoa(l)
	}
	p.NominalX(labels...)

	// With a nominal X axis the bars sit at category indices 0..n-1, so the
	// reference lines use the interpolated fractional index.
	top := float64(h.MaxCount())
	if err := addReferenceLine(p, h.AxisPosition(sum.Mean), top, meanColor, nil,
		fmt.Sprintf("mean %.4g", sum.Mean)); err != nil {
		return nil, err
	}
	if err := addReferenceLine(p, h.AxisPosition(sum.Median), top, medianColor,
		[]vg.Length{vg.Points(4), vg.Points(3)}, fmt.Sprintf("median %.4g", sum.Median)); err != nil {
		return nil, err
	}
	p.Legend.Top = true

	wt, err := p.WriterTo(vg.Points(opt.Width), vg.Points(opt.Height), "png")
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}

	if opt.MinLabel == "" && opt.MaxLabel == "" {
		return buf.Bytes(), nil
	}
	return overlayAxisLabels(buf.Bytes(), opt.MinLabel, opt.MaxLabel)
}

// RenderFile renders the histogram and writes the PNG atomically.
func RenderFile(h *Histogram, sum colstats.Summary, opt Options, path string) error {
	b, err := Render(h, sum, opt)
	if err != nil {
		return err
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

func addReferenceLine(p *plot.Plot, x, top float64, c color.Color, dashes []vg.Length, label string) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: top}})
	if err != nil {
		return fmt.Errorf("reference line %s: %w", label, err)
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = dashes
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// overlayAxisLabels stamps custom range labels over the lower corners of an
// encoded PNG and re-encodes it.
func overlayAxisLabels(pngBytes []byte, minLabel, maxLabel string) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	dc := gg.NewContextForImage(img)
	w := float64(dc.Width())
	h := float64(dc.Height())
	dc.SetColor(color.Black)
	if minLabel != "" {
		dc.DrawStringAnchored(minLabel, 8, h-6, 0, 0)
	}
	if maxLabel != "" {
		dc.DrawStringAnchored(maxLabel, w-8, h-6, 1, 0)
	}
	var out bytes.Buffer
	if err := dc.EncodePNG(&out); err != nil {
		return nil, fmt.Errorf("encode overlay: %w", err)
	}
	return out.Bytes(), nil
}
