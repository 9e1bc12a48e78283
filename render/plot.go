package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/kspace/fermi"
	"github.com/katalvlaran/kspace/lt"
)

// Plot is the gonum/plot Renderer.
//
// Bands draws one line per band over the cumulative path distance with a
// labelled tick and a vertical guide at every breakpoint. Samples of the
// lowest band whose constraint value is at most ConstraintTolerance are
// marked with a glyph: there the relaxed ground state is a valid spin
// configuration. FermiSurface draws a scatter of the sampled momenta on a
// square canvas.
type Plot struct {
	Format              string
	Width, Height       vg.Length
	Title               string
	ConstraintTolerance float64
}

// NewPlot returns a Plot for format with the default canvas.
//
// Errors: ErrFormat.
func NewPlot(format string) (*Plot, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}

	return &Plot{
		Format:              format,
		Width:               DefaultWidth,
		Height:              DefaultHeight,
		ConstraintTolerance: 1e-6,
	}, nil
}

var _ Renderer = (*Plot)(nil)

// Bands renders bs.
//
// Errors: ErrFormat, ErrNoData, gonum/plot encoding errors.
func (r *Plot) Bands(bs *lt.Bandstructure, w io.Writer) error {
	if err := checkFormat(r.Format); err != nil {
		return err
	}
	if bs == nil || bs.Path == nil || bs.NumBands() == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = "k"
	p.Y.Label.Text = "λ(k)"

	ticks := bs.Path.Ticks()
	xs := sampleDistances(bs, ticks)

	// band lines
	var (
		b, s, j int
		lo, hi  = bs.Bands[0][0][0], bs.Bands[0][0][0]
	)
	for b = 0; b < bs.NumBands(); b++ {
		pts := make(plotter.XYs, 0, len(xs))
		for s = range bs.Bands {
			for j = range bs.Bands[s][b] {
				y := bs.Bands[s][b][j]
				pts = append(pts, plotter.XY{X: xs[s][j], Y: y})
				lo, hi = min(lo, y), max(hi, y)
			}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("band %d: %w", b, err)
		}
		line.Color = plotutil.Color(b)
		line.Width = vg.Points(1)
		p.Add(line)
	}

	// lowest-band samples that satisfy the spin-length constraint
	var valid plotter.XYs
	for s = range bs.Bands {
		for j = range bs.Bands[s][0] {
			if bs.Constraints[s][0][j] <= r.ConstraintTolerance {
				valid = append(valid, plotter.XY{X: xs[s][j], Y: bs.Bands[s][0][j]})
			}
		}
	}
	if len(valid) > 0 {
		sc, err := plotter.NewScatter(valid)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add("constraint satisfied", sc)
		p.Legend.Top = true
	}

	// breakpoint guides and labels
	marks := make([]plot.Tick, len(ticks))
	for i, x := range ticks {
		label := ""
		if i < len(bs.Path.Labels) {
			label = bs.Path.Labels[i]
		}
		marks[i] = plot.Tick{Value: x, Label: label}

		guide, err := plotter.NewLine(plotter.XYs{{X: x, Y: lo}, {X: x, Y: hi}})
		if err != nil {
			return err
		}
		guide.Color = plotutil.DarkColors[len(plotutil.DarkColors)-1]
		guide.Width = vg.Points(0.5)
		guide.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(guide)
	}
	p.X.Tick.Marker = plot.ConstantTicks(marks)
	p.X.Min, p.X.Max = 0, ticks[len(ticks)-1]

	return r.write(p, r.Width, r.Height, w)
}

// FermiSurface renders pts.
//
// Errors: ErrFormat, ErrNoData, gonum/plot encoding errors.
func (r *Plot) FermiSurface(pts []fermi.Point, w io.Writer) error {
	if err := checkFormat(r.Format); err != nil {
		return err
	}
	if len(pts) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = "kx"
	p.Y.Label.Text = "ky"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(pts))
	for i, k := range pts {
		xys[i] = plotter.XY{X: k[0], Y: k[1]}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	sc.GlyphStyle.Color = plotutil.Color(0)
	p.Add(sc)

	side := min(r.Width, r.Height)

	return r.write(p, side, side, w)
}

func (r *Plot) write(p *plot.Plot, wd, ht vg.Length, w io.Writer) error {
	if wd <= 0 || ht <= 0 {
		wd, ht = DefaultWidth, DefaultHeight
	}
	wt, err := p.WriterTo(wd, ht, r.Format)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("%s: %w", r.Format, err)
	}

	return nil
}

// sampleDistances maps every sample (segment s, index j) to its cumulative
// path distance ticks[s] + (j/res)·|segment|.
func sampleDistances(bs *lt.Bandstructure, ticks []float64) [][]float64 {
	out := make([][]float64, len(bs.Bands))
	for s := range bs.Bands {
		res := bs.Path.Resolutions[s]
		length := ticks[s+1] - ticks[s]
		out[s] = make([]float64, res)
		for j := range out[s] {
			out[s][j] = ticks[s] + float64(j)/float64(res)*length
		}
	}

	return out
}
