package formatter

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/npillmayer/polyhedra"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int  // target line length; entries wider than this are not wrapped
	Colors    bool // colorize headers and indices
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly; colorizing is
// switched on for interactive terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
		config.Colors = true
	} else {
		config.LineWidth = 65
	}
	return config
}

// Palette maps output roles to colors. A nil color leaves the role
// uncolored.
type Palette struct {
	Header *color.Color
	Index  *color.Color
}

// DefaultPalette is used whenever Config.Colors is set.
var DefaultPalette = Palette{
	Header: color.New(color.FgCyan, color.Bold),
	Index:  color.New(color.FgHiBlack),
}

func (cfg *Config) header(s string) string {
	if cfg != nil && cfg.Colors && DefaultPalette.Header != nil {
		return DefaultPalette.Header.Sprint(s)
	}
	return s
}

func (cfg *Config) index(s string) string {
	if cfg != nil && cfg.Colors && DefaultPalette.Index != nil {
		return DefaultPalette.Index.Sprint(s)
	}
	return s
}

func (cfg *Config) width() int {
	if cfg == nil || cfg.LineWidth <= 0 {
		return 65
	}
	return cfg.LineWidth
}

// entry prints one scalar exactly: rationals as p/q, integers as digits.
func entry[S polyhedra.Scalar](x S) string {
	switch v := any(x).(type) {
	case *big.Rat:
		return v.RatString()
	case *big.Int:
		return v.String()
	}
	return fmt.Sprintf("%v", x)
}

// WriteMatrix outputs a matrix with right-aligned columns, one row per
// line, each row prefixed with its 1-based index.
//
// These have to be package-level functions rather than methods of a
// formatter type, as Go methods cannot add type parameters.
func WriteMatrix[S polyhedra.Scalar](w io.Writer, m polyhedra.Matrix[S], config *Config) error {
	if m.NumRows() == 0 {
		_, err := io.WriteString(w, "( empty )\n")
		return err
	}
	cells := make([][]string, m.NumRows())
	widths := make([]int, m.NumCols())
	for i := 0; i < m.NumRows(); i++ {
		row := m.Row(i)
		cells[i] = make([]string, len(row))
		for j, x := range row {
			s := entry(x)
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	linewidth := 0
	for _, wd := range widths {
		linewidth += wd + 2
	}
	if linewidth > config.width() {
		tracer().Infof("matrix line of %d exceeds line width %d", linewidth, config.width())
	}
	for i, row := range cells {
		var sb strings.Builder
		sb.WriteString(config.index(fmt.Sprintf("%3d |", i+1)))
		for j, s := range row {
			sb.WriteString(strings.Repeat(" ", widths[j]-len(s)+2))
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteIncidence outputs an incidence structure as a grid of '*' (incident)
// and '.' (not incident), rows prefixed with their 1-based index.
func WriteIncidence(w io.Writer, inc polyhedra.IncidenceMatrix, config *Config) error {
	for i := 0; i < inc.NumRows(); i++ {
		var sb strings.Builder
		sb.WriteString(config.index(fmt.Sprintf("%3d |", i+1)))
		sb.WriteByte(' ')
		for j := 0; j < inc.NumCols(); j++ {
			if inc.At(i, j) {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteCone outputs a cone: a header line with scalar domain and
// dimensions, the ray block and the facet block.
func WriteCone[S polyhedra.Scalar](w io.Writer, c *polyhedra.Cone[S], config *Config) error {
	dim, err := c.Dim()
	if err != nil {
		return err
	}
	adim, err := c.AmbientDim()
	if err != nil {
		return err
	}
	nrays, err := c.NRays()
	if err != nil {
		return err
	}
	nfacets, err := c.NFacets()
	if err != nil {
		return err
	}
	h := fmt.Sprintf("Cone<%s> of dim %d in %d-space, %d rays, %d facets",
		c.Domain(), dim, adim, nrays, nfacets)
	if _, err := io.WriteString(w, config.header(h)+"\n"); err != nil {
		return err
	}
	rays, err := c.Rays()
	if err != nil {
		return err
	}
	rm, err := rays.Matrix()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "rays:\n"); err != nil {
		return err
	}
	if err := WriteMatrix(w, rm, config); err != nil {
		return err
	}
	facets, err := c.Facets()
	if err != nil {
		return err
	}
	fm, err := facets.Matrix()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "facets:\n"); err != nil {
		return err
	}
	return WriteMatrix(w, fm, config)
}

// WritePolyhedron outputs a polyhedron: a header line with scalar domain
// and dimensions, the vertex block and the facet block.
func WritePolyhedron[S polyhedra.Scalar](w io.Writer, p *polyhedra.Polyhedron[S], config *Config) error {
	dim, err := p.Dim()
	if err != nil {
		return err
	}
	adim, err := p.AmbientDim()
	if err != nil {
		return err
	}
	nvert, err := p.NVertices()
	if err != nil {
		return err
	}
	nfacets, err := p.NFacets()
	if err != nil {
		return err
	}
	h := fmt.Sprintf("Polytope<%s> of dim %d in %d-space, %d vertices, %d facets",
		p.Domain(), dim, adim, nvert, nfacets)
	if _, err := io.WriteString(w, config.header(h)+"\n"); err != nil {
		return err
	}
	vertices, err := p.Vertices()
	if err != nil {
		return err
	}
	vm, err := vertices.Matrix()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "vertices:\n"); err != nil {
		return err
	}
	if err := WriteMatrix(w, vm, config); err != nil {
		return err
	}
	facets, err := p.Facets()
	if err != nil {
		return err
	}
	fm, err := facets.Matrix()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "facets:\n"); err != nil {
		return err
	}
	return WriteMatrix(w, fm, config)
}
