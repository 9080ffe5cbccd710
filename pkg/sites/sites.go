package sites

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// Parse reads one site per line as "x, y" or "(x, y)". Lines that do not
// hold exactly two numbers are skipped. Coordinates are rounded to one
// decimal.
func Parse(r io.Reader) ([]voronoi.Vertex, error) {
	var out []voronoi.Vertex

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.Trim(strings.TrimSpace(scanner.Text()), "()")
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}

		out = append(out, voronoi.NewPoint(x, y).Vertex())
	}

	if err := scanner.Err(); err != nil {
		return out, errors.Wrap(err, "sites: read")
	}
	return out, nil
}

func LoadFile(path string) ([]voronoi.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "sites: open %s", path)
	}
	defer f.Close()

	return Parse(f)
}

// Write prints sites in the format Parse reads back.
func Write(w io.Writer, sites []voronoi.Vertex) error {
	bw := bufio.NewWriter(w)
	for _, s := range sites {
		p := voronoi.NewPoint(s.X, s.Y)
		line := strconv.FormatFloat(p.X(), 'f', 1, 64) + ", " + strconv.FormatFloat(p.Y(), 'f', 1, 64) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return errors.Wrap(err, "sites: write")
		}
	}
	return errors.Wrap(bw.Flush(), "sites: write")
}

func SaveFile(path string, sites []voronoi.Vertex) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "sites: create %s", path)
	}

	if err := Write(f, sites); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "sites: close %s", path)
}

// Random - от 15 до 30 случайных станций, отступ 10 от краев
func Random(rng *rand.Rand, width, height float64) []voronoi.Vertex {
	n := 15 + rng.Intn(16)

	out := make([]voronoi.Vertex, n)
	for i := range out {
		x := within(rng, width)
		y := within(rng, height)
		out[i] = voronoi.NewPoint(x, y).Vertex()
	}
	return out
}

// within - случайная координата в [0, size] с отступом 10 от краев,
// для узкого бокса отступ сжимается до половины размера
func within(rng *rand.Rand, size float64) float64 {
	margin := math.Min(10, math.Max(size, 0)/2)
	return margin + rng.Float64()*(size-2*margin)
}

// Grid раскладывает n станций по ровной сетке, каждая в центре своей ячейки
func Grid(n int, width, height float64) []voronoi.Vertex {
	if n <= 0 {
		return nil
	}

	out := make([]voronoi.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := width / float64(cols)
	yStep := height / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может быть на 20 станций, а просили 17
			if len(out) == n {
				return out
			}
			x := xStep/2 + float64(j)*xStep
			y := yStep/2 + float64(i)*yStep
			out = append(out, voronoi.NewPoint(x, y).Vertex())
		}
	}

	return out
}

// InBounds drops sites outside [0, width] x [0, height].
func InBounds(sites []voronoi.Vertex, width, height float64) []voronoi.Vertex {
	out := make([]voronoi.Vertex, 0, len(sites))
	for _, s := range sites {
		if s.X >= 0 && s.X <= width && s.Y >= 0 && s.Y <= height {
			out = append(out, s)
		}
	}
	return out
}
