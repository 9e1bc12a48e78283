package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/kspace/render"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// writePlot creates path and lets draw encode into it; the format follows
// the file extension.
func writePlot(path string, draw func(r *render.Plot, w io.Writer) error) (err error) {
	r, err := render.NewPlot(render.FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("--plot %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return draw(r, f)
}
