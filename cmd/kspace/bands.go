package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kspace/lt"
	"github.com/katalvlaran/kspace/render"
)

type bandsOutput struct {
	Labels      []string      `json:"labels,omitempty"`
	Ticks       []float64     `json:"ticks"`
	Resolutions []int         `json:"resolutions"`
	SpinDim     int           `json:"spin_dim"`
	Bands       [][][]float64 `json:"bands"`
	Constraints [][][]float64 `json:"constraints"`
}

func newBandsCmd(g *globals) *cobra.Command {
	var plotPath string
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Compute the Luttinger-Tisza band structure",
		Long: `Computes the bands of J(k) along the configured path together with the
constraint-violation value of each band's eigenspace and prints them as JSON
indexed [segment][band][sample].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.logger()
			if err != nil {
				return err
			}
			f, err := g.load()
			if err != nil {
				return err
			}
			l, err := f.BuildLattice()
			if err != nil {
				return err
			}
			p, err := f.BuildPath()
			if err != nil {
				return err
			}
			fn, err := f.Policy()
			if err != nil {
				return err
			}
			opts, err := f.LTOptions(log)
			if err != nil {
				return err
			}

			bs, err := lt.Compute(cmd.Context(), l, p, fn, opts)
			if err != nil {
				return err
			}
			energies, constraints := bs.Lowest()
			for s := range energies {
				log.Info("lowest band", "segment", s, "energy", energies[s], "constraint", constraints[s])
			}

			if plotPath != "" {
				err = writePlot(plotPath, func(r *render.Plot, w io.Writer) error {
					r.Title = "Luttinger-Tisza bands"
					return r.Bands(bs, w)
				})
				if err != nil {
					return err
				}
			}

			return writeJSON(cmd.OutOrStdout(), bandsOutput{
				Labels:      bs.Path.Labels,
				Ticks:       bs.Path.Ticks(),
				Resolutions: bs.Path.Resolutions,
				SpinDim:     bs.SpinDim,
				Bands:       bs.Bands,
				Constraints: bs.Constraints,
			})
		},
	}
	cmd.Flags().StringVar(&plotPath, "plot", "", "Also render the bands to this file (png, svg, pdf, ...)")

	return cmd
}
