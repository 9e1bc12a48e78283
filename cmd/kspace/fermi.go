package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kspace/fermi"
	"github.com/katalvlaran/kspace/render"
)

type fermiOutput struct {
	FermiEnergy float64       `json:"fermi_energy"`
	Points      []fermi.Point `json:"points"`
}

func newFermiCmd(g *globals) *cobra.Command {
	var plotPath string
	cmd := &cobra.Command{
		Use:   "fermi",
		Short: "Sample points of the Fermi surface",
		Long: `Samples fermi.points momenta k with min_i (λ_i(H(k)) − E_F)² below the
acceptance threshold and prints them as JSON.`,
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
			opts, err := f.FermiOptions(log)
			if err != nil {
				return err
			}

			pts, err := fermi.Sample(cmd.Context(), l, f.Fermi.Points, opts)
			if err != nil {
				return err
			}
			log.Info("fermi surface sampled", "points", len(pts))

			if plotPath != "" {
				err = writePlot(plotPath, func(r *render.Plot, w io.Writer) error {
					r.Title = "Fermi surface"
					return r.FermiSurface(pts, w)
				})
				if err != nil {
					return err
				}
			}

			return writeJSON(cmd.OutOrStdout(), fermiOutput{FermiEnergy: opts.FermiEnergy, Points: pts})
		},
	}
	cmd.Flags().StringVar(&plotPath, "plot", "", "Also render a scatter plot to this file (png, svg, pdf, ...)")

	return cmd
}
