package main

import (
	"fmt"

	"github.com/solarlune/skatescene"
	"github.com/solarlune/skatescene/demo"
	"github.com/spf13/cobra"
)

func newDumpCmd(opts *options) *cobra.Command {

	var trace bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the scene's hierarchy and the calls one render pass makes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			rec := skatescene.NewRecorder()
			scene := demo.Build(opts.cfg.Scene, rec, 1)
			defer scene.Destroy()

			out := cmd.OutOrStdout()

			fmt.Fprint(out, skatescene.HierarchyAsString(scene.Root))

			if trace {
				scene.Root.Render(rec)
				fmt.Fprintln(out)
				fmt.Fprint(out, rec.String())
				fmt.Fprintf(out, "\n%d draws\n", rec.Count(skatescene.OpDraw))
			}

			return nil

		},
	}

	cmd.Flags().BoolVar(&trace, "trace", true, "also print the context calls of one render pass")

	return cmd

}
