package main

import (
	"github.com/solarlune/skatescene"
	"github.com/solarlune/skatescene/demo"
	"github.com/solarlune/skatescene/gltfexport"
	"github.com/solarlune/skatescene/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(opts *options) *cobra.Command {

	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the scene out as binary glTF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			logger, _ := logging.SubFrom(cmd.Context(), "export")

			rec := skatescene.NewRecorder()
			scene := demo.Build(opts.cfg.Scene, rec, 0)
			defer scene.Destroy()

			doc, err := gltfexport.Export(scene.Root, logger)
			if err != nil {
				return err
			}

			if err := gltfexport.Save(output, doc); err != nil {
				return err
			}

			logger.Info("scene exported", zap.String("file", output), zap.Int("nodes", len(doc.Nodes)))
			return nil

		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "scene.glb", "file to write")

	return cmd

}
