package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/clockwall/internal/service/snapshot"
)

// newSnapshotCommand builds the `snapshot` subcommand.
func newSnapshotCommand() *cobra.Command {
	opts := new(snapshot.Options)

	command := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the clock wall for one instant as SVG or PNG.",
		Long: `Renders the clock wall for a single instant and writes it as an image.

The time defaults to now and may be given as HH:MM:SS, HH:MM (today) or an
RFC 3339 timestamp. The format follows --format or the output extension and
defaults to SVG. Without --output the image goes to stdout.`,
		Example: `  clockwall snapshot --at 09:05:07 -o wall.svg
  clockwall snapshot --format png --face-size 64 > wall.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ConfigPath = configPath
			opts.Stdout = cmd.OutOrStdout()

			return snapshot.Run(cmd.Context(), opts)
		},
	}

	command.Flags().StringVar(&opts.At, "at", "", "time to draw: HH:MM:SS, HH:MM or RFC 3339 (default now)")
	command.Flags().StringVar(&opts.Format, "format", "", "image format: svg or png (default from extension, else svg)")
	command.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "output file, - for stdout")
	command.Flags().IntVar(&opts.FaceSize, "face-size", 0, "face diameter in pixels (default from settings)")

	return command
}
