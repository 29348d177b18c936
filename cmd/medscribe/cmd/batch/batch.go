package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daymade/medscribe/internal/app"
	appbatch "github.com/daymade/medscribe/internal/app/batch"
)

var inputDir string
var outputDir string
var providerName string
var exportPath string
var limit int
var parallel int
var showProgress bool

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "",
		"directory containing the MP3 recordings to process")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "output",
		"directory to write per-file artifacts and the run summary into")
	Cmd.Flags().StringVarP(&providerName, "provider", "p", "",
		"AI provider to use (default: the configured default provider)")
	Cmd.Flags().StringVar(&exportPath, "export", "",
		"path for the xlsx run summary (default: batch_summary_{timestamp}.xlsx in the output directory)")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0,
		"maximum number of files to process, 0 means all")
	Cmd.Flags().IntVarP(&parallel, "parallel", "P", 1,
		"number of files to process concurrently")
	Cmd.Flags().BoolVar(&showProgress, "progress", false,
		"force progress bars even without a TTY")

	Cmd.MarkFlagRequired("input-dir")
}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Process every MP3 in a directory",
	Long: `Process a whole directory of consultation recordings.

Each file gets its own subdirectory of artifacts under the output
directory, and the run finishes with an xlsx summary workbook. A file
that fails is recorded in the summary and does not stop the batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := app.InitializeCLI()
		if err != nil {
			return err
		}
		defer cli.Logger.Sync()

		processor, err := cli.Registry.Resolve(providerName)
		if err != nil {
			return err
		}

		runner := appbatch.NewProcessor(cli.Stager, cli.Runner, processor, cli.Logger)
		summary, err := runner.Run(cmd.Context(), appbatch.Config{
			InputDir:    inputDir,
			OutputDir:   outputDir,
			Limit:       limit,
			Parallel:    parallel,
			SummaryPath: exportPath,
			Progress: appbatch.ProgressConfig{
				Enabled: appbatch.ShouldShowProgress(showProgress),
			},
		})
		if err != nil {
			return err
		}

		fmt.Printf("processed %d files: %d ok, %d failed\n",
			len(summary.Results), summary.Succeeded, summary.Failed)
		if summary.SummaryPath != "" {
			fmt.Printf("summary written to %s\n", summary.SummaryPath)
		}
		return nil
	},
}
