package process

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/daymade/medscribe/internal/app"
	"github.com/daymade/medscribe/internal/app/pipeline"
	"github.com/daymade/medscribe/internal/app/session"
	"github.com/daymade/medscribe/internal/app/util/files"
)

var inputPath string
var outputDir string
var providerName string

func init() {
	Cmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"path to the MP3 consultation recording")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", ".",
		"directory to write the three artifacts into")
	Cmd.Flags().StringVarP(&providerName, "provider", "p", "",
		"AI provider to use (default: the configured default provider)")

	Cmd.MarkFlagRequired("input")
}

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Process a single MP3 file and write the artifacts to disk",
	Long: `Process one consultation recording without starting the server.

The file goes through the full chain: transcription, conversation
formatting, and report generation. The three artifacts are written to
the output directory as transcript_{timestamp}.txt,
conversation_{timestamp}.md, and report_{timestamp}.md.`,
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

		staged, err := cli.Stager.StageFromPath(inputPath)
		if err != nil {
			return err
		}
		defer staged.Cleanup()

		if err := files.CheckAndCreateDirectory(outputDir); err != nil {
			return err
		}

		result, err := cli.Runner.Run(cmd.Context(), pipeline.ProcessRequest{
			Processor: processor,
			Staged:    staged,
			Store:     session.NewStore(),
		})
		if err != nil {
			return err
		}

		for _, artifact := range result.Artifacts {
			path := filepath.Join(outputDir, artifact.Type.DownloadFilename(result.CompletedAt))
			if err := files.WriteToFile(artifact.Content, path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
		}
		fmt.Printf("processed %s with %s in %s\n",
			result.SourceFilename, result.Provider,
			result.CompletedAt.Sub(result.StartedAt).Round(100*time.Millisecond))
		return nil
	},
}
