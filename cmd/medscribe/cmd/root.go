package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daymade/medscribe/cmd/medscribe/cmd/batch"
	"github.com/daymade/medscribe/cmd/medscribe/cmd/process"
	"github.com/daymade/medscribe/cmd/medscribe/cmd/serve"
	"github.com/daymade/medscribe/cmd/medscribe/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medscribe",
	Short: "Turn consultation audio into a transcript, a conversation, and a medical report",
	Long: `medscribe sends a consultation recording through an external AI provider
three times: raw transcription, speaker-formatted conversation, and a
structured medical report.

- serve starts the web UI and JSON API
- process handles a single MP3 from the command line
- batch processes every MP3 in a directory`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(batch.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
