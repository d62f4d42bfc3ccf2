package main

import (
	"os"

	"github.com/aayushsoam1/cogni-mind/internal/util"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"
	"github.com/aayushsoam1/cogni-mind/pkg/logger/console"

	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "mindmap",
	Short: "Generate mind maps from a prompt",
	Long: `Generate study, job and notes mind maps with a language model.

Environment Variables:
  AI_ADAPTER     openai (default) or ollama
  AI_CHAT_URL    Base URL of the completion endpoint
  AI_CHAT_KEY    API key for the completion endpoint
  AI_CHAT_MODEL  Model name (default google/gemini-2.5-flash)`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		util.LoadEnv()
		logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
			Debug:  debug || util.GetEnvBool("DEBUG", false),
			Prefix: "mindmap",
			Output: cmd.ErrOrStderr(),
		}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
