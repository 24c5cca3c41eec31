package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the twitter-mcp application
var rootCmd = &cobra.Command{
	Use:   "twitter-mcp",
	Short: "MCP server providing Twitter/X tools for AI assistants",
	Long: `twitter-mcp is a Model Context Protocol (MCP) server that lets AI
assistants post tweets, search recent tweets, look up user profiles and
delete tweets via the Twitter/X v2 API.

All requests are signed with OAuth 1.0a user context credentials read
from the environment: API_KEY, API_SECRET_KEY, ACCESS_TOKEN and
ACCESS_TOKEN_SECRET.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "twitter-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
