package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "msgparse",
	Short: "inspect Internet Mail / MIME / S/MIME messages",
	Long: `msgparse reads a raw RFC 5322 message from disk and prints its
parsed envelope, body, attachment list and S/MIME attributes as JSON.`,
}

var verbose bool

func init() {
	cobra.OnInitialize()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print out more debug information")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("msgparse: command failed")
	}
}
