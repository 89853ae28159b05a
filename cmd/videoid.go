package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tubetrans/internal/youtube"
)

var VideoIDCmd = &cobra.Command{
	Use:   "videoid <youtube url>",
	Short: "Print the 11-character video id of a YouTube link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := youtube.ExtractVideoID(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(VideoIDCmd)
}
