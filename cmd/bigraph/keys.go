package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List stored keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}

		infos, err := store.List()
		if err != nil {
			return err
		}

		if len(infos) == 0 {
			fmt.Printf("No keys in %s. Run %s first.\n", store.Dir(), color.YellowString("bigraph keygen"))
			return nil
		}

		for _, info := range infos {
			fmt.Printf("%s %-20s created %s (v%s)\n  %s\n",
				color.GreenString("•"), info.Recipient, info.Created, info.Version, color.HiBlackString(info.Path))
		}

		return nil
	},
}
