package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/bigraph"
	"github.com/arloliu/bigraph/key"
)

var (
	keygenRecipient string
	keygenSeed      int64
)

func init() {
	keygenCmd.Flags().StringVarP(&keygenRecipient, "recipient", "r", "", "recipient the key is for (required)")
	keygenCmd.Flags().Int64VarP(&keygenSeed, "seed", "s", 0, "deterministic seed (omit for a random seed)")
	_ = keygenCmd.MarkFlagRequired("recipient")

	rootCmd.AddCommand(keygenCmd)
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate and store a key for a recipient",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}

		var model *key.Model
		if cmd.Flags().Changed("seed") {
			log.Infof("Building key for %q from seed %d", keygenRecipient, keygenSeed)
			model, err = bigraph.GenerateKeyWithSeed(keygenRecipient, keygenSeed)
		} else {
			log.Infof("Building key for %q with a random seed", keygenRecipient)
			model, err = bigraph.GenerateKey(keygenRecipient)
		}
		if err != nil {
			return err
		}

		path, err := store.Save(model)
		if err != nil {
			return err
		}

		fmt.Printf("%s key %s for %s (%d symbols)\n",
			color.GreenString("✓"), color.YellowString("%016x", model.ID()), model.Recipient(), model.TotalSymbols())
		fmt.Printf("%s saved to %s\n", color.CyanString("→"), path)
		fmt.Printf("%s share seed %d with the recipient to let them rebuild the key\n", color.CyanString("→"), model.Seed())

		return nil
	},
}
