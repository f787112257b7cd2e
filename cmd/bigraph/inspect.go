package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/bigraph/codec"
	"github.com/arloliu/bigraph/token"
)

var (
	inspectKeyPath string
	inspectInFile  string
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectKeyPath, "key", "k", "", "key file to decode with (required)")
	inspectCmd.Flags().StringVarP(&inspectInFile, "file", "f", "", "read the message from a file instead of the argument")
	_ = inspectCmd.MarkFlagRequired("key")

	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [message]",
	Short: "Show per-token decode diagnostics for a message",
	RunE: func(cmd *cobra.Command, args []string) error {
		wire, err := readInput(args, inspectInFile)
		if err != nil {
			return err
		}

		tokens, err := token.Parse(wire)
		if err != nil {
			return err
		}

		store, err := newStore()
		if err != nil {
			return err
		}

		model, err := store.LoadModel(inspectKeyPath)
		if err != nil {
			return err
		}

		decoder := codec.NewDecoder(model)
		details, err := decoder.DecodeDetail(tokens)
		if err != nil {
			return err
		}

		fmt.Printf("%-8s %-8s %-8s %-18s %s\n", "WIRE", "SYMBOL", "PARTIAL", "MEANING", "TEXT")
		for _, d := range details {
			fmt.Printf("%-8d %-8d %-8s %-18s %q\n",
				d.Token.Wire(), d.Token.Symbol, d.Token.Partial, d.Meaning, d.Text)
		}

		text, err := decoder.Decode(tokens)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s %s\n", color.GreenString("✓"), text)

		return nil
	},
}
