package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/bigraph/codec"
	"github.com/arloliu/bigraph/token"
)

var (
	decodeKeyPath string
	decodeInFile  string
)

func init() {
	decodeCmd.Flags().StringVarP(&decodeKeyPath, "key", "k", "", "key file to decode with (required)")
	decodeCmd.Flags().StringVarP(&decodeInFile, "file", "f", "", "read the message from a file instead of the argument")
	_ = decodeCmd.MarkFlagRequired("key")

	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode [message]",
	Short: "Decode a message file back into text",
	RunE: func(cmd *cobra.Command, args []string) error {
		wire, err := readInput(args, decodeInFile)
		if err != nil {
			return err
		}

		tokens, err := token.Parse(wire)
		if err != nil {
			return err
		}
		log.Debugf("Parsed %d tokens", len(tokens))

		store, err := newStore()
		if err != nil {
			return err
		}

		model, err := store.LoadModel(decodeKeyPath)
		if err != nil {
			return err
		}

		text, err := codec.NewDecoder(model).Decode(tokens)
		if err != nil {
			return err
		}

		fmt.Println(text)

		return nil
	},
}
