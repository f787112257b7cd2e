package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/bigraph/codec"
	"github.com/arloliu/bigraph/token"
)

var (
	encodeKeyPath string
	encodeInFile  string
	encodeOutFile string
	encodeMath    bool
)

func init() {
	encodeCmd.Flags().StringVarP(&encodeKeyPath, "key", "k", "", "key file to encode with (required)")
	encodeCmd.Flags().StringVarP(&encodeInFile, "file", "f", "", "read the text from a file instead of the argument")
	encodeCmd.Flags().StringVarP(&encodeOutFile, "out", "o", "", "write the message file here instead of stdout")
	encodeCmd.Flags().BoolVarP(&encodeMath, "math", "m", false, "encode a math expression (\"number * number\" or \"number / number\")")
	_ = encodeCmd.MarkFlagRequired("key")

	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text or a math expression into a message file",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, encodeInFile)
		if err != nil {
			return err
		}

		store, err := newStore()
		if err != nil {
			return err
		}

		model, err := store.LoadModel(encodeKeyPath)
		if err != nil {
			return err
		}
		log.Debugf("Loaded key %016x for %q", model.ID(), model.Recipient())

		encoder := codec.NewEncoder(model)

		var tokens []token.Token
		if encodeMath {
			tokens, err = encoder.EncodeMathExpression(text)
		} else {
			tokens, err = encoder.Encode(text)
		}
		if err != nil {
			return err
		}
		log.Infof("Encoded %d tokens", len(tokens))

		if encodeOutFile == "" {
			fmt.Println(token.Format(tokens))
			return nil
		}

		if err := token.WriteFile(encodeOutFile, tokens); err != nil {
			return err
		}
		fmt.Printf("%s wrote %d tokens to %s\n", color.GreenString("✓"), len(tokens), encodeOutFile)

		return nil
	},
}

// readInput takes the message from the positional argument or, with --file,
// from a file.
func readInput(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}

		return string(data), nil
	}

	if len(args) == 0 {
		return "", fmt.Errorf("provide the text as an argument or with --file")
	}

	return strings.Join(args, " "), nil
}
