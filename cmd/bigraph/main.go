package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/bigraph/compress"
	"github.com/arloliu/bigraph/keyfile"
)

var (
	keysDir     string
	compression string
	verbose     bool
	debug       bool

	log logger
)

var rootCmd = &cobra.Command{
	Use:   "bigraph",
	Short: "Bigraph - a bigram substitution codec with per-recipient symbol keys.",
	Long: `Bigraph encodes text into streams of integer symbol tokens using a
per-recipient shuffled symbol table, and decodes them back.

Two parties sharing a (recipient, seed) pair rebuild identical tables, so
only the seed has to be exchanged. This is a substitution codec, not a
secure cipher: keep the seed private.

Available Commands:
  keygen     Generate and store a key for a recipient
  keys       List stored keys
  encode     Encode text or a math expression into a message file
  decode     Decode a message file back into text
  inspect    Show per-token decode diagnostics for a message
  glyphs     Export the SVG glyphs of a key's symbols

Run 'bigraph help <command>' for details on a specific command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger{verbose: verbose, debug: debug}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run 'bigraph --help' to see available commands.")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&keysDir, "keys-dir", "keys", "directory key files are stored in")
	rootCmd.PersistentFlags().StringVar(&compression, "compression", "zstd", "key file compression (none, zstd, s2, lz4)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show informational output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "show debug output")
}

// newStore builds the key store from the global flags.
func newStore() (*keyfile.Store, error) {
	typ, ok := compress.ParseType(compression)
	if !ok {
		return nil, fmt.Errorf("unknown compression %q (use none, zstd, s2 or lz4)", compression)
	}

	return keyfile.NewStore(keyfile.WithDirectory(keysDir), keyfile.WithCompression(typ))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
