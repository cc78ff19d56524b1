package converter

import (
	"fmt"
	"os"

	"github.com/achain/deploy-tool/util"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "keys-convert",
		Short: "Convert a WIF key list into a wallet console import script",
		Args:  cobra.NoArgs,
		Run:   doConvert,
	}

	keysFile   string
	outputFile string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&keysFile, "keys", DefaultKeysFile, "WIF key list file path")
	rootCmd.PersistentFlags().StringVar(&outputFile, "output", DefaultOutputFile, "console script file path, overwritten on each run")
}

// Command returns the key list conversion command.
func Command() *cobra.Command {
	return rootCmd
}

func doConvert(cmd *cobra.Command, args []string) {
	summary, err := ConvertFile(keysFile, outputFile, os.Stdout)
	util.OsExitIfErr(err, "Failed to convert key list %v", keysFile)

	fmt.Println(summary)
}
