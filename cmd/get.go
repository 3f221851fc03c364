package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var getOutput string

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Download one object from the bucket",
	Long: `Download the object stored under key and write it to stdout, or to a file with -o.

Examples:
  bucket-browser get docs/readme.txt
  bucket-browser get -o ./logo.png docs/img/logo.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.TrimPrefix(args[0], "/")
		if key == "" || strings.HasSuffix(key, "/") {
			return fmt.Errorf("not an object key: %q", args[0])
		}

		env, err := loadBrowseEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		obj, err := env.feature.Service().FetchObject(cmd.Context(), key)
		if err != nil {
			return err
		}
		defer func() { _ = obj.Body.Close() }()

		out := cmd.OutOrStdout()
		if getOutput != "" {
			f, err := os.Create(getOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", getOutput, err)
			}
			defer f.Close()
			out = f
		}

		n, err := io.Copy(out, obj.Body)
		if err != nil {
			return fmt.Errorf("failed to download %s: %w", key, err)
		}
		if getOutput != "" {
			env.logger.Info("Downloaded object",
				zap.String("key", key),
				zap.String("output", getOutput),
				zap.Int64("bytes", n),
			)
		}
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "output file path")
	RootCmd.AddCommand(getCmd)
}
