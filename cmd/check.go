package cmd

import (
	"encoding/json"
	"fmt"

	"bucket-browser/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [prefix]",
	Short: "Scan the bucket for objects the browser cannot serve",
	Long: `Walks every object under prefix (the whole bucket by default) and reports objects whose
metadata would fail the listing of their parent prefix, or whose key no request path can reach.
Exits with an error when any issue is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		prefix := ""
		if len(args) == 1 {
			prefix = normalizePrefix(args[0])
		}

		env, err := loadBrowseEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		env.logger.Info("Scanning bucket (this might take a while)...",
			zap.String("bucket", env.cfg.Storage.Bucket),
			zap.String("prefix", prefix),
		)

		svc := integrity.NewService(env.client, env.cfg.Storage.Bucket, env.logger)
		report, err := svc.Run(cmd.Context(), prefix)
		if err != nil {
			return fmt.Errorf("integrity check failed: %w", err)
		}

		if jsonOutput {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		} else {
			env.logger.Info("Scan finished",
				zap.Int("scanned", report.Scanned),
				zap.Int("issues", len(report.Issues)),
			)
		}

		if !report.Healthy() {
			return fmt.Errorf("found %d unservable objects", len(report.Issues))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "print the report as JSON")
	RootCmd.AddCommand(checkCmd)
}
