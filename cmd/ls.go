package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"bucket-browser/feature/browse/models"
	"bucket-browser/feature/browse/render"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List a prefix of the bucket",
	Long: `List the sub-prefixes and objects directly under a prefix, in the same order
as the HTML listing. Without an argument the bucket root is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = normalizePrefix(args[0])
		}
		display := prefix
		if display == "" {
			display = "/"
		}

		env, err := loadBrowseEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		listing, err := env.feature.Service().BuildListing(cmd.Context(), prefix, display)
		if err != nil {
			return err
		}
		return writeListing(cmd.OutOrStdout(), listing, env.format)
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)
}

// normalizePrefix drops one leading "/" and makes sure a non-root prefix ends with "/".
func normalizePrefix(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p != "" && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func writeListing(w io.Writer, listing *models.Listing, format render.SizeFormat) error {
	var buffer bytes.Buffer
	for _, e := range listing.Entries {
		name, err := models.DisplayName(listing.Prefix, e.Key)
		if err != nil {
			return err
		}
		if e.IsDir() {
			buffer.WriteString("d\t")
			buffer.WriteString(fmt.Sprintf("%10s\t", "-"))
			buffer.WriteString(fmt.Sprintf("%-19s\t", "-"))
		} else {
			buffer.WriteString("-\t")
			buffer.WriteString(fmt.Sprintf("%10s\t", format.Format(e.Size)))
			buffer.WriteString(e.Uploaded.UTC().Format(render.TimeFormat))
			buffer.WriteString("\t")
		}
		buffer.WriteString(name)
		buffer.WriteString("\n")
	}
	_, err := w.Write(buffer.Bytes())
	return err
}
