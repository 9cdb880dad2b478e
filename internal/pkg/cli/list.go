package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/batchmv/batchmv/internal/pkg/encoding/json"
	"github.com/batchmv/batchmv/internal/pkg/local"
	"github.com/batchmv/batchmv/internal/pkg/model"
)

const (
	listShortDescription = `List regular files in a directory`
	listLongDescription  = `Command "list"

List regular files in a directory.
Sub-directories, symlinks and special files are skipped.

The order of the output follows the filesystem enumeration,
use the "--sort" flag for a stable order.
`
)

func listCommand(root *rootCommand) *cobra.Command {
	format := "table"
	sortByName := false
	cmd := &cobra.Command{
		Use:   "list [directory]",
		Short: listShortDescription,
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			manager := local.NewManager(root.logger, root.fs)
			entries, err := manager.ListFiles(dir)
			if err != nil {
				return err
			}

			if sortByName {
				sortEntriesByName(entries)
			}

			switch format {
			case "json":
				root.logger.Info(json.MustEncodeString(entries, true))
			case "table":
				root.logger.Infof(`Found %d files in directory "%s":`, len(entries), dir)
				for _, entry := range entries {
					root.logger.Infof("  %s  %s", entry.Modified.Format(time.RFC3339), entry.Name)
				}
			default:
				return fmt.Errorf(`invalid format "%s", use "table" or "json"`, format)
			}

			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().StringVar(&format, "format", "table", `output format "table" or "json"`)
	cmd.Flags().BoolVar(&sortByName, "sort", false, "sort the output by file name")

	return cmd
}

func sortEntriesByName(entries []*model.FileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
