package monodelta

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rowdymehul/mononoke/blobstore"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Inspect and edit the bookmarks registry",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bookmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openBookmarks()
		if err != nil {
			return err
		}
		marks := reg.List()
		names := make([]string, 0, len(marks))
		for name := range marks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s\t%s\n", name, marks[name])
		}
		return nil
	},
}

var bookmarksSetCmd = &cobra.Command{
	Use:   "set <name> <hash>",
	Short: "Set a bookmark to point at a revision hash",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := blobstore.ParseHash(args[1])
		if err != nil {
			return fmt.Errorf("invalid hash: %w", err)
		}
		reg, err := openBookmarks()
		if err != nil {
			return err
		}
		reg.Set(args[0], h)
		if err := reg.Save(cfg.BookmarksFile); err != nil {
			return fmt.Errorf("save bookmarks: %w", err)
		}
		log.WithField("name", args[0]).Info("bookmark set")
		return nil
	},
}

var bookmarksRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openBookmarks()
		if err != nil {
			return err
		}
		reg.Delete(args[0])
		if err := reg.Save(cfg.BookmarksFile); err != nil {
			return fmt.Errorf("save bookmarks: %w", err)
		}
		log.WithField("name", args[0]).Info("bookmark removed")
		return nil
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksSetCmd)
	bookmarksCmd.AddCommand(bookmarksRmCmd)
}
