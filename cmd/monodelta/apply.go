package monodelta

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rowdymehul/mononoke/blobstore"
	"github.com/rowdymehul/mononoke/revlog"
)

var applyCmd = &cobra.Command{
	Use:   "apply <store-dir> <entry-id>",
	Short: "Reconstruct a revision and write it to stdout",
	Long: `apply reconstructs the revision named by entry-id (the content hash
of an encoded revlog.Entry blob) by fetching its base snapshot and delta
chain from store-dir, folding the chain with delta.CombineChain, and
writing the resulting bytes to stdout.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(args[0], args[1])
	},
}

func runApply(storeDir, entryID string) error {
	store := blobstore.NewFSStore(nil, storeDir)

	h, err := blobstore.ParseHash(entryID)
	if err != nil {
		return fmt.Errorf("invalid entry id: %w", err)
	}

	ctx := context.Background()
	blob, err := store.Fetch(ctx, h).Wait(ctx)
	if err != nil {
		return fmt.Errorf("fetch entry: %w", err)
	}

	entry, err := revlog.DecodeEntry(blob)
	if err != nil {
		return fmt.Errorf("decode entry: %w", err)
	}

	log.WithField("entry", entryID).Debug("reconstructing revision")

	text, err := revlog.Reconstruct(ctx, store, entry)
	if err != nil {
		return fmt.Errorf("reconstruct: %w", err)
	}

	_, err = os.Stdout.Write(text)
	return err
}
