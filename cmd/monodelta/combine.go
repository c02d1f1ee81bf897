package monodelta

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rowdymehul/mononoke/blobstore"
	"github.com/rowdymehul/mononoke/delta"
)

var combineCmd = &cobra.Command{
	Use:   "combine <store-dir> <hash>...",
	Short: "Fold a chain of delta blobs and print the composed fragment list",
	Long: `combine fetches each named delta blob from store-dir, folds the
chain with delta.CombineChain, and prints the resulting fragment list. It
is a debug aid for inspecting composition from the command line and does
not touch any base snapshot.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCombine(args[0], args[1:])
	},
}

func runCombine(storeDir string, hashArgs []string) error {
	store := blobstore.NewFSStore(nil, storeDir)

	hashes := make([]blobstore.Hash, len(hashArgs))
	for i, a := range hashArgs {
		h, err := blobstore.ParseHash(a)
		if err != nil {
			return fmt.Errorf("invalid hash %q: %w", a, err)
		}
		hashes[i] = h
	}

	ctx := context.Background()
	deltas, err := blobstore.FetchChain(ctx, store, hashes)
	if err != nil {
		return fmt.Errorf("fetch chain: %w", err)
	}

	combined := delta.CombineChain(deltas)
	for _, f := range combined.Fragments() {
		fmt.Printf("[%d,%d) -> %q\n", f.Start, f.End, f.Content)
	}
	return nil
}
