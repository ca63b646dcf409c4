package wishlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mzsombor/wishlet/internal/catalog"
)

// The wishlist snapshot is a JSON array of full product copies at a fixed
// path, read once at startup and rewritten after every mutation. There is
// no versioning: a snapshot that no longer decodes is discarded wholesale.

// readSnapshot loads the persisted entry sequence. Every failure degrades
// to an empty sequence; corrupting the UI over a storage problem is worse
// than losing the wishlist.
func readSnapshot(path string, log zerolog.Logger) []catalog.Product {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("read wishlist snapshot")
		}
		return nil
	}

	var entries []catalog.Product
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("discarding undecodable wishlist snapshot")
		return nil
	}
	return entries
}

// writeSnapshot serializes the entry sequence to path, creating parent
// directories as needed.
func writeSnapshot(path string, entries []catalog.Product) error {
	if entries == nil {
		entries = []catalog.Product{}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal wishlist: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write wishlist: %w", err)
	}
	return nil
}
