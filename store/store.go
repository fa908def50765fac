// Package store persists the bot's two durable records, the per-user timezone
// mapping and the event log, as human-readable JSON files. Every mutation is an
// atomic whole-file rewrite, and each store serializes access with its own
// lock, so concurrent commands cannot lose writes.
package store

import "os"

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
