package asset

import (
	"strconv"
	"time"

	"github.com/ganot/lumina/internal/domain/concept"
)

// HistoryLimit caps how many versions are kept per hero asset.
const HistoryLimit = 5

// AppendVersion prepends a fresh version for ref to history and truncates
// to HistoryLimit. Pure: the input slice is not modified.
func AppendVersion(history []concept.AssetVersion, ref concept.AssetRef) []concept.AssetVersion {
	now := time.Now()
	version := concept.AssetVersion{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		URL:       ref,
		Timestamp: now.UnixMilli(),
	}

	updated := make([]concept.AssetVersion, 0, len(history)+1)
	updated = append(updated, version)
	updated = append(updated, history...)
	if len(updated) > HistoryLimit {
		updated = updated[:HistoryLimit]
	}
	return updated
}

// SelectVersion returns ref if it is present in history, so a caller can
// switch the active reference to any recorded version.
func SelectVersion(history []concept.AssetVersion, ref concept.AssetRef) (concept.AssetRef, error) {
	for _, version := range history {
		if version.URL == ref {
			return ref, nil
		}
	}
	return "", ErrVersionNotFound
}

// VisibleHistory filters out entries whose ref is a loading or error
// sentinel; this is what a version picker should display.
func VisibleHistory(history []concept.AssetVersion) []concept.AssetVersion {
	visible := make([]concept.AssetVersion, 0, len(history))
	for _, version := range history {
		if version.URL.Ready() {
			visible = append(visible, version)
		}
	}
	return visible
}
