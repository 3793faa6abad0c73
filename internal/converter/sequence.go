// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// inferStart returns the first sequence number for a renaming batch.
//
// It scans the output folder's direct children for files named
// <prefix>_<number><ext> (extension compared case-insensitively) and
// continues one past the highest number found, unless the requested start is
// already above it — an explicit start above the existing maximum is honored
// as-is. Names whose suffix does not parse as an integer are ignored. When
// the folder is unreadable or holds no numbered files, the requested start
// is used unchanged.
func inferStart(outDir, prefix, ext string, requested int) int {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return requested
	}

	maxFound, found := 0, false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ext) {
			continue
		}
		if !strings.HasPrefix(name, prefix+"_") {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		n, err := strconv.Atoi(stem[len(prefix)+1:])
		if err != nil {
			continue
		}
		if !found || n > maxFound {
			maxFound, found = n, true
		}
	}

	if !found || requested > maxFound {
		return requested
	}
	return maxFound + 1
}
