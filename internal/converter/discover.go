// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supportedExts lists the input extensions the engine accepts, lowercase.
var supportedExts = map[string]bool{
	".webp": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// discover lists the supported image files directly under dir. Subdirectories
// are not entered and non-regular entries are ignored. The result is sorted
// by full path; sequence numbers are assigned in this order, so it must stay
// deterministic.
func discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if !supportedExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(files)
	return files, nil
}
