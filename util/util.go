package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// GatherAllChartPaths collects .sm files under root. Without recursive
// only root's own entries are considered; maxNum of 0 means unlimited.
func GatherAllChartPaths(root string, recursive bool, maxNum int) []string {
	var res []string

	add := func(p string) {
		if strings.HasSuffix(p, ".sm") && (maxNum == 0 || len(res) < maxNum) {
			res = append(res, p)
		}
	}

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return res
		}
		for _, e := range entries {
			if !e.IsDir() {
				add(filepath.Join(root, e.Name()))
			}
		}
		return res
	}

	filepath.WalkDir(root, func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			add(s)
		}
		return nil
	})
	return res
}

// OutputName builds the image filename for one chart:
// <base>_<S|D>_<difficulty>.png with the difficulty lowercased.
func OutputName(smPath, marker, difficulty string) string {
	base := strings.TrimSuffix(filepath.Base(smPath), filepath.Ext(smPath))
	return fmt.Sprintf("%s_%s_%s.png", base, marker, strings.ToLower(difficulty))
}

// OutputPath places name beside the source file, or in outDir when one
// is set.
func OutputPath(smPath, outDir, name string) string {
	if outDir != "" {
		return filepath.Join(outDir, name)
	}
	return filepath.Join(filepath.Dir(smPath), name)
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
