// Command export writes all test cases as layer JSON files, so that they
// can be loaded into the font editor or passed to combview.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/comb/layer"
	"seehuhn.de/go/comb/testcases"
)

const outDir = "testdata/layers"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writeLayer(filepath.Join(outDir, name+".json"), tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writeLayer(fname string, tc testcases.TestCase) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	l := &layer.Layer{
		Width:    tc.Box.URx - tc.Box.LLx,
		Contours: tc.Contours,
	}
	return layer.Encode(f, l)
}
