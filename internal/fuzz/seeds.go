package fuzztests

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 4 << 10 // 4 KiB, строки длиннее не нужны

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range []string{
		"",
		"4 + 3",
		"2 ^ 3 ^ 2",
		"2*-(1+1)",
		"-(-(-(1)))",
		"9223372036854775807 + 1",
		"-9223372036854775808 / -1",
		"((((((((((1))))))))))",
		"1 +\t-2",
		"１２＋３",
	} {
		f.Add(s)
	}
}

// addTestdataSeeds adds every line of testdata/*.txt.
func addTestdataSeeds(f *testing.F) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "*.txt"))
	if err != nil {
		return
	}
	for _, path := range paths {
		// #nosec G304 -- path comes from repository testdata glob
		file, err := os.Open(path)
		if err != nil {
			continue
		}
		sc := bufio.NewScanner(file)
		for sc.Scan() {
			if line := sc.Text(); len(line) <= maxSeedBytes {
				f.Add(line)
			}
		}
		_ = file.Close()
	}
}
