package identify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readSamples loads one identifier per line from testdata, skipping blank
// lines and # comments.
func readSamples(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	var samples []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		samples = append(samples, line)
	}
	return samples
}

func TestResolveSamples(t *testing.T) {
	files := []string{
		"landsat_products.txt",
		"landsat_scene_ids.txt",
		"sentinel2_products.txt",
		"sentinel3_products.txt",
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			samples := readSamples(t, file)
			require.NotEmpty(t, samples)
			for _, s := range samples {
				_, err := Resolve(s)
				assert.NoError(t, err, s)
			}
		})
	}
}
