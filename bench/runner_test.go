package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	return Config{
		Sizes:         []int{100, 500},
		Distributions: []Distribution{Random, Duplicates},
		Runs:          2,
		Seed:          7,
	}
}

func TestRunProducesOneResultPerTask(t *testing.T) {
	cfg := smallConfig()
	results, err := cfg.Run()
	require.Nil(t, err)

	// Defaulted algorithm list: 5 contestants.
	assert.Equal(t, 2*2*5, len(results))

	for _, r := range results {
		assert.True(t, r.Sorted, "%s on %s/%d left unsorted output", r.Algorithm, r.Distribution, r.Size)
		assert.True(t, r.MeanTime >= 0)
		assert.True(t, r.MeanAllocMB >= 0)
	}
}

func TestRunInvalidRuns(t *testing.T) {
	cfg := smallConfig()
	cfg.Runs = 0
	_, err := cfg.Run()
	assert.NotNil(t, err)
}

func TestRunUnknownDistribution(t *testing.T) {
	cfg := smallConfig()
	cfg.Distributions = []Distribution{Distribution("bogus")}
	_, err := cfg.Run()
	assert.NotNil(t, err)
}

func TestRunProgressCallback(t *testing.T) {
	cfg := smallConfig()
	cfg.Algorithms = []Algorithm{
		{Name: "StdlibSort", Sort: DefaultAlgorithms()[1].Sort},
	}

	var calls []int
	cfg.OnProgress = func(done, total int) {
		assert.Equal(t, cfg.TaskCount(), total)
		calls = append(calls, done)
	}

	_, err := cfg.Run()
	require.Nil(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, calls)
}

func TestDefaultAlgorithmsLeadWithBlocksort(t *testing.T) {
	algs := DefaultAlgorithms()
	require.Equal(t, 5, len(algs))
	assert.Equal(t, "AdaptiveBlockSort", algs[0].Name)
}

func TestCollectHostInfo(t *testing.T) {
	hi := CollectHostInfo()
	require.NotNil(t, hi)
	assert.True(t, hi.NumCPU > 0)
	assert.NotEmpty(t, hi.GoVersion)
	assert.NotEmpty(t, hi.MemorySize)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512.00 B", formatBytes(512))
	assert.Equal(t, "1.00 KB", formatBytes(1024))
	assert.Equal(t, "16.00 GB", formatBytes(16<<30))
}
