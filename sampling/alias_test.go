package sampling

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fixedRand always draws the same column and coin.
type fixedRand struct {
	j int
	u float64
}

func (r fixedRand) Intn(n int) int   { return r.j % n }
func (r fixedRand) Float64() float64 { return r.u }

func normalized(weights []float32) []float64 {
	var total float64
	for _, w := range weights {
		total += float64(w)
	}

	result := make([]float64, len(weights))
	for i, w := range weights {
		result[i] = float64(w) / total
	}
	return result
}

func TestAliasTable_Distribution(t *testing.T) {
	for _, weights := range [][]float32{
		{1},
		{1, 1},
		{1, 0, 0},
		{0, 0, 5},
		{0.1, 0.2, 0.3, 0.4},
		{3, 1, 4, 1, 5, 9, 2, 6},
		{1e-6, 1, 1e6},
		{0.5, 0, 0.25, 0, 0.25},
	} {
		table, err := NewAliasTable(weights)
		require.NoError(t, err)
		require.Equal(t, len(weights), table.Len())
		require.InDeltaSlice(t, normalized(weights), table.Distribution(), 1e-9, "weights: %v", weights)

		for j := range weights {
			require.GreaterOrEqual(t, table.prob[j], 0.0)
			require.LessOrEqual(t, table.prob[j], 1.0)
			require.GreaterOrEqual(t, table.alias[j], 0)
			require.Less(t, table.alias[j], len(weights))
		}
	}
}

func TestAliasTable_SampleFrequencies(t *testing.T) {
	weights := []float32{0.1, 0.2, 0.3, 0.4}
	table, err := NewAliasTable(weights)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	const nSamples = 200000
	counts := make([]int, len(weights))
	for i := 0; i < nSamples; i++ {
		counts[table.Sample(rng)]++
	}

	expected := normalized(weights)
	for i, c := range counts {
		freq := float64(c) / nSamples
		require.InDelta(t, expected[i], freq, 0.01, "index %d", i)
	}
}

func TestAliasTable_SingleNonzeroWeight(t *testing.T) {
	table, err := NewAliasTable([]float32{1, 0, 0})
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		for _, u := range []float64{0, 0.5, math.Nextafter(1, 0)} {
			require.Equal(t, 0, table.Sample(fixedRand{j: j, u: u}))
		}
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		require.Equal(t, 0, table.Sample(rng))
	}
}

func TestAliasTable_InvalidWeights(t *testing.T) {
	for _, weights := range [][]float32{
		nil,
		{},
		{0, 0, 0},
		{1, -1, 1},
		{1, float32(math.NaN())},
		{1, float32(math.Inf(1))},
	} {
		_, err := NewAliasTable(weights)
		require.Error(t, err, "weights: %v", weights)
		require.Equal(t, ErrInvalidWeights, errors.Cause(err))
	}
}

func TestAliasTable_ResetFailureLeavesTable(t *testing.T) {
	table, err := NewAliasTable([]float32{1, 3})
	require.NoError(t, err)
	before := table.Distribution()

	err = table.Reset([]float32{0, 0})
	require.Equal(t, ErrInvalidWeights, errors.Cause(err))
	require.Equal(t, before, table.Distribution())
}

func TestAliasTable_Reset(t *testing.T) {
	table, err := NewAliasTable([]float32{1, 2, 3, 4, 5})
	require.NoError(t, err)

	weights := []float32{4, 0, 1}
	require.NoError(t, table.Reset(weights))
	require.Equal(t, 3, table.Len())
	require.InDeltaSlice(t, normalized(weights), table.Distribution(), 1e-9)

	allocs := testing.AllocsPerRun(100, func() {
		if err := table.Reset(weights); err != nil {
			t.Fatal(err)
		}
	})
	require.Zero(t, allocs)
}

func TestAliasTable_SampleDoesNotAllocate(t *testing.T) {
	table, err := NewAliasTable([]float32{0.2, 0.3, 0.5})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	allocs := testing.AllocsPerRun(1000, func() {
		table.Sample(rng)
	})
	require.Zero(t, allocs)
}

func BenchmarkAliasTableSample(b *testing.B) {
	weights := make([]float32, 64)
	for i := range weights {
		weights[i] = float32(i + 1)
	}

	table, err := NewAliasTable(weights)
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Sample(rng)
	}
}

func BenchmarkAliasTableReset(b *testing.B) {
	weights := make([]float32, 64)
	for i := range weights {
		weights[i] = float32(i + 1)
	}

	table, err := NewAliasTable(weights)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := table.Reset(weights); err != nil {
			b.Fatal(err)
		}
	}
}
