package blocksort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(int64(n) + 1)
	}
	return data
}

func generateNearlySorted(n int) []int64 {
	data := generateInt64(n)
	slices.Sort(data)
	for s := 0; s < n/10; s++ {
		i, j := rand.Intn(n), rand.Intn(n)
		data[i], data[j] = data[j], data[i]
	}
	return data
}

func generateReverse(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(n - i)
	}
	return data
}

// Random input benchmarks
func BenchmarkSort_Random_1000(b *testing.B) {
	benchmarkSort(b, generateInt64(1000))
}

func BenchmarkSort_Random_10000(b *testing.B) {
	benchmarkSort(b, generateInt64(10000))
}

func BenchmarkSort_Random_100000(b *testing.B) {
	benchmarkSort(b, generateInt64(100000))
}

func BenchmarkSort_Random_1000000(b *testing.B) {
	benchmarkSort(b, generateInt64(1000000))
}

// Nearly sorted input benchmarks (the adaptive fast path's home turf)
func BenchmarkSort_NearlySorted_10000(b *testing.B) {
	benchmarkSort(b, generateNearlySorted(10000))
}

func BenchmarkSort_NearlySorted_1000000(b *testing.B) {
	benchmarkSort(b, generateNearlySorted(1000000))
}

// Reverse sorted input benchmarks
func BenchmarkSort_Reverse_10000(b *testing.B) {
	benchmarkSort(b, generateReverse(10000))
}

func BenchmarkSort_Reverse_1000000(b *testing.B) {
	benchmarkSort(b, generateReverse(1000000))
}

// Stdlib comparison on the same inputs
func BenchmarkStdlibSort_Random_100000(b *testing.B) {
	ref := generateInt64(100000)
	data := make([]int64, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

func benchmarkSort(b *testing.B, ref []int64) {
	data := make([]int64, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}
