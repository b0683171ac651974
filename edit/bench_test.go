package edit_test

import (
	"strings"
	"testing"

	"github.com/joseias/StrMean/edit"
)

// benchmarkAlign runs Align on two pseudo-random words of lengths n and m.
func benchmarkAlign(b *testing.B, n, m int, withOps bool) {
	x := []rune(strings.Repeat("abcab", n/5+1)[:n])
	y := []rune(strings.Repeat("bacba", m/5+1)[:m])
	cm := edit.UnitCost{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := edit.Align(x, y, cm, withOps); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small benchmarks a 100×100 alignment with backtrace.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 100, 100, true) }

// BenchmarkAlign_Medium benchmarks a 500×500 alignment with backtrace.
func BenchmarkAlign_Medium(b *testing.B) { benchmarkAlign(b, 500, 500, true) }

// BenchmarkAlign_DistanceOnly benchmarks the full table without backtrace.
func BenchmarkAlign_DistanceOnly(b *testing.B) { benchmarkAlign(b, 500, 500, false) }

// BenchmarkDistance_Medium benchmarks the rolling-row distance on 500×500.
func BenchmarkDistance_Medium(b *testing.B) {
	x := []rune(strings.Repeat("abcab", 100))
	y := []rune(strings.Repeat("bacba", 100))
	cm := edit.UnitCost{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = edit.Distance(x, y, cm)
	}
}
