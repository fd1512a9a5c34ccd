package nimber_test

import (
	"testing"

	"github.com/katalvlaran/cgtlath/nimber"
)

// BenchmarkMex measures the sort-and-scan minimum excludant on a move list
// of realistic size for a mid-game impartial position.
func BenchmarkMex(b *testing.B) {
	options := make([]nimber.Nimber, 64)
	for i := range options {
		options[i] = nimber.New(uint32((i * 7) % 40))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nimber.Mex(options)
	}
}
