package xpathlex

import (
	"math/rand"
	"testing"
)

type mockReader struct{}

func (mockReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'a'
	}
	return len(p), nil
}

func BenchmarkBuffers(b *testing.B) {
	var s buffers
	s.init(mockReader{}, 4<<10)
	rnd := rand.New(rand.NewSource(123456))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		switch rnd.Intn(4) {
		case 0:
			if s.fwd >= s.begin {
				s.retreat(1)
			}
		case 1:
			s.mark()
		default:
			if !s.advance(1) {
				s.mark()
			}
			s.current()
		}
	}
}
