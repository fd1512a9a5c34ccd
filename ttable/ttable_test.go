package ttable_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/cgtlath/canonical"
	"github.com/katalvlaran/cgtlath/ttable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupInsert(t *testing.T) {
	table := ttable.NewParallel[string]()
	assert.True(t, table.IsEmpty())

	_, ok := table.Lookup("pos")
	assert.False(t, ok)

	table.Insert("pos", canonical.Integer(3))
	v, ok := table.Lookup("pos")
	require.True(t, ok)
	assert.True(t, v.Equal(canonical.Integer(3)))
	assert.Equal(t, 1, table.Len())
}

func TestComputeCaches(t *testing.T) {
	table := ttable.NewParallel[string](ttable.WithCapacity(16))
	var calls int32

	for i := 0; i < 3; i++ {
		v := table.Compute("pos", func() canonical.Form {
			atomic.AddInt32(&calls, 1)
			return canonical.Integer(7)
		})
		assert.True(t, v.Equal(canonical.Integer(7)))
	}
	assert.Equal(t, int32(1), calls)
}

func TestComputeCollapsesConcurrentCallers(t *testing.T) {
	table := ttable.NewParallel[string]()
	var calls int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := table.Compute("slow", func() canonical.Form {
				atomic.AddInt32(&calls, 1)
				<-release
				return canonical.Integer(1)
			})
			assert.True(t, v.Equal(canonical.Integer(1)))
		}()
	}
	close(release)
	wg.Wait()
	// The burst shares one flight; late arrivals may start a second after
	// the first completes and hit the cache inside it, but never recompute
	// unboundedly.
	assert.LessOrEqual(t, calls, int32(2))
	assert.Equal(t, 1, table.Len())
}

func TestConcurrentDistinctPositions(t *testing.T) {
	table := ttable.NewParallel[int]()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table.Insert(i, canonical.Integer(int64(i)))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 64, table.Len())
	v, ok := table.Lookup(17)
	require.True(t, ok)
	assert.True(t, v.Equal(canonical.Integer(17)))
}

func TestNoTableNeverCaches(t *testing.T) {
	table := ttable.NewNoTable[string]()
	var calls int
	for i := 0; i < 2; i++ {
		v := table.Compute("pos", func() canonical.Form {
			calls++
			return canonical.Integer(0)
		})
		assert.True(t, v.Equal(canonical.Integer(0)))
	}
	assert.Equal(t, 2, calls)
	_, ok := table.Lookup("pos")
	assert.False(t, ok)
}
