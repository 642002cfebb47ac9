package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeTrackerFollowsUpdates(t *testing.T) {
	s := newSizeTracker(80, 24)
	w, h, err := s.getSize()
	require.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.update(100+i, 40)
			_, _, _ = s.getSize()
		}()
	}
	wg.Wait()

	w, h, _ = s.getSize()
	assert.GreaterOrEqual(t, w, 100)
	assert.Equal(t, 40, h)
}
