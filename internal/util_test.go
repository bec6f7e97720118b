package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath(t *testing.T) {
	parents := map[string]string{"b": "a", "c": "b", "d": "c"}
	parentOf := func(n string) (string, bool) {
		p, ok := parents[n]
		return p, ok
	}

	assert.Equal(t, []string{"b", "c", "d"}, ReconstructPath("d", parentOf))
	assert.Equal(t, []string{"b"}, ReconstructPath("b", parentOf))
	assert.Nil(t, ReconstructPath("a", parentOf))
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3, 4}
	Reverse(s)
	assert.Equal(t, []int{4, 3, 2, 1}, s)

	var empty []int
	Reverse(empty)
	assert.Empty(t, empty)
}
