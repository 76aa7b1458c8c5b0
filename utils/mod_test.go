package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 2, FindIndex([]int{4, 5, 6}, 6))
	require.Equal(t, -1, FindIndex([]string{"a"}, "b"))
}

func TestMoveToFront(t *testing.T) {
	require.Equal(t, []int{3, 1, 2, 4}, MoveToFront([]int{1, 2, 3, 4}, 2))
	require.Equal(t, []int{1, 2}, MoveToFront([]int{1, 2}, 0))
	require.Equal(t, []int{1, 2}, MoveToFront([]int{1, 2}, 5))
}

func TestReversed(t *testing.T) {
	in := []int{1, 2, 3}
	require.Equal(t, []int{3, 2, 1}, Reversed(in))
	require.Equal(t, []int{1, 2, 3}, in)
	require.Empty(t, Reversed([]int{}))
}
