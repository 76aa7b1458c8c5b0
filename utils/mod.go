package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// MoveToFront moves the element at index i to the head of slice, keeping the
// order of the others. The slice is modified in place.
func MoveToFront[T any](slice []T, i int) []T {
	if i <= 0 || i >= len(slice) {
		return slice
	}
	item := slice[i]
	copy(slice[1:i+1], slice[:i])
	slice[0] = item
	return slice
}

// Reversed returns a reversed copy of slice.
func Reversed[T any](slice []T) []T {
	out := make([]T, len(slice))
	for i, v := range slice {
		out[len(slice)-1-i] = v
	}
	return out
}
