package bench

import (
	"cmp"
	"slices"
)

// Reference algorithms the harness compares against. These are deliberately
// textbook renditions; the point is a familiar baseline, not a tuned rival.

// quicksortSmallThreshold hands small partitions to insertion sort.
const quicksortSmallThreshold = 16

// Quicksort sorts data in place with a median-of-3 pivot and a 3-way
// partition, so duplicate-heavy input does not degrade quadratically.
func Quicksort[T cmp.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= quicksortSmallThreshold {
		InsertionSort(data)
		return
	}

	pivot := medianOfThree(data)
	lt, gt := partition3Way(data, pivot)
	Quicksort(data[:lt])
	Quicksort(data[gt:])
}

// medianOfThree returns the median of the first, middle and last element.
func medianOfThree[T cmp.Ordered](data []T) T {
	a := data[0]
	b := data[len(data)/2]
	c := data[len(data)-1]

	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
		if a > b {
			b = a
		}
	}
	return b
}

// partition3Way performs Dutch National Flag partitioning around pivot and
// returns the bounds of the equal region.
func partition3Way[T cmp.Ordered](data []T, pivot T) (int, int) {
	lt := 0
	gt := len(data)
	i := 0

	for i < gt {
		if data[i] < pivot {
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		} else if data[i] > pivot {
			gt--
			data[i], data[gt] = data[gt], data[i]
		} else {
			i++
		}
	}

	return lt, gt
}

// Mergesort sorts data with top-down merge sort, allocating the halves.
func Mergesort[T cmp.Ordered](data []T) {
	if len(data) <= 1 {
		return
	}

	mid := len(data) / 2
	left := slices.Clone(data[:mid])
	right := slices.Clone(data[mid:])
	Mergesort(left)
	Mergesort(right)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			data[k] = left[i]
			i++
		} else {
			data[k] = right[j]
			j++
		}
		k++
	}
	k += copy(data[k:], left[i:])
	copy(data[k:], right[j:])
}

// InsertionSort sorts data in place with plain insertion sort.
func InsertionSort[T cmp.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
