package largest

// Monomorphic versions of the same scan, kept for contrast with the
// generic ones: the bodies are identical, only the signatures pin the
// element type.

// Int returns a copy of the largest value in list.
// It panics if list is empty.
func Int(list []int) int {
	largest := list[0]

	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}

	return largest
}

// Rune returns a copy of the largest rune in list, under numeric code
// point order ('y' > 'q' > 'm' > 'a'). It panics if list is empty.
func Rune(list []rune) rune {
	largest := list[0]

	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}

	return largest
}

// RuneRef returns a pointer to the first occurrence of the largest rune
// in list, valid while list's backing array is alive. It panics if list
// is empty.
func RuneRef(list []rune) *rune {
	largest := &list[0]

	for i := 1; i < len(list); i++ {
		if list[i] > *largest {
			largest = &list[i]
		}
	}

	return largest
}
