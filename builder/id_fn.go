package builder

import "strconv"

// IDFn generates a vertex key from its zero-based construction index. It must
// be pure: the same index always yields the same key.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx.
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// LetterIDFn returns spreadsheet-style column letters: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic("builder: LetterIDFn: negative index " + strconv.Itoa(idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
	}

	return string(buf)
}

// PrefixIDFn returns keys prefix+idx.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
