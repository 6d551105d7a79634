package headers

import (
	"iter"
	"strings"
)

type Pair struct {
	Key, Value string
}

// Builder accumulates header pairs while a message is being parsed. It is the only mutable
// stage of the header table and must not be shared between goroutines.
type Builder struct {
	pairs []Pair
}

func NewBuilder() *Builder {
	return new(Builder)
}

// NewBuilderPrealloc returns an instance of Builder with pre-allocated underlying storage.
// Negative n is treated as zero.
func NewBuilderPrealloc(n int) *Builder {
	return &Builder{
		pairs: make([]Pair, 0, max(n, 0)),
	}
}

// Add appends a new pair. Duplicates are preserved in the order they're added.
func (b *Builder) Add(key, value string) *Builder {
	b.pairs = append(b.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return b
}

// Overwrite replaces the first pair with the same (case-insensitively) key in place and drops
// the rest of them, so exactly one pair by the key remains. If there are none, the pair is
// appended.
func (b *Builder) Overwrite(key, value string) *Builder {
	first := b.IndexOf(key)
	if first == -1 {
		return b.Add(key, value)
	}

	b.Delete(key)
	b.pairs = append(b.pairs, Pair{})
	copy(b.pairs[first+1:], b.pairs[first:])
	b.pairs[first] = Pair{
		Key:   key,
		Value: value,
	}

	return b
}

// Delete removes all the pairs by the key.
func (b *Builder) Delete(key string) *Builder {
	pairs := b.pairs[:0]

	for _, pair := range b.pairs {
		if !strings.EqualFold(pair.Key, key) {
			pairs = append(pairs, pair)
		}
	}

	clear(b.pairs[len(pairs):])
	b.pairs = pairs
	return b
}

func (b *Builder) Has(key string) bool {
	return b.IndexOf(key) != -1
}

// Values returns all values by the key in insertion order. Returns nil if the key doesn't exist.
func (b *Builder) Values(key string) (values []string) {
	for _, pair := range b.pairs {
		if strings.EqualFold(pair.Key, key) {
			values = append(values, pair.Value)
		}
	}

	return values
}

// IndexOf returns the position of the first pair with the key, or -1.
func (b *Builder) IndexOf(key string) int {
	for i, pair := range b.pairs {
		if strings.EqualFold(pair.Key, key) {
			return i
		}
	}

	return -1
}

// LastIndexOf returns the position of the last pair with the key, or -1.
func (b *Builder) LastIndexOf(key string) int {
	for i := len(b.pairs) - 1; i >= 0; i-- {
		if strings.EqualFold(b.pairs[i].Key, key) {
			return i
		}
	}

	return -1
}

func (b *Builder) Len() int {
	return len(b.pairs)
}

// Build freezes the accumulated pairs into Headers. The builder may be reused afterward
// without affecting the returned value.
func (b *Builder) Build() *Headers {
	h := &Headers{
		pairs: clone(b.pairs),
		index: make(map[string][]int, len(b.pairs)),
	}

	for i, pair := range h.pairs {
		key := strings.ToLower(pair.Key)
		h.index[key] = append(h.index[key], i)
	}

	return h
}

// Headers is an immutable ordered multimap. Keys keep their original case, however every
// lookup is case-insensitive.
type Headers struct {
	pairs []Pair
	index map[string][]int
}

// New returns empty headers.
func New() *Headers {
	return NewBuilder().Build()
}

// FromPairs builds headers from the pairs, preserving their order.
func FromPairs(pairs ...Pair) *Headers {
	b := NewBuilderPrealloc(len(pairs))
	for _, pair := range pairs {
		b.Add(pair.Key, pair.Value)
	}

	return b.Build()
}

// Get returns the first value by the key and a bool, indicating whether the value was found.
func (h *Headers) Get(key string) (value string, found bool) {
	positions := h.lookup(key)
	if len(positions) == 0 {
		return "", false
	}

	return h.pairs[positions[0]].Value, true
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter.
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Last returns the last value by the key.
func (h *Headers) Last(key string) (value string, found bool) {
	positions := h.lookup(key)
	if len(positions) == 0 {
		return "", false
	}

	return h.pairs[positions[len(positions)-1]].Value, true
}

// Values returns all values by the key. Returns nil if key doesn't exist. The returned slice
// is owned by the caller.
func (h *Headers) Values(key string) []string {
	positions := h.lookup(key)
	if len(positions) == 0 {
		return nil
	}

	values := make([]string, len(positions))
	for i, pos := range positions {
		values[i] = h.pairs[pos].Value
	}

	return values
}

// Has indicates, whether there's an entry of the key.
func (h *Headers) Has(key string) bool {
	return len(h.lookup(key)) > 0
}

// Keys returns all unique keys, each in the case it was first seen with.
func (h *Headers) Keys() []string {
	keys := make([]string, 0, len(h.index))

	for i, pair := range h.pairs {
		if h.index[strings.ToLower(pair.Key)][0] == i {
			keys = append(keys, pair.Key)
		}
	}

	return keys
}

// Pairs returns an iterator over the pairs in insertion order.
func (h *Headers) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range h.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Expose exposes the underlying pairs slice. It must not be modified.
func (h *Headers) Expose() []Pair {
	return h.pairs
}

// Len returns a number of stored pairs.
func (h *Headers) Len() int {
	return len(h.pairs)
}

func (h *Headers) Empty() bool {
	return h.Len() == 0
}

// Builder returns a new builder pre-filled with the pairs, so a modified copy can be produced.
func (h *Headers) Builder() *Builder {
	return &Builder{pairs: clone(h.pairs)}
}

func (h *Headers) lookup(key string) []int {
	if positions, found := h.index[key]; found {
		return positions
	}

	return h.index[strings.ToLower(key)]
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
