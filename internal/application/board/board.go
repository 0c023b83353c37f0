// Package board projects record stores into the views the workspace shows:
// status-partitioned boards and text-filtered lists.
package board

import "strings"

// Bucket is one column of a board.
type Bucket[T any] struct {
	Key   string
	Items []T
	Count int
}

// Partition splits records into the fixed buckets named by keys, using key
// to read each record's discriminant. Members keep their input order.
// Records whose discriminant matches no bucket are left out.
func Partition[T any](records []T, key func(T) string, keys []string) []Bucket[T] {
	buckets := make([]Bucket[T], len(keys))
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		buckets[i] = Bucket[T]{Key: k, Items: []T{}}
		index[k] = i
	}

	for _, r := range records {
		i, ok := index[key(r)]
		if !ok {
			continue
		}
		buckets[i].Items = append(buckets[i].Items, r)
	}

	for i := range buckets {
		buckets[i].Count = len(buckets[i].Items)
	}
	return buckets
}

// MatchesText reports whether term occurs, ignoring case, in any of fields.
// An empty or blank term matches everything.
func MatchesText(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Filter returns the records for which keep holds, in order.
func Filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
