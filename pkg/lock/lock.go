// Package lock provides per-entity mutual exclusion across a set of keys.
//
// Keys are always acquired in sorted order so two callers locking overlapping
// sets cannot deadlock each other. Acquisition is bounded by the context.
package lock

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var ErrNotAcquired = errors.New("lock not acquired")

// Locker acquires every key or none of them. The returned release func is
// safe to call more than once.
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (release func(), err error)
}

// Key joins parts into a lock key, e.g. Key("product", id) -> "product:<id>".
func Key(kind string, parts ...string) string {
	return kind + ":" + strings.Join(parts, ":")
}

func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
