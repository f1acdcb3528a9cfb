// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image"

	lru "github.com/hashicorp/golang-lru"
)

// measureCache maps strings in a font to their measured size, evicting
// the least recently used entries past maxSize.
type measureCache struct {
	c *lru.Cache
}

type measureKey struct {
	font Font
	str  string
}

const maxSize = 1000

func (l *measureCache) Get(k measureKey) (image.Point, bool) {
	if l.c == nil {
		return image.Point{}, false
	}
	v, ok := l.c.Get(k)
	if !ok {
		return image.Point{}, false
	}
	return v.(image.Point), true
}

func (l *measureCache) Put(k measureKey, sz image.Point) {
	if l.c == nil {
		c, err := lru.New(maxSize)
		if err != nil {
			panic(err)
		}
		l.c = c
	}
	l.c.Add(k, sz)
}

// Len returns the number of cached sizes.
func (l *measureCache) Len() int {
	if l.c == nil {
		return 0
	}
	return l.c.Len()
}

// Purge drops every entry.
func (l *measureCache) Purge() {
	if l.c != nil {
		l.c.Purge()
	}
}
