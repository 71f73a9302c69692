// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockmap

import (
	"sort"
	"sync"
)

type holderLock struct {
	holders int
	mu      sync.RWMutex
}

// Lockmap hands out a read-write lock per key. Entries are dropped once the
// last holder releases them.
type Lockmap struct {
	l sync.Mutex
	m map[string]*holderLock
}

func New(initSize int) *Lockmap {
	return &Lockmap{
		m: make(map[string]*holderLock, initSize),
	}
}

func (l *Lockmap) Lock(key string) {
	l.lock(key, true)
}

func (l *Lockmap) Unlock(key string) {
	l.unlock(key, true)
}

func (l *Lockmap) RLock(key string) {
	l.lock(key, false)
}

func (l *Lockmap) RUnlock(key string) {
	l.unlock(key, false)
}

// LockAll acquires every key in [writes] exclusively and every key in [reads]
// shared, always in sorted order, and returns a function that releases them.
// A key present in both is locked exclusively.
func (l *Lockmap) LockAll(writes []string, reads []string) func() {
	mode := make(map[string]bool, len(writes)+len(reads))
	for _, k := range reads {
		mode[k] = false
	}
	for _, k := range writes {
		mode[k] = true
	}
	ordered := make([]string, 0, len(mode))
	for k := range mode {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	for _, k := range ordered {
		l.lock(k, mode[k])
	}
	return func() {
		for i := len(ordered) - 1; i >= 0; i-- {
			k := ordered[i]
			l.unlock(k, mode[k])
		}
	}
}

// Len returns the number of keys currently held.
func (l *Lockmap) Len() int {
	l.l.Lock()
	defer l.l.Unlock()

	return len(l.m)
}

func (l *Lockmap) lock(key string, write bool) {
	l.l.Lock()
	hl, ok := l.m[key]
	if !ok {
		hl = &holderLock{}
		l.m[key] = hl
	}
	hl.holders++
	l.l.Unlock()

	if write {
		hl.mu.Lock()
	} else {
		hl.mu.RLock()
	}
}

func (l *Lockmap) unlock(key string, write bool) {
	l.l.Lock()
	hl := l.m[key]
	hl.holders--
	if hl.holders == 0 {
		delete(l.m, key)
	}
	l.l.Unlock()

	if write {
		hl.mu.Unlock()
	} else {
		hl.mu.RUnlock()
	}
}
