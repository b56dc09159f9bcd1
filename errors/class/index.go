package class

import (
	"errors"
	"sync"
)

// Index is a 15 bit lowest level error classification.
// It is the most precise division - i.e.:
// 'major' Schema
//	'minor' field
//	 'index' missing.
type Index struct {
	value uint16
	minor Minor
	own   bool
}

// Class gets the index related class.
func (i Index) Class() Class {
	if !i.valid() {
		return Class(0)
	}
	return Class(uint32(i.minor.major)<<(32-majorBitSize) | uint32(i.minor.value)<<(indexBitSize) | uint32(i.value))
}

// InBounds checks if the index value fits the 15-bit range.
func (i Index) InBounds() bool {
	return i.inBounds()
}

// Name gets the index stored name.
func (i Index) Name() string {
	if !i.valid() {
		return ""
	}
	return i.container().entry(i).name
}

// Minor returns index related Minor.
func (i Index) Minor() Minor {
	return i.minor
}

// Valid checks if the provided index is valid.
func (i Index) Valid() bool {
	return i.valid()
}

// Value gets the index uint16 value.
func (i Index) Value() uint16 {
	return i.value
}

func (i Index) container() *indexContainer {
	return i.minor.container().indexContainer(i.minor)
}

func (i Index) inBounds() bool {
	return i.value>>indexBitSize == 0 && i.value != 0
}

func (i Index) containerIndex() uint16 {
	return i.value - 1
}

func (i Index) valid() bool {
	return i.inBounds() && i.own && i.minor.valid()
}

type indexContainer struct {
	uniqueNames map[string]struct{}
	entries     []entry

	nextID uint16
	lock   sync.Mutex
}

func (i *indexContainer) entry(id Index) entry {
	k := int(id.containerIndex())
	if k >= len(i.entries) {
		return entry{}
	}
	return i.entries[k]
}

func (i *indexContainer) new(minor Minor, name string, description ...string) (Index, error) {
	i.lock.Lock()
	defer i.lock.Unlock()

	// check uniqueness of the name
	if _, exists := i.uniqueNames[name]; exists {
		return Index{}, errors.New("index name already registered")
	}

	value := i.nextID
	if value > maxIndexValue {
		return Index{}, errors.New("too many indexes registered")
	}

	e := entry{name: name}
	if len(description) > 0 {
		e.description = description[0]
	}
	i.entries = append(i.entries, e)
	i.uniqueNames[name] = struct{}{}
	i.nextID++

	return Index{value: value, minor: minor, own: true}, nil
}

func newIndexContainer() *indexContainer {
	return &indexContainer{
		uniqueNames: make(map[string]struct{}),
		nextID:      1,
	}
}
