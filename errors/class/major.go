package class

import (
	"errors"
	"sync"
)

var majors = newMajors()

// Major is a 7 bit top level error classification.
type Major uint8

// Description gets the major registered description.
func (m Major) Description() string {
	return majors.entry(m).description
}

// InBounds checks if the major value fits the 7-bit range.
func (m Major) InBounds() bool {
	return m>>majorBitSize == 0
}

// Minors lists the minors registered for given major 'm'.
func (m Major) Minors() []Minor {
	if !m.InBounds() {
		return nil
	}

	container := majors.minorContainer(m)

	minors := make([]Minor, container.nextID-1)
	for i := range minors {
		minors[i] = Minor{value: uint16(i) + 1, major: m, own: true}
	}

	return minors
}

// MustRegisterMinor registers the minor classification for
// given Major 'm', 'name' - unique name for given Major and
// optional 'description'. Panics when the major is invalid
// or the name already taken.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// Name returns the major registered name.
func (m Major) Name() string {
	return majors.entry(m).name
}

// RegisterMinor registers the minor classification for
// given Major 'm', 'name' - unique name for given Major and
// optional 'description'.
// If the major is not valid - out of bounds - function throws an error.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if !m.InBounds() {
		return Minor{}, errors.New("major out of bounds")
	}

	return majors.minorContainer(m).new(m, name, description...)
}

func (m Major) containerIndex() uint8 {
	return uint8(m) - 1
}

// RegisterMajor registers new major error classification with provided
// 'name', and optional 'description' for the major.
// Returns an error when the name is already taken or the 7-bit major
// space is exhausted.
func RegisterMajor(name string, description ...string) (Major, error) {
	return majors.new(name, description...)
}

// MustRegisterMajor registers new major error classification with provided
// 'name' and optional 'description' for the major.
// Panics when the major already exists.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

type majorsContainer struct {
	uniqueNames map[string]struct{}
	entries     []entry
	minors      []*minorsContainer

	currentID uint16
	idLock    sync.Mutex
}

func (m *majorsContainer) entry(major Major) entry {
	i := int(major.containerIndex())
	if i >= len(m.entries) {
		return entry{}
	}
	return m.entries[i]
}

func (m *majorsContainer) minorContainer(v Major) *minorsContainer {
	minorCtr := m.minors[v.containerIndex()]
	if minorCtr == nil {
		// the container is created on the first use
		minorCtr = newMinorsContainer()
		m.minors[v.containerIndex()] = minorCtr
	}

	return minorCtr
}

func (m *majorsContainer) new(name string, description ...string) (Major, error) {
	m.idLock.Lock()
	defer m.idLock.Unlock()

	if _, exists := m.uniqueNames[name]; exists {
		return Major(0), errors.New("major name already registered")
	}

	major := m.next()

	// check if the value fits the major bit size
	if major > maxMajorValue {
		return major, errors.New("too many majors registered")
	}

	e := entry{name: name}
	if len(description) > 0 {
		e.description = description[0]
	}
	m.entries = append(m.entries, e)
	m.uniqueNames[name] = struct{}{}

	return major, nil
}

func (m *majorsContainer) next() Major {
	defer func() {
		m.currentID++
	}()
	return Major(m.currentID)
}

func (m *majorsContainer) reset() {
	fresh := newMajors()
	m.currentID = fresh.currentID
	m.entries = fresh.entries
	m.minors = fresh.minors
	m.uniqueNames = fresh.uniqueNames
}

func newMajors() *majorsContainer {
	return &majorsContainer{
		entries:     make([]entry, 0, maxMajorValue+1),
		minors:      make([]*minorsContainer, maxMajorValue+1),
		uniqueNames: make(map[string]struct{}),
		currentID:   1,
	}
}
