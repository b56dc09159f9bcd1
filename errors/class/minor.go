package class

import (
	"errors"
	"sync"
)

// Minor is a 10 bit mid level error classification, unique within its major.
type Minor struct {
	value uint16
	major Major

	own bool
}

// Description gets the minor's description.
func (m Minor) Description() string {
	if !m.valid() {
		return ""
	}
	return m.container().entry(m).description
}

// InBounds checks if the minor value fits the 10-bit range.
func (m Minor) InBounds() bool {
	return m.inBounds()
}

// Indexes lists the indexes registered for the minor.
func (m Minor) Indexes() []Index {
	if !m.valid() {
		return nil
	}

	container := m.container().indexContainer(m)

	indexes := make([]Index, container.nextID-1)
	for i := range indexes {
		indexes[i] = Index{value: uint16(i) + 1, minor: m, own: true}
	}

	return indexes
}

// MustRegisterIndex registers and returns index for given minor value.
// Panics if the index name already exists or the minor is not valid.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	idx, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return idx
}

// Name gets the minor's registered name.
func (m Minor) Name() string {
	if !m.valid() {
		return ""
	}
	return m.container().entry(m).name
}

// Major gets the minor's root Major.
func (m Minor) Major() Major {
	return m.major
}

// Valid checks if the Minor is valid.
func (m Minor) Valid() bool {
	return m.valid()
}

// Value gets the minor's uint16 value.
func (m Minor) Value() uint16 {
	return m.value
}

// RegisterIndex registers the index for given Minor.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	if !m.valid() {
		return Index{}, errors.New("invalid minor provided")
	}

	return m.container().indexContainer(m).new(m, name, description...)
}

func (m Minor) container() *minorsContainer {
	return majors.minorContainer(m.major)
}

func (m Minor) inBounds() bool {
	return m.value>>minorBitSize == 0 && m.value != 0
}

func (m Minor) containerIndex() uint16 {
	return m.value - 1
}

func (m Minor) valid() bool {
	return m.inBounds() && m.own
}

type minorsContainer struct {
	uniqueNames map[string]struct{}
	entries     []entry
	indices     []*indexContainer

	nextID uint16
	lock   sync.Mutex
}

func (m *minorsContainer) entry(id Minor) entry {
	i := int(id.containerIndex())
	if i >= len(m.entries) {
		return entry{}
	}
	return m.entries[i]
}

func (m *minorsContainer) indexContainer(id Minor) *indexContainer {
	i := int(id.containerIndex())
	for i >= len(m.indices) {
		m.indices = append(m.indices, nil)
	}

	indexCtr := m.indices[i]
	if indexCtr == nil {
		indexCtr = newIndexContainer()
		m.indices[i] = indexCtr
	}

	return indexCtr
}

func (m *minorsContainer) new(major Major, name string, description ...string) (Minor, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	// check uniqueness of the name
	if _, exists := m.uniqueNames[name]; exists {
		return Minor{}, errors.New("minor name already registered")
	}

	value := m.nextID
	if value > maxMinorValue {
		return Minor{}, errors.New("too many minors registered")
	}

	e := entry{name: name}
	if len(description) > 0 {
		e.description = description[0]
	}
	m.entries = append(m.entries, e)
	m.uniqueNames[name] = struct{}{}
	m.nextID++

	return Minor{value: value, major: major, own: true}, nil
}

func newMinorsContainer() *minorsContainer {
	return &minorsContainer{
		uniqueNames: make(map[string]struct{}),
		nextID:      1,
	}
}
