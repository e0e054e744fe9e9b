package component

import (
	"errors"
	"reflect"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a store in the world. Zero is never assigned.
type ComponentID uint32

var registry = struct {
	sync.Mutex
	names []string
}{names: []string{""}}

// ComponentKind identifies one component store. Every call to
// NewComponentKind yields a distinct kind, even for the same T.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	name := reflect.TypeFor[T]().String()
	registry.Lock()
	defer registry.Unlock()
	registry.names = append(registry.names, name)
	return ComponentKind[T]{id: ComponentID(len(registry.names) - 1)}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// Name is the Go type name the kind was registered with, used in errors and
// logs.
func (k ComponentKind[T]) Name() string {
	return Name(k.id)
}

// Name returns the registered type name for id, or "" for unknown ids.
func Name(id ComponentID) string {
	registry.Lock()
	defer registry.Unlock()
	if int(id) >= len(registry.names) {
		return ""
	}
	return registry.names[id]
}

// ComponentHandle is the package-level value each component declares.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
