// Package memory implementa los puertos de persistencia en memoria.
//
// Cada colección guarda sus registros en orden de inserción (el orden de
// despliegue) detrás de un RWMutex y entrega copias, de modo que ningún
// llamador comparte un registro mutable con el almacén.
package memory

import (
	"strconv"
	"sync"
)

// Record es un registro con identificador asignable.
type Record interface {
	GetID() string
	SetID(id string)
}

// Collection es una secuencia ordenada de registros de un mismo tipo.
// Los IDs provienen de un contador monotónico: nunca se reutilizan tras un borrado.
type Collection[T Record] struct {
	mu     sync.RWMutex
	items  []T
	nextID uint64
	clone  func(T) T
}

// NewCollection construye una colección vacía. clone debe devolver una copia profunda.
func NewCollection[T Record](clone func(T) T) *Collection[T] {
	return &Collection[T]{nextID: 1, clone: clone}
}

// Seed agrega registros con su ID original y adelanta el contador más allá del mayor ID numérico.
// Los registros sin ID reciben uno nuevo.
func (c *Collection[T]) Seed(records ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range records {
		cp := c.clone(r)
		if cp.GetID() == "" {
			cp.SetID(c.takeID())
		} else if n, err := strconv.ParseUint(cp.GetID(), 10, 64); err == nil && n >= c.nextID {
			c.nextID = n + 1
		}
		c.items = append(c.items, cp)
	}
}

// Insert agrega el registro al final con un ID nuevo, que también se escribe en rec.
func (c *Collection[T]) Insert(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec.SetID(c.takeID())
	c.items = append(c.items, c.clone(rec))
}

func (c *Collection[T]) takeID() string {
	id := strconv.FormatUint(c.nextID, 10)
	c.nextID++
	return id
}

// Get devuelve una copia del registro con ese ID.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

// Replace sustituye en su lugar el registro con el mismo ID. Sin coincidencia no hace nada.
func (c *Collection[T]) Replace(rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(rec.GetID())
	if i < 0 {
		return false
	}
	c.items[i] = c.clone(rec)
	return true
}

// Remove elimina el registro con ese ID. Sin coincidencia no hace nada.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// All devuelve copias de todos los registros en orden de inserción.
func (c *Collection[T]) All() []T {
	return c.Where(nil)
}

// Where devuelve copias de los registros que cumplen keep (todos si keep es nil).
func (c *Collection[T]) Where(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if keep == nil || keep(it) {
			out = append(out, c.clone(it))
		}
	}
	return out
}

// Len devuelve la cantidad de registros.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) indexOf(id string) int {
	for i, it := range c.items {
		if it.GetID() == id {
			return i
		}
	}
	return -1
}
