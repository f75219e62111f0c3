package list

import (
	"fmt"
	"sync"
)

// List define las operaciones que el simulador usa sobre una lista compartida.
type List[T any] interface {
	Add(item T)                                   // Añadir un elemento al final de la lista
	AddBounded(item T, limit int)                 // Añadir descartando los más viejos por encima de limit
	Dequeue() (T, error)                          // Eliminar y devolver el primer elemento de la lista
	FindAll(predicate func(T) bool) *ArrayList[T] // Todos los elementos que cumplen el predicado
	Get(index int) (T, error)                     // Obtener un elemento a partir de un índice dado
	GetAll() []T                                  // Copia de todos los elementos
	Size() int                                    // Retornar el tamaño de la lista
}

// ArrayList implementa List protegida con un RWMutex; se puede leer desde los
// handlers mientras el simulador agrega registros.
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Add inserta un elemento al final de la lista.
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock()
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// AddBounded inserta un elemento y descarta los primeros hasta que la lista tenga
// como mucho limit elementos. Con limit <= 0 se comporta como Add.
//
// Ejemplo:
//
//	func main() {
//		history := &list.ArrayList[models.StepRecord]{}
//		history.AddBounded(record, 64)
//	}
func (list *ArrayList[T]) AddBounded(item T, limit int) {
	list.mu.Lock()
	defer list.mu.Unlock()

	list.items = append(list.items, item)
	if limit > 0 && len(list.items) > limit {
		list.items = list.items[len(list.items)-limit:]
	}
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T y un error.
func (list *ArrayList[T]) Dequeue() (T, error) {
	list.mu.Lock()
	defer list.mu.Unlock()

	if len(list.items) == 0 {
		var zero T
		return zero, fmt.Errorf("list is empty")
	}
	value := list.items[0]
	list.items = list.items[1:]
	return value, nil
}

// FindAll devuelve en una lista nueva los elementos que satisfacen el predicado.
//
// Ejemplo:
//
//	faults := history.FindAll(func(r models.StepRecord) bool {
//		return r.PID == 1 && r.Fault
//	})
func (list *ArrayList[T]) FindAll(predicate func(T) bool) *ArrayList[T] {
	list.mu.RLock()
	defer list.mu.RUnlock()

	filtered := &ArrayList[T]{items: make([]T, 0)}
	for _, item := range list.items {
		if predicate(item) {
			filtered.items = append(filtered.items, item)
		}
	}
	return filtered
}

// Get devuelve el elemento en el índice proporcionado.
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	if index < 0 || index >= len(list.items) {
		var zero T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// GetAll devuelve una copia de los elementos para que el llamador no comparta el slice interno.
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock()
	defer list.mu.RUnlock()

	itemsCopy := make([]T, len(list.items))
	copy(itemsCopy, list.items)
	return itemsCopy
}

func (list *ArrayList[T]) Size() int {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return len(list.items)
}
