package fwdlist

import "iter"

// List односвязный список с добавлением в конец за O(1).
// Нулевое значение представляет собой пустой список готовый к использованию.
//
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
// WARNING: Не копировать по значению после начала использования, для
//          получения независимой копии есть Clone и CopyFrom.
type List[T comparable] struct {
	head *node[T]
	tail *node[T] // не владеет узлом, только ускоряет добавление
	size int
}

// New конструктор списка с данными начальными значениями.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Append добавление значения в конец списка. Существующие итераторы
// остаются корректными.
func (l *List[T]) Append(v T) {
	// Узел полностью собирается до того как будет прицеплен к цепочке.
	n := &node[T]{value: v}

	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Remove удаление всех элементов равных v. Возвращает true если
// был удалён хотя бы один элемент.
func (l *List[T]) Remove(v T) bool {
	return l.RemoveFunc(func(x T) bool {
		return x == v
	}) > 0
}

// RemoveAt удаление по образцу: удаляются все элементы равные значению
// на которое указывает it, а не только сам этот элемент. Итератор на
// позицию за концом списка ничего не удаляет.
//
// Итератор на уже удалённый узел так же ничего не удаляет.
func (l *List[T]) RemoveAt(it Iterator[T]) bool {
	if it.n == nil || it.n.detached {
		return false
	}

	return l.Remove(it.n.value)
}

// RemoveFunc удаление всех элементов удовлетворяющих match за один проход.
// Возвращает количество удалённых элементов.
func (l *List[T]) RemoveFunc(match func(T) bool) int {
	var removed int

	// Сначала срезаем совпадения с головы.
	for l.head != nil && match(l.head.value) {
		n := l.head
		l.head = n.next
		n.cleanup()
		removed++
	}
	l.size -= removed

	if l.head == nil {
		l.tail = nil
		return removed
	}

	// prev при удалении не сдвигается, поэтому серии подряд идущих
	// совпадений удаляются целиком.
	var tailRemoved int
	prev := l.head
	for cur := prev.next; cur != nil; cur = prev.next {
		if !match(cur.value) {
			prev = cur
			continue
		}

		prev.next = cur.next
		cur.cleanup()
		tailRemoved++
	}

	// После прохода prev указывает на последний уцелевший узел.
	l.tail = prev
	l.size -= tailRemoved

	return removed + tailRemoved
}

// Clear удаление всех элементов списка. Узлы отцепляются по одному.
func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.cleanup()
	}

	l.tail = nil
	l.size = 0
}

// Contains проверка наличия элемента равного v.
func (l *List[T]) Contains(v T) bool {
	return l.ContainsFunc(func(x T) bool {
		return x == v
	})
}

// ContainsFunc проверка наличия элемента удовлетворяющего match.
func (l *List[T]) ContainsFunc(match func(T) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			return true
		}
	}

	return false
}

// Empty проверка на пустоту.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Len количество элементов в списке.
func (l *List[T]) Len() int {
	return l.size
}

// Front первый элемент списка. Второе значение равно false для пустого списка.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}

	return l.head.value, true
}

// Back последний элемент списка.
func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}

	return l.tail.value, true
}

// Clone создание независимой копии списка.
func (l *List[T]) Clone() *List[T] {
	res := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		res.Append(n.value)
	}

	return res
}

// CopyFrom замена содержимого списка копией src.
// Копирование в самого себя ничего не делает.
func (l *List[T]) CopyFrom(src *List[T]) {
	if l == src {
		return
	}

	// Копия собирается отдельно и подменяет текущую цепочку только
	// когда полностью готова.
	l.MoveFrom(src.Clone())
}

// MoveFrom передача цепочки из src в l за O(1). Прежнее содержимое l
// удаляется, src остаётся пустым.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}

	l.Clear()
	l.head, l.tail, l.size = src.head, src.tail, src.size
	src.head, src.tail, src.size = nil, nil, 0
}

// Take перемещение содержимого в новый список.
func (l *List[T]) Take() *List[T] {
	res := &List[T]{}
	res.MoveFrom(l)
	return res
}

// All итерация по значениям элементов. Список не должен изменяться
// во время итерации.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Refs итерация по ссылкам на значения с возможностью их изменения.
func (l *List[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}
