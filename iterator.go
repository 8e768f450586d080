package fwdlist

// Iterator однопроходный курсор по элементам списка с доступом на запись.
// Нулевое значение указывает на позицию за концом списка.
//
// Итератор не владеет узлом. После удаления узла из списка итератор
// продолжает ссылаться на его значение, а продвижение переводит его
// на позицию за концом.
type Iterator[T comparable] struct {
	n *node[T]
}

// ConstIterator курсор только для чтения.
type ConstIterator[T comparable] struct {
	n *node[T]
}

// Begin итератор на первый элемент или End для пустого списка.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head}
}

// End итератор на позицию за концом списка.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// CBegin аналог Begin только для чтения.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head}
}

// CEnd аналог End только для чтения.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// AtEnd проверка на позицию за концом списка.
func (it Iterator[T]) AtEnd() bool {
	return it.n == nil
}

// Value значение элемента.
// Паникует с ErrIteratorAtEnd на позиции за концом.
func (it Iterator[T]) Value() T {
	if it.n == nil {
		panic(ErrIteratorAtEnd)
	}

	return it.n.value
}

// Ref ссылка на значение элемента для его изменения на месте.
func (it Iterator[T]) Ref() *T {
	if it.n == nil {
		panic(ErrIteratorAtEnd)
	}

	return &it.n.value
}

// Next переход к следующему элементу (префиксный инкремент).
// С позиции за концом итератор никуда не сдвигается.
func (it *Iterator[T]) Next() *Iterator[T] {
	if it.n != nil {
		it.n = it.n.next
	}

	return it
}

// PostNext переход к следующему элементу с возвратом прежней позиции.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.Next()
	return prev
}

// Equal итераторы равны если указывают на один и тот же узел.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

// Const итератор только для чтения на ту же позицию.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T](it)
}

func (it ConstIterator[T]) AtEnd() bool {
	return it.n == nil
}

func (it ConstIterator[T]) Value() T {
	if it.n == nil {
		panic(ErrIteratorAtEnd)
	}

	return it.n.value
}

func (it *ConstIterator[T]) Next() *ConstIterator[T] {
	if it.n != nil {
		it.n = it.n.next
	}

	return it
}

func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	prev := *it
	it.Next()
	return prev
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.n == other.n
}
