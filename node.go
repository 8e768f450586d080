package fwdlist

// node узел односвязного списка.
type node[T comparable] struct {
	next *node[T]

	// detached выставляется при исключении узла из цепочки.
	detached bool

	value T
}

func (n *node[T]) cleanup() {
	n.next = nil // для упрощения работы GC
	n.detached = true
}
