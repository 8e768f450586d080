package fwdlist

import (
	"fmt"
	"strings"
)

// Format однострочное представление списка, элементы отображаются
// с помощью render и разделяются пробелом.
func (l *List[T]) Format(render func(T) string) string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(render(n.value))
	}

	return b.String()
}

// String для реализации fmt.Stringer.
func (l *List[T]) String() string {
	return l.Format(func(v T) string {
		return fmt.Sprint(v)
	})
}
