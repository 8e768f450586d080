package fwdlist_test

import (
	"fmt"

	"github.com/sirkon/fwdlist"
)

func ExampleList_RemoveAt() {
	l := fwdlist.New(1, 2, 1, 3, 2)
	fmt.Println(l)

	// Удаляются обе единицы, а не только первый элемент.
	l.RemoveAt(l.Begin())
	fmt.Println(l)

	l.Remove(2)
	fmt.Println(l, l.Len())

	// output:
	// 1 2 1 3 2
	// 2 3 2
	// 3 1
}

func ExampleList_All() {
	var l fwdlist.List[string]
	l.Append("Hello")
	l.Append("World!")

	for v := range l.All() {
		fmt.Println(v)
	}

	// output:
	// Hello
	// World!
}
