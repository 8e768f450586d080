package fwdlist

import "github.com/sirkon/errors"

// ErrIteratorAtEnd паника при попытке разыменования итератора, указывающего
// на позицию за последним элементом.
const ErrIteratorAtEnd errors.Const = "dereference of the end iterator"
