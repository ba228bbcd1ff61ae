package vm

import "unsafe"

// ArrayObject is the minimal array record this core needs for builtin results
// (Object.keys and friends). Index packing, holes and the full Array builtin
// live outside this core.
type ArrayObject struct {
	Object
	elements []Value
}

func NewArray() Value {
	return Value{typ: TypeArray, obj: unsafe.Pointer(&ArrayObject{})}
}

func (a *ArrayObject) Length() int {
	return len(a.elements)
}

func (a *ArrayObject) Append(v Value) {
	a.elements = append(a.elements, v)
}

func (a *ArrayObject) Get(i int) Value {
	if i < 0 || i >= len(a.elements) {
		return Undefined
	}
	return a.elements[i]
}

func (a *ArrayObject) Elements() []Value {
	return a.elements
}
