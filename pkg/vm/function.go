package vm

import "unsafe"

// NativeFn is the signature of a native Go function callable from script code.
// It receives the VM as the ambient execution state (used to raise errors),
// the receiver, and the positional arguments.
type NativeFn func(vm *VM, this Value, args []Value) (Value, error)

// NativeFunctionObject represents a native Go function callable from script
// code. Instance holds the receiver bound by the last prototype-chain
// resolution, so a natively defined method reached through inheritance sees
// the object it was looked up on as `this`. Properties holds own properties of
// the function value itself (e.g. the statics hanging off a constructor); nil
// until the first property is defined.
type NativeFunctionObject struct {
	Object
	Arity      int
	Variadic   bool
	Name       string
	Fn         NativeFn
	Instance   Value
	Properties *PlainObject
}

func NewNativeFunction(arity int, variadic bool, name string, fn NativeFn) Value {
	return Value{typ: TypeNativeFunction, obj: unsafe.Pointer(&NativeFunctionObject{
		Arity:    arity,
		Variadic: variadic,
		Name:     name,
		Fn:       fn,
		Instance: Undefined,
	})}
}

// props returns the function's own property table, allocating it on first use.
func (f *NativeFunctionObject) props() *PlainObject {
	if f.Properties == nil {
		f.Properties = NewObject(Null).AsPlainObject()
	}
	return f.Properties
}
