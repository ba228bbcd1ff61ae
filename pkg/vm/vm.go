package vm

import (
	"fathom/pkg/errors"
)

// VM is the execution-state handle passed into every resolver call and every
// builtin. It owns the global object (which doubles as the root scope object),
// the shared Object.prototype, and the configuration bits the resolver
// consults. One VM is one runtime instance: its object graph is private to it
// and no operation in this core blocks or yields.
type VM struct {
	globals Value

	// ObjectPrototype is the root of all object prototype chains unless a
	// caller overrides it explicitly (Object.create with a different proto).
	// Set by the Object builtin initializer.
	ObjectPrototype Value

	// EnforceAttributes turns on writable/extensible/sealed/frozen checks in
	// the SetProp storage path. Off by default: the reference storage layer is
	// attribute-blind and enforcement is the callers' contract.
	EnforceAttributes bool

	errs []errors.FathomError
}

func NewVM() *VM {
	return &VM{
		globals: NewObject(Null),
	}
}

// Globals returns the global object. It has a null prototype and a null
// parent link, making it the terminal object of every scope chain.
func (vm *VM) Globals() Value {
	return vm.globals
}

// DefineGlobal installs a global binding with builtin attributes
// (non-enumerable, overwritable).
func (vm *VM) DefineGlobal(name string, value Value) error {
	vm.SetProp(vm.globals, name, value, FlagBuiltin)
	return nil
}

// GetGlobal looks up a global binding.
func (vm *VM) GetGlobal(name string) (Value, bool) {
	if rec := vm.GetProp(vm.globals, name); rec != nil {
		return rec.Value, true
	}
	return Undefined, false
}

// Call invokes a callable value with an explicit receiver. When the receiver
// is undefined, the instance bound by the last prototype-chain resolution is
// used, which is how method-call `this` reaches natively defined methods.
func (vm *VM) Call(fn Value, this Value, args []Value) (Value, error) {
	if !fn.IsCallable() {
		return Undefined, vm.NewTypeError("%s is not a function", fn.Inspect())
	}
	nfo := fn.AsNativeFunction()
	if this.IsUndefined() {
		this = nfo.Instance
	}
	return nfo.Fn(vm, this, args)
}

// Errors returns the runtime errors accumulated by ReportUncaught.
func (vm *VM) Errors() []errors.FathomError {
	return vm.errs
}
