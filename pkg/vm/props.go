package vm

// PropFlags packs the three property attributes for the write path. SetProp
// re-derives a record's attributes from the flags argument on every call, so a
// plain assignment and a descriptor-driven definition go through the same
// entry point with different flag sets.
type PropFlags uint8

const (
	FlagWritable PropFlags = 1 << iota
	FlagEnumerable
	FlagConfigurable
)

const (
	FlagNone    PropFlags = 0
	FlagDefault           = FlagWritable | FlagEnumerable | FlagConfigurable
	// FlagBuiltin marks natively defined methods: overwritable and deletable,
	// but invisible to enumeration.
	FlagBuiltin = FlagWritable | FlagConfigurable
)

// ownTable returns the property table owner backing a value, or nil when the
// value carries none. Plain objects own a table directly; native functions
// own one lazily through their Properties record.
func ownTable(v Value) *PlainObject {
	switch v.typ {
	case TypeObject:
		return v.AsPlainObject()
	case TypeNativeFunction:
		return v.AsNativeFunction().Properties
	default:
		return nil
	}
}

// ----------------------------------------------------------------------------
// Read path
// ----------------------------------------------------------------------------

// Get looks up an own property on a value and returns it. Reading a property
// from undefined or null is a TypeError; reading an absent property from
// anything else is Undefined. This is the table-only read: the prototype chain
// is not consulted.
func (vm *VM) Get(obj Value, name string) (Value, error) {
	// We can't read properties from undefined or null.
	if obj.typ == TypeUndefined || obj.typ == TypeNull {
		return Undefined, vm.NewTypeError("Cannot read property '%s' of %s", name, obj.TypeName())
	}

	// But we'll happily return undefined if a property doesn't exist.
	if rec := vm.GetProp(obj, name); rec != nil {
		return rec.Value, nil
	}
	return Undefined, nil
}

// GetProp looks up an own property record on a value. Returns nil when the
// value has no table or the record is absent.
func (vm *VM) GetProp(obj Value, name string) *PropRecord {
	if t := ownTable(obj); t != nil {
		return t.GetOwnProp(name)
	}
	return nil
}

// GetProto resolves a property along the prototype chain. When the resolved
// value is a function, the receiver is bound as that function's instance so
// natively defined methods reached through inheritance see the right `this`.
func (vm *VM) GetProto(obj Value, name string) Value {
	rec := vm.GetPropProto(obj, name)
	if rec == nil {
		return Undefined
	}
	val := rec.Value
	// Store a ref to the instance for natively defined methods.
	if val.IsCallable() {
		val.AsNativeFunction().Instance = obj
	}
	return val
}

// GetPropProto returns the first record found by walking obj, then its
// prototype, then that prototype's prototype. Callers are expected to keep
// prototype chains acyclic; the walk still carries a visited set so a
// malformed cycle terminates instead of spinning.
func (vm *VM) GetPropProto(obj Value, name string) *PropRecord {
	var visited map[*PlainObject]bool
	cur := obj
	for {
		if rec := vm.GetProp(cur, name); rec != nil {
			return rec
		}
		po := ownTable(cur)
		if po == nil {
			return nil
		}
		if visited[po] {
			return nil
		}
		if visited == nil {
			visited = make(map[*PlainObject]bool)
		}
		visited[po] = true
		if cur.typ != TypeObject {
			return nil
		}
		cur = po.GetPrototype()
	}
}

// GetScope resolves a name along the parent-scope chain. Used for variable
// binding lookup, not property access: an unresolved name is Undefined, never
// an error.
func (vm *VM) GetScope(obj Value, name string) Value {
	if rec := vm.GetPropScope(obj, name); rec != nil {
		return rec.Value
	}
	return Undefined
}

// GetPropScope is the record-level scope-chain walk along parent links.
func (vm *VM) GetPropScope(obj Value, name string) *PropRecord {
	var visited map[*PlainObject]bool
	cur := obj
	for cur.typ == TypeObject {
		if rec := vm.GetProp(cur, name); rec != nil {
			return rec
		}
		po := cur.AsPlainObject()
		if visited[po] {
			return nil
		}
		if visited == nil {
			visited = make(map[*PlainObject]bool)
		}
		visited[po] = true
		cur = po.GetParent()
	}
	return nil
}

// ----------------------------------------------------------------------------
// Write path
// ----------------------------------------------------------------------------

// Set sets a property using the default attributes (writable, enumerable,
// configurable).
func (vm *VM) Set(obj Value, name string, val Value) {
	vm.SetProp(obj, name, val, FlagDefault)
}

// SetProp sets a property using the provided name, value, and attribute
// flags. Existing records are updated in place with the value and attributes
// both re-derived from the arguments. The circular marker is recomputed on
// every write.
//
// The storage layer is attribute-blind: writable, extensible, sealed and
// frozen are not consulted unless the VM was configured with
// EnforceAttributes, which is off by default to match the reference behavior.
func (vm *VM) SetProp(obj Value, name string, val Value, flags PropFlags) {
	t := ownTable(obj)
	if t == nil {
		if obj.typ == TypeNativeFunction {
			t = obj.AsNativeFunction().props()
		} else {
			return
		}
	}

	if vm.EnforceAttributes {
		if t.IsFrozen() {
			return
		}
		if rec := t.GetOwnProp(name); rec != nil {
			if !rec.Writable {
				return
			}
		} else if !t.IsExtensible() || t.IsSealed() {
			return
		}
	}

	rec := t.table.setOwn(name, val,
		flags&FlagWritable != 0,
		flags&FlagEnumerable != 0,
		flags&FlagConfigurable != 0)

	// Do we have a circular reference?
	rec.Circular = val.typ == obj.typ && val.obj == obj.obj && val.obj != nil
}

// SetScoped sets a binding on the given scope object, or -- if already
// defined there or on an ancestor -- on the closest parent scope that defines
// it. A name defined nowhere in the chain is created on obj itself. Single
// linear walk, one terminal write.
func (vm *VM) SetScoped(obj Value, name string, val Value) {
	target := obj
	var visited map[*PlainObject]bool
	cur := obj
	for cur.typ == TypeObject {
		if vm.GetProp(cur, name) != nil {
			target = cur
			break
		}
		po := cur.AsPlainObject()
		if visited[po] {
			break
		}
		if visited == nil {
			visited = make(map[*PlainObject]bool)
		}
		visited[po] = true
		cur = po.GetParent()
	}
	vm.Set(target, name, val)
}

// ----------------------------------------------------------------------------
// Delete
// ----------------------------------------------------------------------------

// Delete removes an own property by name. Absent is not an error.
func (vm *VM) Delete(obj Value, name string) {
	if t := ownTable(obj); t != nil {
		t.table.deleteOwn(name)
	}
}
