package builtins

import (
	"fathom/pkg/vm"
)

// ObjectInitializer implements the Object builtin: the Object constructor
// with its static methods, and Object.prototype, the root of all object
// prototype chains.
type ObjectInitializer struct{}

func (o *ObjectInitializer) Name() string {
	return "Object"
}

func (o *ObjectInitializer) Priority() int {
	return PriorityObject // Must be first (base prototype)
}

func (o *ObjectInitializer) InitRuntime(ctx *RuntimeContext) error {
	vmInstance := ctx.VM

	// Create Object.prototype - this is the root prototype (no parent)
	protoVal := vm.NewObject(vm.Null)

	// Publish it before building anything else: TypeErrors raised from here
	// on inherit from it.
	vmInstance.ObjectPrototype = protoVal

	method := func(owner vm.Value, name string, arity int, fn vm.NativeFn) {
		vmInstance.SetProp(owner, name, vm.NewNativeFunction(arity, false, name, fn), vm.FlagBuiltin)
	}

	// Object.prototype methods
	method(protoVal, "hasOwnProperty", 1, objProtoHasOwnProperty)
	method(protoVal, "isPrototypeOf", 1, objProtoIsPrototypeOf)
	method(protoVal, "propertyIsEnumerable", 1, objProtoPropertyIsEnumerable)
	method(protoVal, "toLocaleString", 0, objProtoToLocaleString)
	method(protoVal, "toString", 0, objProtoToString)
	method(protoVal, "valueOf", 0, objProtoValueOf)

	// The Object constructor: Object() makes a fresh object, Object(x) with an
	// object argument returns x unchanged.
	objectCtor := vm.NewNativeFunction(-1, true, "Object", func(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
		if len(args) > 0 && args[0].IsObject() {
			return args[0], nil
		}
		return vm.NewObject(protoVal), nil
	})

	vmInstance.SetProp(objectCtor, "prototype", protoVal, vm.FlagNone)

	// Static methods
	method(objectCtor, "create", 2, objCreate)
	method(objectCtor, "defineProperty", 3, objDefineProperty)
	method(objectCtor, "defineProperties", 2, objDefineProperties)
	method(objectCtor, "getOwnPropertyDescriptor", 2, objGetOwnPropertyDescriptor)
	method(objectCtor, "keys", 1, objKeys)
	method(objectCtor, "getOwnPropertyNames", 1, objGetOwnPropertyNames)
	method(objectCtor, "getPrototypeOf", 1, objGetPrototypeOf)
	method(objectCtor, "preventExtensions", 1, objPreventExtensions)
	method(objectCtor, "isExtensible", 1, objIsExtensible)
	method(objectCtor, "seal", 1, objSeal)
	method(objectCtor, "isSealed", 1, objIsSealed)
	method(objectCtor, "freeze", 1, objFreeze)
	method(objectCtor, "isFrozen", 1, objIsFrozen)

	// Set constructor property on prototype
	vmInstance.SetProp(protoVal, "constructor", objectCtor, vm.FlagBuiltin)

	return ctx.DefineGlobal("Object", objectCtor)
}

// --- Helpers ---

func arg(args []vm.Value, i int) vm.Value {
	if i < len(args) {
		return args[i]
	}
	return vm.Undefined
}

// objOrThrow enforces the structural contract shared by every static method:
// the operand must be an object.
func objOrThrow(vmi *vm.VM, maybeObj vm.Value, name string) (vm.Value, error) {
	if !maybeObj.IsObject() {
		return vm.Undefined, vmi.NewTypeError("Object.%s called on a non-object", name)
	}
	return maybeObj, nil
}

// flagsFromDescriptor derives attribute flags from a descriptor object. Only
// an exact boolean true sets a flag; absent fields and truthy non-booleans are
// false.
func flagsFromDescriptor(vmi *vm.VM, desc vm.Value) (vm.PropFlags, error) {
	flags := vm.FlagNone

	enumerable, err := vmi.Get(desc, "enumerable")
	if err != nil {
		return flags, err
	}
	configurable, err := vmi.Get(desc, "configurable")
	if err != nil {
		return flags, err
	}
	writable, err := vmi.Get(desc, "writable")
	if err != nil {
		return flags, err
	}

	if enumerable.IsBoolean() && enumerable.AsBoolean() {
		flags |= vm.FlagEnumerable
	}
	if configurable.IsBoolean() && configurable.AsBoolean() {
		flags |= vm.FlagConfigurable
	}
	if writable.IsBoolean() && writable.AsBoolean() {
		flags |= vm.FlagWritable
	}
	return flags, nil
}

// defineFromDescriptors applies the descriptor loop shared by Object.create
// and Object.defineProperties: every enumerable own property of props whose
// value is a descriptor-shaped object defines one property on obj. Malformed
// entries are skipped, not rejected.
func defineFromDescriptors(vmi *vm.VM, obj vm.Value, props vm.Value) error {
	if !props.IsObject() {
		return nil
	}
	for _, rec := range props.AsPlainObject().OwnRecords() {
		if !rec.Enumerable {
			continue
		}
		if !rec.Value.IsObject() {
			continue
		}
		flags, err := flagsFromDescriptor(vmi, rec.Value)
		if err != nil {
			return err
		}
		value, err := vmi.Get(rec.Value, "value")
		if err != nil {
			return err
		}
		vmi.SetProp(obj, rec.Name, value, flags)
	}
	return nil
}

// --- Static methods ---

// Object.create(proto [, propertiesObject ])
func objCreate(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj := vm.NewObject(arg(args, 0))
	if err := defineFromDescriptors(vmi, obj, arg(args, 1)); err != nil {
		return vm.Undefined, err
	}
	return obj, nil
}

// Object.defineProperty(obj, prop, descriptor)
func objDefineProperty(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "defineProperty")
	if err != nil {
		return vm.Undefined, err
	}

	name := arg(args, 1).ToString()
	desc := arg(args, 2)
	flags, err := flagsFromDescriptor(vmi, desc)
	if err != nil {
		return vm.Undefined, err
	}
	value, err := vmi.Get(desc, "value")
	if err != nil {
		return vm.Undefined, err
	}

	vmi.SetProp(obj, name, value, flags)
	return obj, nil
}

// Object.defineProperties(obj, props)
func objDefineProperties(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "defineProperties")
	if err != nil {
		return vm.Undefined, err
	}
	if err := defineFromDescriptors(vmi, obj, arg(args, 1)); err != nil {
		return vm.Undefined, err
	}
	return obj, nil
}

// Object.getOwnPropertyDescriptor(obj, prop)
//
// A missing property yields undefined rather than a descriptor; the reference
// behavior was unguarded here and this port pins the safe choice.
func objGetOwnPropertyDescriptor(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "getOwnPropertyDescriptor")
	if err != nil {
		return vm.Undefined, err
	}

	rec := vmi.GetProp(obj, arg(args, 1).ToString())
	if rec == nil {
		return vm.Undefined, nil
	}

	descriptor := vm.NewObject(vmi.ObjectPrototype)
	vmi.Set(descriptor, "value", rec.Value)
	vmi.Set(descriptor, "writable", vm.BooleanValue(rec.Writable))
	vmi.Set(descriptor, "enumerable", vm.BooleanValue(rec.Enumerable))
	vmi.Set(descriptor, "configurable", vm.BooleanValue(rec.Configurable))
	return descriptor, nil
}

// Object.keys(obj)
func objKeys(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "keys")
	if err != nil {
		return vm.Undefined, err
	}

	keys := vm.NewArray()
	arr := keys.AsArray()
	for _, name := range obj.AsPlainObject().OwnKeys() {
		arr.Append(vm.NewString(name))
	}
	return keys, nil
}

// Object.getOwnPropertyNames(obj)
func objGetOwnPropertyNames(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "getOwnPropertyNames")
	if err != nil {
		return vm.Undefined, err
	}

	names := vm.NewArray()
	arr := names.AsArray()
	for _, name := range obj.AsPlainObject().OwnPropertyNames() {
		arr.Append(vm.NewString(name))
	}
	return names, nil
}

// Object.getPrototypeOf(obj)
func objGetPrototypeOf(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "getPrototypeOf")
	if err != nil {
		return vm.Undefined, err
	}
	proto := obj.AsPlainObject().GetPrototype()
	if proto.IsNull() {
		return vm.Undefined, nil
	}
	return proto, nil
}

// Object.preventExtensions(obj)
func objPreventExtensions(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "preventExtensions")
	if err != nil {
		return vm.Undefined, err
	}
	obj.AsPlainObject().PreventExtensions()
	return obj, nil
}

// Object.isExtensible(obj)
func objIsExtensible(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "isExtensible")
	if err != nil {
		return vm.Undefined, err
	}
	return vm.BooleanValue(obj.AsPlainObject().IsExtensible()), nil
}

// Object.seal(obj)
func objSeal(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "seal")
	if err != nil {
		return vm.Undefined, err
	}
	obj.AsPlainObject().Seal()
	return obj, nil
}

// Object.isSealed(obj)
func objIsSealed(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "isSealed")
	if err != nil {
		return vm.Undefined, err
	}
	return vm.BooleanValue(obj.AsPlainObject().IsSealed()), nil
}

// Object.freeze(obj)
func objFreeze(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "freeze")
	if err != nil {
		return vm.Undefined, err
	}
	obj.AsPlainObject().Freeze()
	return obj, nil
}

// Object.isFrozen(obj)
func objIsFrozen(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(vmi, arg(args, 0), "isFrozen")
	if err != nil {
		return vm.Undefined, err
	}
	return vm.BooleanValue(obj.AsPlainObject().IsFrozen()), nil
}

// --- Object.prototype methods ---

// Object.prototype.hasOwnProperty(prop)
func objProtoHasOwnProperty(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	name := arg(args, 0).ToString()
	return vm.BooleanValue(vmi.GetProp(this, name) != nil), nil
}

// Object.prototype.isPrototypeOf(object)
func objProtoIsPrototypeOf(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	obj := arg(args, 0)
	if !obj.IsObject() {
		return vm.False, nil
	}

	// Walk obj's prototype chain looking for the receiver. The visited set
	// keeps a malformed cyclic chain from hanging the walk.
	visited := make(map[*vm.PlainObject]bool)
	proto := obj.AsPlainObject().GetPrototype()
	for proto.IsObject() {
		if proto.Is(this) {
			return vm.True, nil
		}
		po := proto.AsPlainObject()
		if visited[po] {
			break
		}
		visited[po] = true
		proto = po.GetPrototype()
	}
	return vm.False, nil
}

// Object.prototype.propertyIsEnumerable(prop)
//
// Restricted to own properties; the prototype chain is not consulted.
func objProtoPropertyIsEnumerable(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	rec := vmi.GetProp(this, arg(args, 0).ToString())
	return vm.BooleanValue(rec != nil && rec.Enumerable), nil
}

// Object.prototype.toLocaleString()
func objProtoToLocaleString(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	return objProtoToString(vmi, this, args)
}

// Object.prototype.toString()
func objProtoToString(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	return vm.NewString("[object Object]"), nil
}

// Object.prototype.valueOf()
func objProtoValueOf(vmi *vm.VM, this vm.Value, args []vm.Value) (vm.Value, error) {
	return this, nil
}
