package builtins

import (
	"fmt"
	"sort"

	"fathom/pkg/vm"
)

// StandardInitializers returns the builtin modules this core ships, in no
// particular order; InitializeRuntime sorts them by priority.
func StandardInitializers() []BuiltinInitializer {
	return []BuiltinInitializer{
		&ObjectInitializer{},
	}
}

// InitializeRuntime runs every standard initializer against the given VM,
// threading the prototypes established by earlier initializers into the
// context seen by later ones.
func InitializeRuntime(vmInstance *vm.VM) error {
	inits := StandardInitializers()
	sort.SliceStable(inits, func(i, j int) bool {
		return inits[i].Priority() < inits[j].Priority()
	})

	ctx := &RuntimeContext{
		VM:              vmInstance,
		DefineGlobal:    vmInstance.DefineGlobal,
		ObjectPrototype: vm.Undefined,
	}

	for _, init := range inits {
		if err := init.InitRuntime(ctx); err != nil {
			return fmt.Errorf("builtin %s: %w", init.Name(), err)
		}
		ctx.ObjectPrototype = vmInstance.ObjectPrototype
	}
	return nil
}
