package access

import "fmt"

// ContractViolation is the panic value raised when a traversal engine
// invokes a mutator the surface does not support.
type ContractViolation struct {
	Op string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("access: unsupported mutator %s invoked", e.Op)
}

func violate(op string) {
	panic(&ContractViolation{Op: op})
}
