package element

import "fmt"

// DuplicateNameError is returned when an address is registered twice in
// the same pass.
type DuplicateNameError struct {
	Address Address
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("element %s already registered", e.Address)
}

// MissingElementError is returned when an address is looked up before it
// was registered. It always indicates a generator bug.
type MissingElementError struct {
	Address Address
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("element %s not registered", e.Address)
}
