package element

import "github.com/grindlemire/go-kbd/internal/model"

// Handle indexes an element in the Registry that created it.
type Handle int

// NoHandle is the zero anchor: constraints whose second item is NoHandle
// are absolute.
const NoHandle Handle = -1

// Element is one registered layout element.
type Element struct {
	Handle  Handle
	Address Address

	// Hidden elements take part in layout but are never drawn.
	Hidden bool
	// Interactive elements receive touches.
	Interactive bool
}

// Registry owns the elements of one layout pass.
type Registry struct {
	elements []Element
	index    map[Address]Handle
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{index: make(map[Address]Handle)}
}

// Create registers addr and returns its handle.
func (r *Registry) Create(addr Address) (Handle, error) {
	if _, ok := r.index[addr]; ok {
		return NoHandle, &DuplicateNameError{Address: addr}
	}
	h := Handle(len(r.elements))
	r.elements = append(r.elements, Element{
		Handle:      h,
		Address:     addr,
		Hidden:      addr.IsSpacer(),
		Interactive: addr.Kind == KindKey,
	})
	r.index[addr] = h
	return h, nil
}

// MustCreate is like Create but panics with *DuplicateNameError.
func (r *Registry) MustCreate(addr Address) Handle {
	h, err := r.Create(addr)
	if err != nil {
		panic(err)
	}
	return h
}

// Lookup returns the handle registered for addr.
func (r *Registry) Lookup(addr Address) (Handle, error) {
	h, ok := r.index[addr]
	if !ok {
		return NoHandle, &MissingElementError{Address: addr}
	}
	return h, nil
}

// MustLookup is like Lookup but panics with *MissingElementError.
func (r *Registry) MustLookup(addr Address) Handle {
	h, err := r.Lookup(addr)
	if err != nil {
		panic(err)
	}
	return h
}

// Has reports whether addr is registered.
func (r *Registry) Has(addr Address) bool {
	_, ok := r.index[addr]
	return ok
}

// Element returns the element for h. It panics if h was not issued by r.
func (r *Registry) Element(h Handle) Element {
	return r.elements[h]
}

// Address returns the address of h. It panics if h was not issued by r.
func (r *Registry) Address(h Handle) Address {
	return r.elements[h].Address
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.elements)
}

// Elements returns all elements in creation order.
func (r *Registry) Elements() []Element {
	out := make([]Element, len(r.elements))
	copy(out, r.elements)
	return out
}

// Count returns the number of elements of the given kind.
func (r *Registry) Count(kind Kind) int {
	n := 0
	for _, e := range r.elements {
		if e.Address.Kind == kind {
			n++
		}
	}
	return n
}

// Populate creates the container and the grid elements a layout of kb
// needs, in a fixed order: the container, then per row its row gap, key
// gaps and keys, and finally the trailing row gap. The four edge spacers
// are created by the generator's edge phase.
func Populate(kb *model.Keyboard) (*Registry, error) {
	r := New()
	if _, err := r.Create(Container()); err != nil {
		return nil, err
	}

	rows := kb.RowCount()
	for row := 0; row < rows; row++ {
		if _, err := r.Create(RowGap(row)); err != nil {
			return nil, err
		}
		cols := kb.ColumnCount(row)
		for col := 0; col <= cols; col++ {
			if _, err := r.Create(KeyGap(col, row)); err != nil {
				return nil, err
			}
		}
		for col := 0; col < cols; col++ {
			if _, err := r.Create(Key(col, row)); err != nil {
				return nil, err
			}
		}
	}
	if _, err := r.Create(RowGap(rows)); err != nil {
		return nil, err
	}
	return r, nil
}
