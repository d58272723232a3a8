// Package capacity holds the static capacity table that maps a container size and
// refrigeration class to its volume and weight ceilings.
package capacity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/container-order-service/internal/domain/model"
)

var (
	// ErrClassNotFound is returned when no class matches a size and refrigeration pair.
	ErrClassNotFound = errors.New("capacity class not found")
	// ErrInvalidTable is returned when a table fails validation.
	ErrInvalidTable = errors.New("invalid capacity table")
)

var validate = validator.New()

// DefaultClasses is the built-in table used when no file or stored table is configured.
var DefaultClasses = []model.CapacityClass{
	{Size: "20ft", Refrigerated: false, MaxVolume: 33, MaxWeight: 18000},
	{Size: "20ft", Refrigerated: true, MaxVolume: 28, MaxWeight: 17000},
	{Size: "40ft", Refrigerated: false, MaxVolume: 67, MaxWeight: 26000},
	{Size: "40ft", Refrigerated: true, MaxVolume: 59, MaxWeight: 26000},
	{Size: "40ft-hc", Refrigerated: false, MaxVolume: 76, MaxWeight: 26500},
	{Size: "40ft-hc", Refrigerated: true, MaxVolume: 67, MaxWeight: 26000},
}

// Table is an immutable capacity lookup. It is safe for concurrent use.
type Table struct {
	classes map[model.CapacityKey]model.CapacityClass
	ordered []model.CapacityClass
}

// NewTable validates classes and builds a table. Every entry needs a size and
// positive ceilings, and each (size, refrigerated) pair may appear once.
func NewTable(classes []model.CapacityClass) (*Table, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: no classes", ErrInvalidTable)
	}

	t := &Table{
		classes: make(map[model.CapacityKey]model.CapacityClass, len(classes)),
		ordered: make([]model.CapacityClass, 0, len(classes)),
	}
	for i, class := range classes {
		if err := validate.Struct(class); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidTable, i, err)
		}
		key := class.Key()
		if _, exists := t.classes[key]; exists {
			return nil, fmt.Errorf("%w: duplicate class %s", ErrInvalidTable, key)
		}
		t.classes[key] = class
		t.ordered = append(t.ordered, class)
	}

	sort.SliceStable(t.ordered, func(i, j int) bool {
		if t.ordered[i].Size != t.ordered[j].Size {
			return t.ordered[i].Size < t.ordered[j].Size
		}
		return !t.ordered[i].Refrigerated && t.ordered[j].Refrigerated
	})

	return t, nil
}

// Default returns a table built from DefaultClasses.
func Default() *Table {
	t, err := NewTable(DefaultClasses)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the class for size and refrigerated.
func (t *Table) Lookup(size string, refrigerated bool) (model.CapacityClass, error) {
	key := model.CapacityKey{Size: size, Refrigerated: refrigerated}
	class, ok := t.classes[key]
	if !ok {
		return model.CapacityClass{}, fmt.Errorf("%w: %s", ErrClassNotFound, key)
	}
	return class, nil
}

// Classes returns a copy of every class, ordered by size then refrigeration.
func (t *Table) Classes() []model.CapacityClass {
	out := make([]model.CapacityClass, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len returns the number of classes.
func (t *Table) Len() int {
	return len(t.ordered)
}
