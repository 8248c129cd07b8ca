// Package dataset ships the raw variant blocks upgradegen is maintained for.
//
// Each dataset pairs a block of variant names, copied verbatim from the
// smbioslib reference, with the template of the matching local enum. Datasets
// keep their registration order so regeneration output is stable across runs.
package dataset

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/upgradegen"
)

// Dataset is a raw variant block paired with its conversion template.
type Dataset struct {
	// Name is the registry key, in snake_case.
	Name string

	// Block is the raw variant block as copied from the reference, trailing
	// commas intact. It is normalized at generation time, not here.
	Block string

	// Template is the conversion template for the enum pair.
	Template upgradegen.Template
}

var registry = linkedhashmap.New() // string -> Dataset

// register adds a dataset for the smbioslib type named by the key.
func register(name, block string) {
	registry.Put(name, Dataset{
		Name:  name,
		Block: block,
		Template: upgradegen.Template{
			Source: "smbioslib::" + TypeName(name),
			Target: "Self",
		},
	})
}

// All returns every dataset in registration order.
func All() []Dataset {
	ds := make([]Dataset, 0, registry.Size())

	it := registry.Iterator()
	for it.Next() {
		ds = append(ds, it.Value().(Dataset))
	}
	return ds
}

// Lookup returns the dataset registered under the given name.
func Lookup(name string) (Dataset, bool) {
	v, ok := registry.Get(name)
	if !ok {
		return Dataset{}, false
	}
	return v.(Dataset), true
}
