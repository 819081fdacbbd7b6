// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package routine

import (
	"fmt"

	"github.com/gogpu/inapp/appsurface"
)

// Catalog names of the built-in routines.
const (
	EmptyName  = "empty"
	ShapesName = "shapes"
)

// Selectors of the built-in routines in DefaultCatalog.
const (
	SelectEmpty  = 0
	SelectShapes = 1
)

// Constructor builds a routine for a surface. Construction may fail.
type Constructor func(view appsurface.View) (Routine, error)

// Entry is one selectable routine.
type Entry struct {
	Name string
	New  Constructor
}

// Catalog maps selectors to routines. A selector is an index into the catalog.
type Catalog []Entry

// DefaultCatalog returns the built-in routines: 0 empty, 1 shapes.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: EmptyName, New: NewEmpty},
		{Name: ShapesName, New: NewShapes},
	}
}

// Resolve returns the entry for selector and whether it was in range.
// Out-of-range selectors resolve to the empty routine.
func (c Catalog) Resolve(selector int) (Entry, bool) {
	if selector < 0 || selector >= len(c) || c[selector].New == nil {
		return Entry{Name: EmptyName, New: NewEmpty}, false
	}
	return c[selector], true
}

// New constructs the routine for selector.
func (c Catalog) New(selector int, view appsurface.View) (Routine, error) {
	e, _ := c.Resolve(selector)
	r, err := e.New(view)
	if err != nil {
		return nil, fmt.Errorf("routine: create %s: %w", e.Name, err)
	}
	return r, nil
}

// Names returns the catalog names in selector order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}
