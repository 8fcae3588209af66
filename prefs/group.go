// This file is part of Drift.
//
// Drift is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Drift is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Drift.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/drift/curated"
)

// sentinel error patterns returned by Group functions
const (
	UnknownKey   = "prefs: unknown key (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// Group collates a number of preference values under unique keys. Keys are
// usually of the form "component.name", for example "kick.level".
type Group struct {
	crit    sync.Mutex
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the group.
func (g *Group) Add(key string, p Pref) error {
	g.crit.Lock()
	defer g.crit.Unlock()

	key = strings.TrimSpace(key)
	if _, ok := g.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	g.entries[key] = p
	return nil
}

func (g *Group) lookup(key string) (Pref, error) {
	g.crit.Lock()
	defer g.crit.Unlock()

	p, ok := g.entries[strings.TrimSpace(key)]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p, nil
}

// Set the value of the preference with the named key. The group lock is not
// held while the value is being set, so hooks are free to call back into the
// group.
func (g *Group) Set(key string, v Value) error {
	p, err := g.lookup(key)
	if err != nil {
		return err
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf("prefs: %s: %v", key, err)
	}
	return nil
}

// Get the value of the preference with the named key.
func (g *Group) Get(key string) (Value, error) {
	p, err := g.lookup(key)
	if err != nil {
		return nil, err
	}
	return p.Get(), nil
}

// Keys returns the sorted list of keys in the group.
func (g *Group) Keys() []string {
	g.crit.Lock()
	defer g.crit.Unlock()

	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset every preference in the group to its default value.
func (g *Group) Reset() error {
	for _, k := range g.Keys() {
		p, _ := g.lookup(k)
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}
	return nil
}

// ApplyCommandLine sets every preference in the group that has a value in the
// current command line group (see PushCommandLineStack()). Keys are applied
// in the order returned by Keys().
func (g *Group) ApplyCommandLine() error {
	for _, k := range g.Keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := g.Set(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// String returns every key/value pair in the group, one per line, in the same
// format accepted by PushCommandLineStack().
func (g *Group) String() string {
	s := strings.Builder{}
	for _, k := range g.Keys() {
		p, _ := g.lookup(k)
		s.WriteString(fmt.Sprintf("%s::%s\n", k, p.String()))
	}
	return s.String()
}
