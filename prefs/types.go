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
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/drift/curated"
)

// Value represents the actual Go preference value.
type Value any

// Pref is implemented by all types supported by the prefs system.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// sentinel error patterns returned by Set() functions
const (
	CannotConvert = "prefs: cannot convert %T to %s"
	BadValue      = "prefs: %s: %v"
)

// hooks are embedded in every preference type. the hooks are called from the
// goroutine that calls Set(), which means that a hook must not assume that it
// is running in any particular goroutine.
type hooks struct {
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. An error returned by the hook prevents the update. Note
// that the callback will be executed even if the value hasn't changed.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that the callback will be executed even if the value
// hasn't changed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.hookPost = f
}

// update calls the pre hook, the store function and then the post hook
func (h *hooks) update(nv Value, store func()) error {
	if h.hookPre != nil {
		if err := h.hookPre(nv); err != nil {
			return err
		}
	}

	store()

	if h.hookPost != nil {
		if err := h.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Bool
	def   bool
}

// NewBool returns a Bool preference with the specified default value.
func NewBool(def bool) *Bool {
	p := &Bool{def: def}
	p.value.Store(def)
	return p
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Bool")
	}
	return p.update(nv, func() { p.value.Store(nv) })
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Bool returns the value as a bool. Saves a type assertion at the call site.
func (p *Bool) Bool() bool {
	return p.value.Load()
}

// Reset sets the boolean value to its default.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value atomic.Value // string
	def   string
}

// NewString returns a String preference with the specified default value.
func NewString(def string) *String {
	p := &String{def: def}
	p.value.Store(def)
	return p
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Set new value to String type. Values of any type are converted with the %v
// verb.
func (p *String) Set(v Value) error {
	nv := strings.TrimSpace(fmt.Sprintf("%v", v))
	return p.update(nv, func() { p.value.Store(nv) })
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to its default.
func (p *String) Reset() error {
	return p.Set(p.def)
}

// Int implements an integer type in the prefs system. Values outside of the
// range set by SetRange() are clamped rather than rejected.
type Int struct {
	hooks
	value    atomic.Int64
	def      int
	min, max int
	ranged   bool
}

// NewInt returns an Int preference with the specified default value.
func NewInt(def int) *Int {
	p := &Int{def: def}
	p.value.Store(int64(def))
	return p
}

// SetRange limits the values that the Int can take.
func (p *Int) SetRange(min, max int) {
	if min > max {
		min, max = max, min
	}
	p.min = min
	p.max = max
	p.ranged = true
	p.value.Store(int64(p.clamp(int(p.value.Load()))))
}

func (p *Int) clamp(v int) int {
	if !p.ranged {
		return v
	}
	return max(p.min, min(p.max, v))
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// Set new value to Int type. New value can be an int, a float or a string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case float64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(BadValue, "prefs.Int", err)
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Int")
	}

	nv = p.clamp(nv)
	return p.update(nv, func() { p.value.Store(int64(nv)) })
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// Int returns the value as an int. Saves a type assertion at the call site.
func (p *Int) Int() int {
	return int(p.value.Load())
}

// Reset sets the int value to its default.
func (p *Int) Reset() error {
	return p.Set(p.def)
}

// Float implements a floating point type in the prefs system. Values outside
// of the range set by SetRange() are clamped rather than rejected. Non-finite
// values are always rejected.
type Float struct {
	hooks
	value    atomic.Uint64 // math.Float64bits()
	def      float64
	min, max float64
	ranged   bool
}

// NewFloat returns a Float preference with the specified default value.
func NewFloat(def float64) *Float {
	p := &Float{def: def}
	p.value.Store(math.Float64bits(def))
	return p
}

// SetRange limits the values that the Float can take.
func (p *Float) SetRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	p.min = min
	p.max = max
	p.ranged = true
	p.value.Store(math.Float64bits(p.clamp(p.Float())))
}

func (p *Float) clamp(v float64) float64 {
	if !p.ranged {
		return v
	}
	return math.Max(p.min, math.Min(p.max, v))
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Float())
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case int64:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(BadValue, "prefs.Float", err)
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Float")
	}

	if math.IsNaN(nv) || math.IsInf(nv, 0) {
		return curated.Errorf(BadValue, "prefs.Float", "value is not finite")
	}

	nv = p.clamp(nv)
	return p.update(nv, func() { p.value.Store(math.Float64bits(nv)) })
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.Float()
}

// Float returns the value as a float64. Saves a type assertion at the call
// site.
func (p *Float) Float() float64 {
	return math.Float64frombits(p.value.Load())
}

// Reset sets the float value to its default.
func (p *Float) Reset() error {
	return p.Set(p.def)
}
