// Package environ implements the call-frame stack of lexical scopes
// described in spec.md §3: a stack of call frames, each a stack of
// scopes, mapping identifier names to values. Grounded on
// original_source/src/parser/vm/{stack,var_pool}.rs (VmStack = Frame,
// VmVarPool = Scope) and the teacher's environment.go (enclosing-pointer
// shape), generalized to the spec's two-level frame/scope structure.
package environ

import (
	"github.com/loxscript/glox/internal/loxerr"
	"github.com/loxscript/glox/internal/token"
	"github.com/loxscript/glox/internal/value"
)

// Scope is a mapping of identifier name to value, created at block entry
// and destroyed at block exit.
type Scope map[string]value.Value

// Frame is a push/pop-scoped container created per function invocation
// (or the permanent global frame), holding a stack of Scopes innermost-last.
type Frame struct {
	Name   string
	scopes []Scope
}

func newFrame(name string) *Frame {
	return &Frame{Name: name, scopes: []Scope{make(Scope)}}
}

func (f *Frame) innermost() Scope { return f.scopes[len(f.scopes)-1] }

// PushScope enters a new lexical block on this frame.
func (f *Frame) PushScope() { f.scopes = append(f.scopes, make(Scope)) }

// PopScope exits the innermost lexical block on this frame.
func (f *Frame) PopScope() { f.scopes = f.scopes[:len(f.scopes)-1] }

func (f *Frame) find(name string) (Scope, bool) {
	for i := len(f.scopes) - 1; i >= 0; i-- {
		if _, ok := f.scopes[i][name]; ok {
			return f.scopes[i], true
		}
	}
	return nil, false
}

// Environment is the interpreter's full frame stack: a permanent global
// frame at the bottom, plus zero or more call frames pushed by function
// invocations, innermost-last.
type Environment struct {
	global *Frame
	frames []*Frame
}

// New returns an Environment with a single, empty global frame.
func New() *Environment {
	return &Environment{global: newFrame("(global)")}
}

// Clear empties the global frame (back to one empty scope) and discards
// every call frame, per spec.md §3: "cleared (but not popped) by the
// clear operation."
func (e *Environment) Clear() {
	e.global = newFrame("(global)")
	e.frames = nil
}

// PushFrame introduces a new call frame, named after the callee.
func (e *Environment) PushFrame(name string) {
	e.frames = append(e.frames, newFrame(name))
}

// PopFrame retires the innermost call frame.
func (e *Environment) PopFrame() {
	e.frames = e.frames[:len(e.frames)-1]
}

func (e *Environment) current() *Frame {
	if len(e.frames) == 0 {
		return e.global
	}
	return e.frames[len(e.frames)-1]
}

// PushScope enters a new lexical block on the current frame.
func (e *Environment) PushScope() { e.current().PushScope() }

// PopScope exits the innermost lexical block on the current frame.
func (e *Environment) PopScope() { e.current().PopScope() }

// Define binds name in the innermost scope of the current frame,
// overwriting any existing binding in that exact scope (shadowing is
// allowed across scopes, not within one).
func (e *Environment) Define(name string, v value.Value) {
	e.current().innermost()[name] = v
}

// Get implements spec.md §3's lookup rule: walk the current frame's
// scopes innermost-out; if absent and the current frame is not global,
// fall back to the global frame's scopes.
func (e *Environment) Get(name token.Token) (value.Value, error) {
	cur := e.current()
	if scope, ok := cur.find(name.Lexeme); ok {
		return scope[name.Lexeme], nil
	}
	if cur != e.global {
		if scope, ok := e.global.find(name.Lexeme); ok {
			return scope[name.Lexeme], nil
		}
	}
	return value.Value{}, loxerr.NewNameError(name, "undefined variable '"+name.Lexeme+"'")
}

// Assign implements spec.md §3's assignment rule: target the innermost
// scope in the current frame where the name already exists; if none,
// search the global frame's scopes. Assigning to an unknown name is a
// NameError (it never implicitly declares).
func (e *Environment) Assign(name token.Token, v value.Value) error {
	cur := e.current()
	if scope, ok := cur.find(name.Lexeme); ok {
		scope[name.Lexeme] = v
		return nil
	}
	if cur != e.global {
		if scope, ok := e.global.find(name.Lexeme); ok {
			scope[name.Lexeme] = v
			return nil
		}
	}
	return loxerr.NewNameError(name, "undefined variable '"+name.Lexeme+"'")
}

// CurrentFrameName reports the name of the innermost call frame, or
// "(global)" at top level.
func (e *Environment) CurrentFrameName() string { return e.current().Name }

// Depth reports how many call frames are currently pushed (0 at top level).
func (e *Environment) Depth() int { return len(e.frames) }
