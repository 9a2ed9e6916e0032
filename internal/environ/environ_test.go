package environ

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxscript/glox/internal/token"
	"github.com/loxscript/glox/internal/value"
)

func nameTok(name string) token.Token { return token.New(token.Identifier, name, nil, 1) }

func TestDefineAndGetInCurrentScope(t *testing.T) {
	env := New()
	env.Define("x", value.Num(token.NewInteger(1)))
	v, err := env.Get(nameTok("x"))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v.AsNumber().Int64())
}

func TestGetUndefinedIsNameError(t *testing.T) {
	env := New()
	_, err := env.Get(nameTok("missing"))
	assert.Error(t, err)
}

func TestAssignNeverImplicitlyDeclares(t *testing.T) {
	env := New()
	err := env.Assign(nameTok("missing"), value.Bool(true))
	assert.Error(t, err)
}

func TestScopeShadowingAndPop(t *testing.T) {
	env := New()
	env.Define("x", value.Num(token.NewInteger(1)))
	env.PushScope()
	env.Define("x", value.Num(token.NewInteger(2)))
	v, _ := env.Get(nameTok("x"))
	assert.Equal(t, int64(2), v.AsNumber().Int64())
	env.PopScope()
	v, _ = env.Get(nameTok("x"))
	assert.Equal(t, int64(1), v.AsNumber().Int64())
}

func TestCallFrameFallsBackToGlobal(t *testing.T) {
	env := New()
	env.Define("g", value.Str("global"))
	env.PushFrame("fn")
	v, err := env.Get(nameTok("g"))
	assert.NoError(t, err)
	assert.Equal(t, "global", v.AsString())

	env.Define("local", value.Str("only-in-frame"))
	env.PopFrame()
	_, err = env.Get(nameTok("local"))
	assert.Error(t, err, "a call frame's scopes must not leak into the global frame")
}

func TestClearResetsGlobalAndDiscardsFrames(t *testing.T) {
	env := New()
	env.Define("x", value.Bool(true))
	env.PushFrame("fn")
	env.Clear()
	assert.Equal(t, 0, env.Depth())
	_, err := env.Get(nameTok("x"))
	assert.Error(t, err)
}

func TestAssignTargetsInnermostScopeWhereNameExists(t *testing.T) {
	env := New()
	env.Define("x", value.Num(token.NewInteger(1)))
	env.PushScope()
	err := env.Assign(nameTok("x"), value.Num(token.NewInteger(9)))
	assert.NoError(t, err)
	env.PopScope()
	v, _ := env.Get(nameTok("x"))
	assert.Equal(t, int64(9), v.AsNumber().Int64())
}
