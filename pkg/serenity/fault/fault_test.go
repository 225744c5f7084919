package fault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestCatch(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		assert.NoError(t, Catch(func() {}))
	})

	t.Run("programming error", func(t *testing.T) {
		err := Catch(func() { Panic("thing.build", errSentinel) })
		require.Error(t, err)
		assert.True(t, IsProgrammingError(err))
		assert.ErrorIs(t, err, errSentinel)
		assert.Equal(t, "serenity: programming error: thing.build: sentinel", err.Error())
	})

	t.Run("other panics propagate", func(t *testing.T) {
		assert.PanicsWithValue(t, "boom", func() {
			_ = Catch(func() { panic("boom") })
		})
	})
}

func TestIsProgrammingError(t *testing.T) {
	assert.False(t, IsProgrammingError(nil))
	assert.False(t, IsProgrammingError(errSentinel))
	assert.True(t, IsProgrammingError(&ProgrammingError{Op: "x"}))
}
