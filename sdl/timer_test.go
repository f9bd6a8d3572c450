package sdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timerRegistryState(id TimerID, key uintptr) (haveFn, haveKey bool) {
	timerMu.Lock()
	defer timerMu.Unlock()
	_, haveFn = timerFuncs[key]
	_, haveKey = timerKeys[id]
	return
}

func TestTimerFireKeepsRepeatingCallback(t *testing.T) {
	fired := 0
	key := timerRegister(func(interval uint32) uint32 {
		fired++
		return interval
	})
	id := TimerID(3)
	timerBind(id, key)
	defer timerForget(id, key)

	assert.EqualValues(t, 25, timerFire(key, uint32(id), 25))
	assert.EqualValues(t, 25, timerFire(key, uint32(id), 25))
	assert.Equal(t, 2, fired)

	haveFn, haveKey := timerRegistryState(id, key)
	assert.True(t, haveFn)
	assert.True(t, haveKey)
}

func TestTimerFireForgetsCancellingCallback(t *testing.T) {
	key := timerRegister(func(uint32) uint32 { return 0 })
	id := TimerID(4)
	timerBind(id, key)

	require.EqualValues(t, 0, timerFire(key, uint32(id), 10))

	haveFn, haveKey := timerRegistryState(id, key)
	assert.False(t, haveFn)
	assert.False(t, haveKey)
}

func TestTimerForgetPrunesBothTables(t *testing.T) {
	fired := 0
	key := timerRegister(func(uint32) uint32 {
		fired++
		return 100
	})
	id := TimerID(5)
	timerBind(id, key)

	timerForget(id, key)

	haveFn, haveKey := timerRegistryState(id, key)
	assert.False(t, haveFn)
	assert.False(t, haveKey)

	// Firing after removal is a no-op that cancels on the native side.
	assert.EqualValues(t, 0, timerFire(key, uint32(id), 10))
	assert.Equal(t, 0, fired)
}
