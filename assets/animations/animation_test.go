package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimation_Loops(t *testing.T) {
	a := NewAnimation(3, 5, 1, 1)

	var frames []int
	for i := 0; i < 8; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}

	assert.Equal(t, []int{3, 4, 4, 5, 5, 3, 3, 4}, frames)
	assert.True(t, a.Looped)
}

func TestAnimation_StaticHoldsFirstFrame(t *testing.T) {
	a := NewAnimation(9, 9, 1, 0)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.Equal(t, 9, a.Frame())
	assert.False(t, a.Looped)

	a = NewAnimation(18, 19, 1, 0)
	a.Update()
	assert.Equal(t, 18, a.Frame())
}

func TestAnimation_Restart(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0.5)
	a.Update()
	a.Update()
	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}
