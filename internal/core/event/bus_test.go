package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDoubleBuffer(t *testing.T) {
	b := NewBus()
	var got []string
	Subscribe(b, func(e CameraCycled) { got = append(got, e.From+">"+e.To) })

	Emit(b, CameraCycled{From: "Secondary", To: "Primary"})
	assert.Equal(t, 1, b.Pending())

	// Not visible until the buffers are swapped.
	b.DispatchAll()
	assert.Empty(t, got)

	b.SwapBuffers()
	assert.Equal(t, 0, b.Pending())
	b.DispatchAll()
	assert.Equal(t, []string{"Secondary>Primary"}, got)

	// Front buffer is consumed after the next swap.
	b.SwapBuffers()
	b.DispatchAll()
	assert.Len(t, got, 1)
}

func TestBusDispatchOrder(t *testing.T) {
	b := NewBus()
	var trace []string
	Subscribe(b, func(e CameraSwitched) { trace = append(trace, "switched:"+e.To) })
	Subscribe(b, func(e CameraCycled) { trace = append(trace, "cycled:"+e.To) })

	Emit(b, CameraCycled{To: "Primary"})
	Emit(b, CameraSwitched{To: "Primary"})
	Emit(b, CameraCycled{To: "Secondary"})
	b.SwapBuffers()
	b.DispatchAll()

	assert.Equal(t, []string{"cycled:Primary", "cycled:Secondary", "switched:Primary"}, trace)
}
