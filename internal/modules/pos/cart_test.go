package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeLineIncrementsExisting(t *testing.T) {
	cart := []CartLine{{ProductID: "p1", Size: "M", Quantity: 1}}

	cart = MergeLine(cart, CartLine{ProductID: "p1", Size: "M", Quantity: 1})
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestMergeLineAppendsNewPair(t *testing.T) {
	cart := []CartLine{{ProductID: "p1", Size: "M", Quantity: 1}}

	// Same product in another size is a distinct line.
	cart = MergeLine(cart, CartLine{ProductID: "p1", Size: "L", Quantity: 1})
	cart = MergeLine(cart, CartLine{ProductID: "p2", Size: "M", Quantity: 3})
	assert.Len(t, cart, 3)
	assert.Equal(t, 3, cart[2].Quantity)
}
