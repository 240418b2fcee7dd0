package cart

import (
	"errors"
	"testing"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() (*catalog.Product, *catalog.Product) {
	a := &catalog.Product{ID: 1, Name: "Mouse", Price: money.MustParse("499.00"), Stock: 10}
	b := &catalog.Product{ID: 2, Name: "Bottle", Price: money.MustParse("349.00"), Stock: 20}
	return a, b
}

func TestAddMergesSameProduct(t *testing.T) {
	mouse, bottle := testProducts()
	c := New()

	require.NoError(t, c.Add(mouse, 2))
	require.NoError(t, c.Add(bottle, 1))
	require.NoError(t, c.Add(mouse, 3))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Product.ID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 2, items[1].Product.ID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	mouse, _ := testProducts()

	tests := map[string]struct {
		product *catalog.Product
		qty     int
		wantErr error
	}{
		"zero qty":     {product: mouse, qty: 0, wantErr: ErrInvalidQuantity},
		"negative qty": {product: mouse, qty: -2, wantErr: ErrInvalidQuantity},
		"nil product":  {product: nil, qty: 1, wantErr: ErrNilProduct},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New()
			err := c.Add(tt.product, tt.qty)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestTotalIncreasesByLineAmount(t *testing.T) {
	mouse, bottle := testProducts()
	c := New()
	require.NoError(t, c.Add(mouse, 1))

	before := c.Total()
	require.NoError(t, c.Add(bottle, 3))

	delta := c.Total().Sub(before)
	assert.True(t, delta.Equal(money.MustParse("1047.00")), "delta was %s", delta)
	assert.Equal(t, "₹1546.00", money.Format(c.Total()))
}

func TestTotalDecreasesByRemovedLine(t *testing.T) {
	mouse, bottle := testProducts()
	c := New()
	require.NoError(t, c.Add(mouse, 2))
	require.NoError(t, c.Add(bottle, 3))

	before := c.Total()
	c.Remove(mouse.ID)
	assert.True(t, before.Sub(c.Total()).Equal(money.MustParse("998.00")), "total was %s", c.Total())

	before = c.Total()
	removed, err := c.RemoveAt(1)
	require.NoError(t, err)
	assert.True(t, before.Sub(c.Total()).Equal(removed.Total()))
	assert.True(t, c.Total().IsZero())

	before = c.Total()
	c.Remove(mouse.ID)
	assert.True(t, c.Total().Equal(before))
}

func TestTotalUsesCurrentPrice(t *testing.T) {
	mouse, _ := testProducts()
	c := New()
	require.NoError(t, c.Add(mouse, 2))

	mouse.Price = money.MustParse("100.00")

	assert.Equal(t, "₹200.00", money.Format(c.Total()))
}

func TestRemove(t *testing.T) {
	mouse, bottle := testProducts()
	c := New()
	require.NoError(t, c.Add(mouse, 1))
	require.NoError(t, c.Add(bottle, 1))

	c.Remove(1)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Items()[0].Product.ID)

	c.Remove(1)
	c.Remove(42)
	assert.Equal(t, 1, c.Len())
}

func TestRemoveAt(t *testing.T) {
	mouse, bottle := testProducts()
	c := New()
	require.NoError(t, c.Add(mouse, 1))
	require.NoError(t, c.Add(bottle, 4))

	for _, pos := range []int{0, 3, -1} {
		_, err := c.RemoveAt(pos)
		if !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("position %d: expected ErrInvalidPosition, got %v", pos, err)
		}
	}
	require.Equal(t, 2, c.Len())

	removed, err := c.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, "Bottle", removed.Product.Name)
	assert.Equal(t, 4, removed.Quantity)
	assert.Equal(t, 1, c.Len())
}

func TestClearAndLines(t *testing.T) {
	mouse, bottle := testProducts()
	c := New()
	require.NoError(t, c.Add(mouse, 2))
	require.NoError(t, c.Add(bottle, 1))

	assert.Equal(t, []catalog.Line{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, c.Lines())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
	assert.Empty(t, c.Lines())
}

func TestItemsIsACopy(t *testing.T) {
	mouse, _ := testProducts()
	c := New()
	require.NoError(t, c.Add(mouse, 1))

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
