package orderlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/money"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id string, qty int) *order.Order {
	return order.New(id, []order.Item{
		{ProductID: 1, Name: "Wireless Mouse", Price: money.MustParse("499.00"), Quantity: qty},
		{ProductID: 4, Name: "Notebook", Price: money.MustParse("99.00"), Quantity: 1},
	}, time.Date(2026, 10, 15, 14, 3, 7, 0, time.Local))
}

func TestReadAllWithoutFile(t *testing.T) {
	log := NewFileLog(filepath.Join(t.TempDir(), "orders.txt"))

	_, err := log.ReadAll()
	if !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestAppendThenReadAll(t *testing.T) {
	log := NewFileLog(filepath.Join(t.TempDir(), "orders.txt"))

	const n = 3
	for i := 1; i <= n; i++ {
		require.NoError(t, log.Append(testOrder(fmt.Sprintf("ORD%d", i), i)))
	}

	lines, err := log.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, n*7)

	date := time.Date(2026, 10, 15, 14, 3, 7, 0, time.Local).Format(DateLayout)
	for i := 0; i < n; i++ {
		qty := i + 1
		mouse := money.LineTotal(money.MustParse("499.00"), qty)
		assert.Equal(t, []string{
			"----",
			fmt.Sprintf("OrderId: ORD%d", qty),
			"Date: " + date,
			fmt.Sprintf("  Wireless Mouse x %d = %s", qty, money.Format(mouse)),
			"  Notebook x 1 = ₹99.00",
			"Total: " + money.Format(mouse.Add(money.MustParse("99.00"))),
			"",
		}, lines[i*7:(i+1)*7])
	}
}

func TestFormat(t *testing.T) {
	got := Format(testOrder("ORD42", 2))

	want := "----\n" +
		"OrderId: ORD42\n" +
		"Date: " + time.Date(2026, 10, 15, 14, 3, 7, 0, time.Local).Format(DateLayout) + "\n" +
		"  Wireless Mouse x 2 = ₹998.00\n" +
		"  Notebook x 1 = ₹99.00\n" +
		"Total: ₹1097.00\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestAppendKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	require.NoError(t, os.WriteFile(path, []byte("legacy line\n"), 0o644))

	log := NewFileLog(path)
	require.NoError(t, log.Append(testOrder("ORD1", 1)))

	lines, err := log.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "legacy line", lines[0])
	assert.Equal(t, "----", lines[1])
}

func TestAppendFailureIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	log := NewFileLog(filepath.Join(dir, "missing", "orders.txt"))

	err := log.Append(testOrder("ORD1", 1))

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, "open", perr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadAllOnDirectory(t *testing.T) {
	log := NewFileLog(t.TempDir())

	_, err := log.ReadAll()

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.False(t, errors.Is(err, ErrNoHistory))
}

func TestNewFileLogDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFileLog("").Path())
}
