// Package orderlog stores placed orders as human-readable blocks in an
// append-only text file and reads the file back line by line.
package orderlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/money"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/order"
)

const (
	DefaultPath = "orders.txt"
	Separator   = "----"

	// DateLayout renders local time like "Tue Oct 15 14:03:07 IST 2026".
	DateLayout = "Mon Jan 02 15:04:05 MST 2006"
)

type FileLog struct {
	path string
}

func NewFileLog(path string) *FileLog {
	if path == "" {
		path = DefaultPath
	}
	return &FileLog{path: path}
}

func (l *FileLog) Path() string { return l.path }

// Append writes one order block. The file is created on first use and is
// never truncated.
func (l *FileLog) Append(o *order.Order) (err error) {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &PersistenceError{Op: "open", Path: l.path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &PersistenceError{Op: "close", Path: l.path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := io.WriteString(w, Format(o)); err != nil {
		return &PersistenceError{Op: "write", Path: l.path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &PersistenceError{Op: "write", Path: l.path, Err: err}
	}
	return nil
}

// ReadAll returns every line of the log in file order.
func (l *FileLog) ReadAll() ([]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoHistory
		}
		return nil, &PersistenceError{Op: "open", Path: l.path, Err: err}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &PersistenceError{Op: "read", Path: l.path, Err: err}
	}
	return lines, nil
}

// Format renders the block Append writes, trailing blank line included.
func Format(o *order.Order) string {
	var b strings.Builder
	b.WriteString(Separator + "\n")
	fmt.Fprintf(&b, "OrderId: %s\n", o.ID)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Local().Format(DateLayout))
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  %s x %d = %s\n", it.Name, it.Quantity, money.Format(it.Total()))
	}
	fmt.Fprintf(&b, "Total: %s\n", money.Format(o.Total))
	b.WriteString("\n")
	return b.String()
}
