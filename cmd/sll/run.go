package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tychoish/sll"
	"github.com/tychoish/sll/ers"
)

// printer keeps the first write error so the demo can print freely
// and check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Printf(tmpl string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, tmpl, args...)
}

func (p *printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

func (p *printer) Do(op func(io.Writer) error) {
	if p.err != nil {
		return
	}
	p.err = op(p.w)
}

// run exercises each list operation in turn, writing results to w
// and diagnostics to logger.
func run(w io.Writer, logger *zap.Logger, conf Config) error {
	out := &printer{w: w}
	list := sll.NewFromSlice(conf.Values)

	list.LogMemoryLayout(logger)
	out.Do(list.PrintMemoryLayout)
	out.Println()

	out.Printf("Size of the list: %d\n", list.Len())
	out.Printf("Type of the elements: %s\n", list.ElementType())

	out.Println("\nIterating over the list:")
	for item := range list.Iterator() {
		out.Println(item)
	}

	out.Println("\nSorting the list:")
	list.Sort()
	out.Do(list.DebugMemory)

	out.Println("\nPopping the last element:")
	if value, ok := list.Pop(); ok {
		out.Printf("Popped: %d\n", value)
	}

	out.Println("\nIterating over the list:")
	for item := range list.Iterator() {
		out.Println(item)
	}

	value, err := ers.WithRecoverDo(func() int { return list.MustIndex(conf.Index) })
	if err != nil {
		logger.Error("index lookup failed", zap.Int("index", conf.Index), zap.Int("size", list.Len()), zap.Error(err))
	} else {
		out.Printf("Element at %d: %d\n", conf.Index, value)
	}

	out.Printf("Size of the list: %d\n", list.Len())

	out.Println("\nClearing the list:")
	list.Clear()
	out.Printf("Size of the list: %d\n", list.Len())

	if err := list.Validate(); err != nil {
		return err
	}

	return out.err
}
