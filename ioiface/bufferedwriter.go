// File: bufferedwriter.go
// Role: BufferedWriter — the reference Writer/IdentifierWriter,
// formatting one line per fragment and flushing on Close.
package ioiface

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BufferedWriter writes fragment output and, optionally, the
// "id:list" identifier sidecar, each to its own io.Writer.
type BufferedWriter struct {
	out         *bufio.Writer
	ids         *bufio.Writer
	idsW        io.Writer
	wroteHeader bool
}

// NewBufferedWriter wraps out for fragment output. If ids is
// non-nil, WriteIdentifiers also emits the header line "id:list" on
// first use.
func NewBufferedWriter(out io.Writer, ids io.Writer) *BufferedWriter {
	w := &BufferedWriter{out: bufio.NewWriter(out)}
	if ids != nil {
		w.ids = bufio.NewWriter(ids)
		w.idsW = ids
	}

	return w
}

// WriteFragment implements Writer.
func (w *BufferedWriter) WriteFragment(id int, description string, focusSupp, complSupp int, focusRel, complRel float64) error {
	_, err := fmt.Fprintf(w.out, "%d\t%s\t%d\t%.4f\t%d\t%.4f\n", id, description, focusSupp, focusRel, complSupp, complRel)

	return err
}

// WriteIdentifiers implements IdentifierWriter.
func (w *BufferedWriter) WriteIdentifiers(id int, hostNames []string) error {
	if w.ids == nil {
		return nil
	}
	if !w.wroteHeader {
		if _, err := fmt.Fprintln(w.ids, "id:list"); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	_, err := fmt.Fprintf(w.ids, "%d:%s\n", id, strings.Join(hostNames, ","))

	return err
}

// Close flushes both underlying buffers.
func (w *BufferedWriter) Close() error {
	if err := w.out.Flush(); err != nil {
		return err
	}
	if w.ids != nil {
		return w.ids.Flush()
	}

	return nil
}
