package terminal

import (
	"bytes"
	"io"
)

var crlf = []byte("\r\n")

// CRLFWriter expands bare LF to CRLF so diagnostics stay left-aligned while the tty is raw
type CRLFWriter struct {
	w io.Writer
}

// NewCRLFWriter wraps w
func NewCRLFWriter(w io.Writer) *CRLFWriter {
	return &CRLFWriter{w: w}
}

// Write reports bytes of p consumed, not bytes emitted
func (c *CRLFWriter) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			m, err := c.w.Write(p)
			return n + m, err
		}

		if i > 0 && p[i-1] == '\r' {
			m, err := c.w.Write(p[:i+1])
			n += m
			if err != nil {
				return n, err
			}
		} else {
			m, err := c.w.Write(p[:i])
			n += m
			if err != nil {
				return n, err
			}
			if _, err := c.w.Write(crlf); err != nil {
				return n, err
			}
			n++
		}
		p = p[i+1:]
	}
	return n, nil
}
