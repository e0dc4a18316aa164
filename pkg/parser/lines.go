package parser

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// scanLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a lone
// "\r". The terminator is not part of the token, and a final line without
// one is still returned.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// "\r" at the end of the buffer: it may be the start of "\r\n".
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	sc.Split(scanLines)
	return sc
}

// normalizeLines rewrites every line terminator of data as "\n" and adds one
// after a final unterminated line.
func normalizeLines(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) + 1)

	for len(data) > 0 {
		advance, line, _ := scanLines(data, true)
		sb.Write(line)
		sb.WriteByte('\n')
		data = data[advance:]
	}
	return sb.String()
}
