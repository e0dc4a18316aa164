package counter

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
)

// FormatRecords writes one "<pattern>|<count>" line per record.
func FormatRecords(w io.Writer, records []Record) error {
	for _, r := range records {
		if _, err := io.WriteString(w, r.Pattern+"|"+strconv.Itoa(r.Count)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecords writes records to path. The data goes to a temporary file in
// the same directory which is renamed over path only once fully written, so
// a failed run never leaves a truncated report behind.
func WriteRecords(path string, records []Record) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return failure.IO("creating output file", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = FormatRecords(w, records); err != nil {
		return failure.IO("writing output file", path, err)
	}
	if err = w.Flush(); err != nil {
		return failure.IO("writing output file", path, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return failure.IO("writing output file", path, err)
	}
	if err = tmp.Close(); err != nil {
		return failure.IO("closing output file", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return failure.IO("renaming output file", path, err)
	}
	return nil
}
