package parser

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Jranae/RegularExpressions-JRB/pkg/failure"
)

// ReadDocument reads a whole text file and returns its lines joined with
// "\n", each line including the last one followed by a newline. "\r\n" and
// lone "\r" terminators are normalised to "\n". Lines may be of any length.
func ReadDocument(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return "", failure.IO("opening document", path, err)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", failure.IO("reading document", path, err)
	}

	log.Debug().Str("file", path).Int("bytes", len(data)).Msg("read document")

	return normalizeLines(data), nil
}
