package sheet

import (
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// detectionHeaderSize is enough bytes for filetype magic matching.
const detectionHeaderSize = 262

// isArchiveFile reports whether the file is a zip archive. Detection is done
// by content magic, the extension is not trusted.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, detectionHeaderSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, err
	}
	return filetype.IsType(buf[:n], matchers.TypeZip), nil
}
