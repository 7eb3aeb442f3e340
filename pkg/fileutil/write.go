package fileutil

import (
	"io"
	"os"
)

// WriteFile writes the content of src to path, creating the file or
// truncating an existing one. The parent directory must already exist.
//
// The file is closed on every path. Errors from the file system are returned
// as is, so errors.Is(err, fs.ErrNotExist) reports a missing directory.
func WriteFile(path string, src io.WriterTo, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = src.WriteTo(f)
	return err
}
