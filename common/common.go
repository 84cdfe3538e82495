package common

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func MarshalResult(v interface{}) (io.Reader, error) {
	b, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

func UnMarshalResult(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}

//join the output directory and a file name, "" means the working directory
func Outputfilename(dir, name string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

func Makeoutputdir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0775); err != nil {
		return errors.Wrapf(err, "create output dir %s", dir)
	}
	return nil
}
