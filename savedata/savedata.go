package savedata

import (
	"io"
	"os"

	"manetplot/common"

	"github.com/pkg/errors"
)

func SaveJSON(path string, data interface{}) error {
	r, err := common.MarshalResult(data)
	if err != nil {
		return errors.Wrap(err, "marshal json")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}

func LoadJSON(path string, data interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return common.UnMarshalResult(f, data)
}
