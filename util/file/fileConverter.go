package file

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"
)

var (
	ErrBadTarget         = errors.New("bad interface")
	ErrNotFound          = errors.New("file not exist")
	ErrUnsupportedFormat = errors.New("unsupported file type, use yaml or json")
)

// UnmarshalPaths decodes every existing file of paths into v, later files
// overriding earlier ones. It fails when none of them exist.
func UnmarshalPaths(v interface{}, paths []string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrBadTarget
	}

	notfound := true

	for _, p := range paths {
		if !fileExist(p) {
			continue
		}
		notfound = false
		if err := UnmarshalFile(v, p); err != nil {
			return err
		}
	}

	if notfound {
		return errors.Wrapf(ErrNotFound, "none of %v", paths)
	}

	return nil
}

// UnmarshalFile decodes a .yaml, .yml or .json file into v.
func UnmarshalFile(v interface{}, file string) error {
	unmarshal, err := decoderFor(file)
	if err != nil {
		return err
	}
	if !fileExist(file) {
		return errors.Wrap(ErrNotFound, file)
	}

	buf, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "read %s", file)
	}

	if err = unmarshal(buf, v); err != nil {
		return errors.Wrapf(err, "unmarshal %s", file)
	}
	return nil
}

func decoderFor(file string) (func([]byte, interface{}) error, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".json":
		return ffjson.Unmarshal, nil
	}
	return nil, errors.Wrap(ErrUnsupportedFormat, file)
}

func fileExist(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
