package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type input struct {
	name        string
	data        []byte
	compression string
}

func (cli *cli) readInput(fname string) (*input, error) {
	in := &input{name: "<stdin>"}
	r := cli.inStream
	if fname != "" {
		f, err := os.Open(fname)
		if err != nil {
			return nil, &inputError{name: fname, err: err}
		}
		defer f.Close()
		in.name, r = fname, f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &inputError{name: in.name, err: err}
	}
	if in.data, in.compression, err = decompress(data); err != nil {
		return nil, &inputError{name: in.name, err: err}
	}
	return in, nil
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// decompress inflates gzip and zstd data, recognized by their magic bytes,
// and returns anything else as is.
func decompress(data []byte) ([]byte, string, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, "", err
		}
		defer r.Close()
		data, err = io.ReadAll(r)
		return data, "gzip", err
	case bytes.HasPrefix(data, zstdMagic):
		d, err := zstd.NewReader(nil)
		if err != nil {
			return nil, "", err
		}
		defer d.Close()
		data, err = d.DecodeAll(data, nil)
		return data, "zstd", err
	default:
		return data, "", nil
	}
}

// fileExt returns the lower-cased extension of fname, looking through a
// compression suffix (data.json.gz has the extension .json).
func fileExt(fname string) string {
	ext := strings.ToLower(filepath.Ext(fname))
	switch ext {
	case ".gz", ".zst":
		return fileExt(strings.TrimSuffix(fname, filepath.Ext(fname)))
	}
	return ext
}
