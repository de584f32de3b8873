package io

import (
	"errors"
	"io"
	"os"

	fperrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floorplan"
)

// ReadTree decodes a pre-order tree from r.
//
// Empty input yields a nil tree and no error. Malformed lines are reported
// as INVALID_FORMAT and premature end of input as TRUNCATED_INPUT; the
// underlying *floorplan.ParseError is kept in the chain for errors.As.
// ReadTree does not close r.
func ReadTree(r io.Reader) (floorplan.Node, error) {
	n, err := floorplan.Parse(r)
	if err != nil {
		return nil, classify(err)
	}
	return n, nil
}

// ImportTree reads a pre-order tree file at path.
//
// If the file cannot be opened the error has code FILE_OPEN and wraps the
// underlying os error.
func ImportTree(path string) (floorplan.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fperrors.Wrap(fperrors.ErrCodeFileOpen, err, "open input %s", path)
	}
	defer f.Close()
	return ReadTree(f)
}

// ImportPostOrder reads a post-order tree file at path, as written by
// [ExportTree].
func ImportPostOrder(path string) (floorplan.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fperrors.Wrap(fperrors.ErrCodeFileOpen, err, "open input %s", path)
	}
	defer f.Close()
	n, err := floorplan.ParsePostOrder(f)
	if err != nil {
		return nil, classify(err)
	}
	return n, nil
}

// classify maps floorplan errors onto coded errors.
func classify(err error) error {
	switch {
	case errors.Is(err, floorplan.ErrTruncated):
		return fperrors.Wrap(fperrors.ErrCodeTruncatedInput, err, "incomplete tree")
	case errors.Is(err, floorplan.ErrFormat):
		return fperrors.Wrap(fperrors.ErrCodeInvalidFormat, err, "malformed tree")
	case errors.Is(err, floorplan.ErrMissingChild):
		return fperrors.Wrap(fperrors.ErrCodeMalformedTree, err, "malformed tree")
	case errors.Is(err, floorplan.ErrNotMeasured):
		return fperrors.Wrap(fperrors.ErrCodeInternal, err, "coordinates before dimensions")
	}
	return fperrors.Wrap(fperrors.ErrCodeInvalidInput, err, "read tree")
}
