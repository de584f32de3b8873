package io

import (
	"errors"
	"io"
	"os"

	fperrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floorplan"
)

// ExportTree writes the post-order echo of n to path.
func ExportTree(n floorplan.Node, path string) error {
	return exportFile(path, func(w io.Writer) error {
		return floorplan.WriteTree(w, n)
	})
}

// ExportDimensions runs the dimension pass over n, writing one line per node
// to path, and returns the size of the whole floorplan.
//
// A cut with a missing child still gets a bounding box (the missing side
// counts as zero) and the file is written completely; the returned error
// then has code MALFORMED_TREE.
func ExportDimensions(n floorplan.Node, path string) (floorplan.Size, error) {
	var (
		size    floorplan.Size
		passErr error
	)
	err := exportFile(path, func(w io.Writer) error {
		var err error
		size, err = floorplan.WriteDimensions(w, n)
		if errors.Is(err, floorplan.ErrMissingChild) {
			passErr = err
			return nil
		}
		return err
	})
	if err != nil {
		return size, err
	}
	if passErr != nil {
		return size, classify(passErr)
	}
	return size, nil
}

// ExportCoordinates writes the placement of every leaf of n to path, with
// the floorplan's lower-left corner at origin.
func ExportCoordinates(n floorplan.Node, origin floorplan.Point, path string) error {
	return exportFile(path, func(w io.Writer) error {
		err := floorplan.WriteCoordinates(w, n, origin)
		if errors.Is(err, floorplan.ErrNotMeasured) {
			return classify(err)
		}
		return err
	})
}

// exportFile creates path and hands it to write, closing it afterwards.
func exportFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fperrors.Wrap(fperrors.ErrCodeFileOpen, err, "create output %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fperrors.Wrap(fperrors.ErrCodeFileWrite, cerr, "close %s", path)
		}
	}()
	if err := write(f); err != nil {
		if fperrors.GetCode(err) != "" {
			return err
		}
		return fperrors.Wrap(fperrors.ErrCodeFileWrite, err, "write %s", path)
	}
	return nil
}
