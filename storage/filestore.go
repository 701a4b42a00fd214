// SPDX-License-Identifier: MIT
// Package: planegraph/storage
//
// filestore.go - artifacts on disk under <dir>/matrix and <dir>/nodes.

package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/planegraph/core"
)

const (
	// MatrixDir and NodesDir are the artifact subdirectories.
	MatrixDir = "matrix"
	NodesDir  = "nodes"

	methodSave   = "Save"
	methodLoad   = "Load"
	methodExists = "Exists"
)

// FileStore reads and writes named graphs below Dir.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{Dir: dir} }

// Paths returns the matrix and node file paths for name.
func (s *FileStore) Paths(name string) (matrixPath, nodesPath string, err error) {
	if err = checkName(name); err != nil {
		return "", "", err
	}

	return filepath.Join(s.Dir, MatrixDir, name), filepath.Join(s.Dir, NodesDir, name), nil
}

// Save encodes g fully in memory, then writes both artifacts. Existing
// artifacts with the same name are replaced.
func (s *FileStore) Save(g *core.Graph, name string) error {
	mp, np, err := s.Paths(name)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSave, err)
	}

	var mbuf, nbuf bytes.Buffer
	if err = Encode(g, &mbuf, &nbuf); err != nil {
		return fmt.Errorf("%s: %q: %w", methodSave, name, err)
	}

	for _, f := range []struct {
		path string
		data []byte
	}{{mp, mbuf.Bytes()}, {np, nbuf.Bytes()}} {
		if err = os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return fmt.Errorf("%s: %w", methodSave, err)
		}
		if err = os.WriteFile(f.path, f.data, 0o644); err != nil {
			return fmt.Errorf("%s: %w", methodSave, err)
		}
	}
	klog.V(2).Infof("%s: graph %s as %q (%d vertices, %d edges)", methodSave, g.ID(), name, g.VertexCount(), g.EdgeCount())

	return nil
}

// Load reads the artifacts called name and rebuilds the graph.
func (s *FileStore) Load(name string, opts ...core.GraphOption) (*core.Graph, error) {
	mp, np, err := s.Paths(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}

	mf, err := open(mp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	defer mf.Close()
	nf, err := open(np)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoad, err)
	}
	defer nf.Close()

	g, err := Decode(mf, nf, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %q: %w", methodLoad, name, err)
	}
	klog.V(2).Infof("%s: %q as graph %s (%d vertices, %d edges)", methodLoad, name, g.ID(), g.VertexCount(), g.EdgeCount())

	return g, nil
}

// Exists reports whether both artifacts called name are present.
func (s *FileStore) Exists(name string) (bool, error) {
	mp, np, err := s.Paths(name)
	if err != nil {
		return false, fmt.Errorf("%s: %w", methodExists, err)
	}
	for _, p := range []string{mp, np} {
		if _, err = os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return false, nil
			}

			return false, fmt.Errorf("%s: %w", methodExists, err)
		}
	}

	return true, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingArtifact)
	}

	return f, err
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%q: %w", name, ErrBadName)
	}

	return nil
}
