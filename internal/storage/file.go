package storage

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the on-disk shape of the dictionary. Older files may carry a
// total_stored_items counter; it is ignored on read and never written.
type document struct {
	Data map[string]*types.Entry `json:"data"`
}

// Load reads the dictionary stored at path. A missing file returns
// ErrNoSuchFile so callers can start from New. An empty file is an empty
// dictionary. Any other content must decode into a valid document; a
// *types.ParseError is returned otherwise and no partial dictionary is
// handed back.
func Load(path string) (st *Storage, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(types.ErrNoSuchFile, path)
		}
		return nil, errors.Wrap(err, "open storage file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, errors.Wrap(cerr, "close storage file"))
			st = nil
		}
	}()

	st, err = Decode(f)
	if err != nil {
		var pe *types.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}

	zap.L().Debug("loaded storage",
		zap.String("path", path),
		zap.Int("abbreviations", len(st.data)),
		zap.Int("items", st.Len()),
	)
	return st, nil
}

// Decode reads a dictionary document from r.
func Decode(r io.Reader) (*Storage, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read storage")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return New(), nil
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &types.ParseError{Msg: err.Error(), Err: err}
	}
	return fromDocument(doc)
}

// fromDocument checks the dictionary invariants on a decoded document.
func fromDocument(doc document) (*Storage, error) {
	st := New()
	for key, entry := range doc.Data {
		if entry == nil {
			return nil, &types.ParseError{Msg: fmt.Sprintf("abbreviation %q has no entry", key)}
		}
		if key == "" || key != types.NormalizeAbbreviation(key) {
			return nil, &types.ParseError{Msg: fmt.Sprintf("abbreviation %q is not in canonical form", key)}
		}
		if entry.Acronym != key {
			return nil, &types.ParseError{Msg: fmt.Sprintf("abbreviation %q holds entry for %q", key, entry.Acronym)}
		}
		if entry.IsEmpty() {
			return nil, &types.ParseError{Msg: fmt.Sprintf("abbreviation %q has no items", key)}
		}
		seen := make(map[string]bool, len(entry.Items))
		for i, it := range entry.Items {
			if strings.TrimSpace(it.Name) == "" {
				return nil, &types.ParseError{Msg: fmt.Sprintf("abbreviation %q has an item without a name", key)}
			}
			if seen[it.Name] {
				return nil, &types.ParseError{Msg: fmt.Sprintf("abbreviation %q stores %q twice", key, it.Name)}
			}
			seen[it.Name] = true
			if it.Description != nil && strings.TrimSpace(*it.Description) == "" {
				entry.Items[i].Description = nil
			}
		}
		st.data[key] = entry
	}
	return st, nil
}

// Encode writes the dictionary to w as JSON indented by two spaces.
func (s *Storage) Encode(w io.Writer) error {
	data, err := json.Marshal(document{Data: s.data})
	if err != nil {
		return errors.Wrap(err, "encode storage")
	}
	var buf bytes.Buffer
	// jsoniter's MarshalIndent misindents nested map values.
	if err := stdjson.Indent(&buf, data, "", "  "); err != nil {
		return errors.Wrap(err, "indent storage")
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(err, "write storage")
	}
	return nil
}

// Write replaces the file at path with the dictionary. The document is
// written to a temporary file in the same directory, synced and renamed
// over path, so a crash never leaves a truncated file behind. A symlinked
// path updates the file it points to, and an existing file keeps its
// permissions. The directory must exist.
func (s *Storage) Write(path string) error {
	target, perm, err := writeTarget(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".storage-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()

	if err := s.Encode(tmp); err != nil {
		return cleanupTemp(tmp, tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return cleanupTemp(tmp, tmpName, errors.Wrap(err, "chmod temp file"))
	}
	if err := tmp.Sync(); err != nil {
		return cleanupTemp(tmp, tmpName, errors.Wrap(err, "sync temp file"))
	}
	if err := tmp.Close(); err != nil {
		return multierr.Append(errors.Wrap(err, "close temp file"), os.Remove(tmpName))
	}
	if err := os.Rename(tmpName, target); err != nil {
		return multierr.Append(errors.Wrap(err, "rename temp file"), os.Remove(tmpName))
	}

	zap.L().Debug("wrote storage",
		zap.String("path", target),
		zap.Int("abbreviations", len(s.data)),
		zap.Int("items", s.Len()),
	)
	return nil
}

// writeTarget resolves symlinks in path and returns the file to replace
// together with the permissions the new file gets. A path that does not
// exist yet is written as is with mode 0644.
func writeTarget(path string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, 0o644, nil
	}
	if err != nil {
		return "", 0, errors.Wrap(err, "resolve storage file")
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", 0, errors.Wrap(err, "stat storage file")
	}
	return target, info.Mode().Perm(), nil
}

// cleanupTemp closes and removes an abandoned temp file, keeping cause as
// the primary error.
func cleanupTemp(f *os.File, name string, cause error) error {
	return multierr.Combine(cause, f.Close(), os.Remove(name))
}
