package adapters

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"osgi-mock/internal/ports"
	"osgi-mock/internal/types"
)

type classpathEntry struct {
	location string
	fsys     fs.FS
	closer   io.Closer
}

// ClassLoader resolves resources against an ordered classpath of
// directories, archives or arbitrary fs.FS values. A parent loader, when
// set, is asked first.
type ClassLoader struct {
	parent  types.ResourceLoader
	entries []classpathEntry
}

func NewClassLoader(parent types.ResourceLoader) *ClassLoader {
	return &ClassLoader{parent: parent}
}

// AddFS appends an in-memory or otherwise prepared classpath entry.
func (l *ClassLoader) AddFS(location string, fsys fs.FS) {
	l.entries = append(l.entries, classpathEntry{location: location, fsys: fsys})
}

// AddEntry appends a directory or a jar/zip archive from disk.
func (l *ClassLoader) AddEntry(location string) error {
	info, err := os.Stat(location)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("classpath entry not found: " + location).
			WithCause(err)
	}
	if info.IsDir() {
		l.AddFS(location, os.DirFS(location))
		log.Debug().Str("entry", location).Msg("classpath directory added")
		return nil
	}
	archive, err := zip.OpenReader(location)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("classpath entry is neither a directory nor an archive: " + location).
			WithCause(err)
	}
	l.entries = append(l.entries, classpathEntry{location: location, fsys: archive, closer: archive})
	log.Debug().Str("entry", location).Int("files", len(archive.File)).Msg("classpath archive added")
	return nil
}

// Locations returns the classpath entries in search order.
func (l *ClassLoader) Locations() []string {
	out := make([]string, 0, len(l.entries))
	for _, entry := range l.entries {
		out = append(out, entry.location)
	}
	return out
}

func (l *ClassLoader) LoadClass(name string) types.Class {
	return types.Class{Name: name, Loader: l}
}

func (l *ClassLoader) OpenResource(name string) (io.ReadCloser, error) {
	name = strings.TrimLeft(name, "/")
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if l.parent != nil {
		stream, err := l.parent.OpenResource(name)
		if err == nil {
			return stream, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	var firstErr error
	for _, entry := range l.entries {
		stream, err := openFile(entry.fsys, name)
		if err == nil {
			return stream, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// ListResources returns the names of regular files directly inside dir,
// across every entry, sorted and without duplicates. Parent loaders are
// not listed.
func (l *ClassLoader) ListResources(dir string) ([]string, error) {
	dir = strings.Trim(dir, "/")
	seen := map[string]struct{}{}
	for _, entry := range l.entries {
		items, err := fs.ReadDir(entry.fsys, dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to list " + dir + " in " + entry.location).
				WithCause(err)
		}
		for _, item := range items {
			if item.IsDir() {
				continue
			}
			seen[path.Join(dir, item.Name())] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close releases archive handles. The loader must not be used afterwards.
func (l *ClassLoader) Close() error {
	var errs []error
	for _, entry := range l.entries {
		if entry.closer == nil {
			continue
		}
		if err := entry.closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.entries = nil
	return errors.Join(errs...)
}

func openFile(fsys fs.FS, name string) (io.ReadCloser, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}

var _ ports.ClassLoaderPort = (*ClassLoader)(nil)
