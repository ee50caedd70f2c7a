package docmend

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/docmend/go-docmend/pkg/docmend/dom"
)

// Well-known part names within an unpacked package, relative to the root.
const (
	ContentTypesPart       = "[Content_Types].xml"
	DocumentPart           = "word/document.xml"
	CommentsPart           = "word/comments.xml"
	CommentsExtendedPart   = "word/commentsExtended.xml"
	CommentsIDsPart        = "word/commentsIds.xml"
	CommentsExtensiblePart = "word/commentsExtensible.xml"
)

// PartStatus describes the outcome of loading one part.
type PartStatus int

const (
	// PartAbsent means the part does not exist in the package. Optional
	// parts are expected to be absent; it is never an error.
	PartAbsent PartStatus = iota
	// PartLoaded means the part was read and parsed successfully.
	PartLoaded
	// PartUnparseable means the part exists but could not be read or parsed.
	// Phases degrade to a zero-change result for such a part.
	PartUnparseable
)

// String returns the status name for logging.
func (s PartStatus) String() string {
	switch s {
	case PartAbsent:
		return "absent"
	case PartLoaded:
		return "loaded"
	case PartUnparseable:
		return "unparseable"
	default:
		return "unknown"
	}
}

// Part is one XML file of the package together with its load outcome.
// Doc is only set when Status is PartLoaded; Err records the read or parse
// failure when Status is PartUnparseable.
type Part struct {
	Name   string
	Status PartStatus
	Doc    *dom.Document
	Err    error
}

// Package binds an unpacked document package directory. Parts are loaded
// lazily and cached, so the repair phases and the validator share one parsed
// tree per part within a run.
type Package struct {
	fs    afero.Fs
	root  string
	log   *log.Logger
	parts map[string]*Part
}

// Option configures a Package.
type Option func(*Package)

// WithLogger sets the logger used for part-level diagnostics. The default
// logger discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(p *Package) {
		p.log = logger
	}
}

// Open binds the unpacked package directory at root on the host filesystem.
func Open(root string, opts ...Option) (*Package, error) {
	return OpenFs(afero.NewOsFs(), root, opts...)
}

// OpenFs binds a package directory on an arbitrary filesystem. Tests use it
// with an in-memory filesystem.
func OpenFs(fsys afero.Fs, root string, opts ...Option) (*Package, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, NewPackageError(root, err)
	}
	if !info.IsDir() {
		return nil, NewPackageError(root, fmt.Errorf("not a directory"))
	}

	p := &Package{
		fs:    fsys,
		root:  root,
		log:   log.New(io.Discard),
		parts: make(map[string]*Part),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Root returns the package root directory.
func (p *Package) Root() string {
	return p.root
}

// Load returns the named part, reading and parsing it on first use. A part
// that does not exist is reported as absent; a part that cannot be read or
// parsed is reported as unparseable, never as a run-level failure.
func (p *Package) Load(name string) *Part {
	if part, ok := p.parts[name]; ok {
		return part
	}
	part := &Part{Name: name}
	p.parts[name] = part

	data, err := afero.ReadFile(p.fs, p.partPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			part.Status = PartAbsent
			return part
		}
		part.Status = PartUnparseable
		part.Err = NewPartError("read", name, err)
		p.log.Warn("failed to read part", "part", name, "err", err)
		return part
	}

	doc, err := dom.ParseBytes(data)
	if err != nil {
		part.Status = PartUnparseable
		part.Err = NewPartError("parse", name, err)
		p.log.Warn("failed to parse part", "part", name, "err", err)
		return part
	}

	part.Status = PartLoaded
	part.Doc = doc
	return part
}

// Write serializes a loaded part back to its file, replacing the whole file.
// Write failures are fatal for the invocation: a repair that counted changes
// it could not persist must not look successful.
func (p *Package) Write(part *Part) error {
	if part.Status != PartLoaded || part.Doc == nil {
		return NewPartError("write", part.Name, fmt.Errorf("part is not loaded"))
	}
	if err := afero.WriteFile(p.fs, p.partPath(part.Name), part.Doc.Bytes(), 0o644); err != nil {
		return NewPartError("write", part.Name, err)
	}
	p.log.Debug("wrote part", "part", part.Name)
	return nil
}

// RelsParts discovers every relationship manifest (*.rels) under the package
// root, returned as sorted part names so processing order is reproducible.
func (p *Package) RelsParts() ([]string, error) {
	var names []string
	err := afero.Walk(p.fs, p.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".rels") {
			return nil
		}
		rel, err := filepath.Rel(p.root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, NewPackageError(p.root, fmt.Errorf("failed to discover relationship parts: %w", err))
	}
	sort.Strings(names)
	return names, nil
}

// partPath maps a slash-separated part name to its location on the filesystem.
func (p *Package) partPath(name string) string {
	return filepath.Join(p.root, filepath.FromSlash(name))
}
