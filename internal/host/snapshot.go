package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rmsexport/internal/jobconfig"
	"rmsexport/internal/volumes"
)

// Snapshot directory names.
const (
	jobsDir     = "jobs"
	tablesDir   = "tables"
	surfacesDir = "surfaces"
	gridsDir    = "grids"
)

// Snapshot is a project dumped to a directory tree.
type Snapshot struct {
	root     string
	readonly bool
}

// OpenSnapshot opens the snapshot rooted at root.
func OpenSnapshot(root string, readonly bool) (*Snapshot, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, root)
		}

		return nil, fmt.Errorf("open snapshot %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrProjectNotFound, root)
	}

	return &Snapshot{root: root, readonly: readonly}, nil
}

// CreateSnapshot creates an empty, writable snapshot at root.
func CreateSnapshot(root string) (*Snapshot, error) {
	for _, dir := range []string{jobsDir, tablesDir, surfacesDir, gridsDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot %s: %w", root, err)
		}
	}

	return &Snapshot{root: root}, nil
}

// Root returns the snapshot directory.
func (s *Snapshot) Root() string { return s.root }

// ReadOnly implements Project.
func (s *Snapshot) ReadOnly() bool { return s.readonly }

// SnapshotProvider opens snapshots by directory.
type SnapshotProvider struct{}

// Project implements ProjectProvider; id is the snapshot directory.
func (SnapshotProvider) Project(ctx context.Context, id string, readonly bool) (Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return OpenSnapshot(id, readonly)
}

// objectPath joins parts below the snapshot root, refusing names that
// would leave it.
func (s *Snapshot) objectPath(parts ...string) (string, error) {
	for _, p := range parts {
		if p == "" {
			return "", fmt.Errorf("%w: empty path element", ErrInvalidName)
		}
	}

	rel := filepath.Join(parts...)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, rel)
	}

	return filepath.Join(s.root, rel), nil
}

func splitFolder(folder string) []string {
	return strings.FieldsFunc(folder, func(r rune) bool { return r == '/' })
}

func (s *Snapshot) jobPath(owner []string, jobType, jobName string) (string, error) {
	parts := append([]string{jobsDir}, owner...)
	parts = append(parts, jobType, jobName+".yml")

	return s.objectPath(parts...)
}

func (s *Snapshot) surfacePath(name, folder, stype string) (string, error) {
	parts := append([]string{surfacesDir, stype}, splitFolder(folder)...)
	parts = append(parts, name+".yml")

	return s.objectPath(parts...)
}

// readYAML decodes path into out. A missing file gives ok == false.
func readYAML(ctx context.Context, path string, out any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}

	return true, nil
}

func (s *Snapshot) writeYAML(path string, v any) error {
	if s.readonly {
		return ErrReadOnly
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	return s.writeFile(path, data)
}

func (s *Snapshot) writeFile(path string, data []byte) error {
	if s.readonly {
		return ErrReadOnly
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// JobArguments implements JobSource.
func (s *Snapshot) JobArguments(ctx context.Context, owner []string, jobType, jobName string) (*jobconfig.Arguments, error) {
	path, err := s.jobPath(owner, jobType, jobName)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args, err := jobconfig.LoadArguments(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s job %q owned by %v", ErrJobNotFound, jobType, jobName, owner)
		}

		return nil, err
	}

	return args, nil
}

// VolumetricTable implements volumes.TableSource.
func (s *Snapshot) VolumetricTable(ctx context.Context, name string) (*volumes.Table, bool, error) {
	path, err := s.objectPath(tablesDir, name+".csv")
	if err != nil {
		return nil, false, err
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("open table %s: %w", path, err)
	}
	defer f.Close()

	t, err := volumes.ReadCSV(f, name)
	if err != nil {
		return nil, false, err
	}

	return t, true, nil
}

// Surface implements Project.
func (s *Snapshot) Surface(ctx context.Context, name, folder, stype string) (*Surface, bool, error) {
	path, err := s.surfacePath(name, folder, stype)
	if err != nil {
		return nil, false, err
	}

	var surf Surface

	ok, err := readYAML(ctx, path, &surf)
	if !ok || err != nil {
		return nil, false, err
	}

	surf.Name, surf.Folder, surf.Location = name, folder, stype

	return &surf, true, nil
}

// GridProperty implements Project.
func (s *Snapshot) GridProperty(ctx context.Context, grid, name string) (*GridProperty, bool, error) {
	path, err := s.objectPath(gridsDir, grid, name+".yml")
	if err != nil {
		return nil, false, err
	}

	var gp GridProperty

	ok, err := readYAML(ctx, path, &gp)
	if !ok || err != nil {
		return nil, false, err
	}

	gp.Grid, gp.Name = grid, name

	return &gp, true, nil
}

// PutJob stores job arguments in the snapshot.
func (s *Snapshot) PutJob(owner []string, jobType, jobName string, args *jobconfig.Arguments) error {
	path, err := s.jobPath(owner, jobType, jobName)
	if err != nil {
		return err
	}

	data, err := args.Marshal()
	if err != nil {
		return fmt.Errorf("marshal job %q: %w", jobName, err)
	}

	return s.writeFile(path, data)
}

// PutTable stores a volumetric table as CSV.
func (s *Snapshot) PutTable(t *volumes.Table) error {
	if s.readonly {
		return ErrReadOnly
	}

	path, err := s.objectPath(tablesDir, t.Name+".csv")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table %s: %w", path, err)
	}

	if err := volumes.WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// PutSurface stores a surface under its folder and location.
func (s *Snapshot) PutSurface(surf *Surface) error {
	path, err := s.surfacePath(surf.Name, surf.Folder, surf.Location)
	if err != nil {
		return err
	}

	return s.writeYAML(path, surf)
}

// PutGridProperty stores a grid property under its grid.
func (s *Snapshot) PutGridProperty(gp *GridProperty) error {
	path, err := s.objectPath(gridsDir, gp.Grid, gp.Name+".yml")
	if err != nil {
		return err
	}

	return s.writeYAML(path, gp)
}
