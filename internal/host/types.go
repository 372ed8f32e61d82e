package host

import (
	"context"
	"errors"

	"rmsexport/internal/jobconfig"
	"rmsexport/internal/volumes"
)

var (
	// ErrJobNotFound is returned when no job matches owner, type and name.
	ErrJobNotFound = errors.New("job not found")
	// ErrProjectNotFound is returned when a project cannot be opened.
	ErrProjectNotFound = errors.New("project not found")
	// ErrReadOnly is returned when writing to a project opened read-only.
	ErrReadOnly = errors.New("project is read-only")
	// ErrInvalidName is returned for object names that would escape the project.
	ErrInvalidName = errors.New("invalid object name")
)

// JobSource reads the stored arguments of a job.
type JobSource interface {
	JobArguments(ctx context.Context, owner []string, jobType, jobName string) (*jobconfig.Arguments, error)
}

// ProjectProvider opens a project handle.
type ProjectProvider interface {
	Project(ctx context.Context, id string, readonly bool) (Project, error)
}

// Project gives access to the objects the exporter reads.
type Project interface {
	volumes.TableSource

	// Surface returns the surface stored under folder in the stype container.
	Surface(ctx context.Context, name, folder, stype string) (*Surface, bool, error)
	// GridProperty returns the named property of a grid model.
	GridProperty(ctx context.Context, grid, name string) (*GridProperty, bool, error)
	// ReadOnly reports whether the project was opened read-only.
	ReadOnly() bool
}

// Surface is a regular 2D map.
type Surface struct {
	Name     string    `yaml:"name"`
	Folder   string    `yaml:"folder,omitempty"`
	Location string    `yaml:"location,omitempty"`
	NCol     int       `yaml:"ncol"`
	NRow     int       `yaml:"nrow"`
	XOri     float64   `yaml:"xori"`
	YOri     float64   `yaml:"yori"`
	XInc     float64   `yaml:"xinc"`
	YInc     float64   `yaml:"yinc"`
	Rotation float64   `yaml:"rotation"`
	Values   []float64 `yaml:"values"`
}

// GridProperty is a cell property of a 3D grid.
type GridProperty struct {
	Grid     string         `yaml:"grid"`
	Name     string         `yaml:"name"`
	NCol     int            `yaml:"ncol"`
	NRow     int            `yaml:"nrow"`
	NLay     int            `yaml:"nlay"`
	Discrete bool           `yaml:"discrete,omitempty"`
	Codes    map[int]string `yaml:"codes,omitempty"`
	Values   []float64      `yaml:"values"`
}
