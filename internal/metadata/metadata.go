package metadata

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Version of the sidecar layout.
const Version = "1"

// Content tags.
const (
	ContentProperty    = "property"
	ContentVolumetrics = "volumetrics"
)

// Classes of exported objects.
const (
	ClassSurface      = "surface"
	ClassGridProperty = "cpgrid_property"
	ClassTable        = "table"
)

// Request describes one object to export.
type Request struct {
	Name    string
	TagName string
	Content string
	Class   string
	Format  string
	Layout  string
	// Parent is the grid model for grid properties and tables.
	Parent string
	// Subfolder groups objects below their class directory, such as the
	// zone of a map.
	Subfolder string
	// RelativePath is the file path below the output directory.
	RelativePath string
	// Spec holds class specific details.
	Spec any
}

// Metadata is the sidecar document of an exported file.
type Metadata struct {
	Version    string         `yaml:"version"`
	Class      string         `yaml:"class"`
	Source     string         `yaml:"source"`
	Tracklog   []Event        `yaml:"tracklog"`
	FMU        FMU            `yaml:"fmu"`
	File       File           `yaml:"file"`
	Data       Data           `yaml:"data"`
	Masterdata map[string]any `yaml:"masterdata,omitempty"`
	Access     map[string]any `yaml:"access,omitempty"`
}

// Event is a tracklog entry.
type Event struct {
	Datetime time.Time `yaml:"datetime"`
	Event    string    `yaml:"event"`
}

// FMU identifies the model and the export run.
type FMU struct {
	Model Model     `yaml:"model"`
	RunID uuid.UUID `yaml:"run_id"`
}

// File describes the exported file.
type File struct {
	ID           uuid.UUID `yaml:"id"`
	RelativePath string    `yaml:"relative_path"`
	ChecksumMD5  string    `yaml:"checksum_md5,omitempty"`
}

// Data describes the exported object.
type Data struct {
	Name    string `yaml:"name"`
	TagName string `yaml:"tagname,omitempty"`
	Content string `yaml:"content"`
	Format  string `yaml:"format"`
	Layout  string `yaml:"layout,omitempty"`
	Parent  string `yaml:"parent,omitempty"`
	Spec    any    `yaml:"spec,omitempty"`
}

// New builds the metadata for req. The file id is derived from the model
// name and relative path, so re-exporting the same object keeps its id.
func New(cfg *GlobalConfig, req Request, runID uuid.UUID, now time.Time) *Metadata {
	var model Model
	if cfg != nil {
		model = cfg.Model
	}

	md := &Metadata{
		Version:  Version,
		Class:    req.Class,
		Source:   "fmu",
		Tracklog: []Event{{Datetime: now.UTC(), Event: "created"}},
		FMU:      FMU{Model: model, RunID: runID},
		File: File{
			ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte(model.Name+"/"+req.RelativePath)),
			RelativePath: req.RelativePath,
		},
		Data: Data{
			Name:    req.Name,
			TagName: req.TagName,
			Content: req.Content,
			Format:  req.Format,
			Layout:  req.Layout,
			Parent:  req.Parent,
			Spec:    req.Spec,
		},
	}

	if cfg != nil {
		md.Masterdata = cfg.Masterdata
		md.Access = cfg.Access
	}

	return md
}

// SetChecksum records the MD5 checksum of the exported bytes.
func (m *Metadata) SetChecksum(data []byte) {
	sum := md5.Sum(data)
	m.File.ChecksumMD5 = hex.EncodeToString(sum[:])
}

// SidecarPath returns the metadata path for an exported file:
// dir/name.ext becomes dir/.name.ext.yml.
func SidecarPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".yml")
}

// WriteSidecar writes md next to the exported file at path and returns
// the sidecar path.
func WriteSidecar(path string, md *Metadata) (string, error) {
	data, err := yaml.Marshal(md)
	if err != nil {
		return "", fmt.Errorf("marshal metadata for %s: %w", path, err)
	}

	sidecar := SidecarPath(path)
	if err := os.WriteFile(sidecar, data, 0o644); err != nil {
		return "", fmt.Errorf("write metadata %s: %w", sidecar, err)
	}

	return sidecar, nil
}

// ReadSidecar reads the metadata of the exported file at path.
func ReadSidecar(path string) (*Metadata, error) {
	data, err := os.ReadFile(SidecarPath(path))
	if err != nil {
		return nil, fmt.Errorf("read metadata for %s: %w", path, err)
	}

	var md Metadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("parse metadata for %s: %w", path, err)
	}

	return &md, nil
}
