package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"rmsexport/internal/host"
	"rmsexport/internal/metadata"
	"rmsexport/internal/volumes"
)

// Sink writes exported objects.
type Sink interface {
	ExportSurface(ctx context.Context, surf *host.Surface, req metadata.Request) (string, error)
	ExportGridProperty(ctx context.Context, prop *host.GridProperty, req metadata.Request) (string, error)
	ExportTable(ctx context.Context, table *volumes.Table, req metadata.Request) (string, error)
}

// Output subdirectories of FileSink.
const (
	MapsDir   = "maps"
	GridsDir  = "grids"
	TablesDir = "tables"
)

// FileSink writes objects below Dir with a metadata sidecar for each file.
type FileSink struct {
	Dir         string
	TableFormat volumes.Format
	Global      *metadata.GlobalConfig
	RunID       uuid.UUID
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewFileSink creates a sink writing to dir with a fresh run id.
func NewFileSink(dir string, format volumes.Format, global *metadata.GlobalConfig) *FileSink {
	return &FileSink{
		Dir:         dir,
		TableFormat: format,
		Global:      global,
		RunID:       uuid.New(),
		Now:         time.Now,
	}
}

var partReplacer = strings.NewReplacer(" ", "_", "/", "_", `\`, "_")

// cleanPart replaces spaces and path separators in one path element.
func cleanPart(p string) string {
	return partReplacer.Replace(p)
}

// FileName builds the standard file name: parts joined with "--",
// lower-cased, spaces and path separators replaced with underscores.
func FileName(ext string, parts ...string) string {
	var kept []string

	for _, p := range parts {
		if p == "" {
			continue
		}

		kept = append(kept, strings.ToLower(cleanPart(p)))
	}

	return strings.Join(kept, "--") + "." + ext
}

func (s *FileSink) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

// ExportSurface implements Sink. Surfaces go to maps/<subfolder>/, where
// the subfolder keeps its case and defaults to the last element of the
// surface folder.
func (s *FileSink) ExportSurface(ctx context.Context, surf *host.Surface, req metadata.Request) (string, error) {
	sub := req.Subfolder
	if sub == "" {
		sub = path.Base(surf.Folder)
	}

	req.Class = metadata.ClassSurface
	req.Format = "yaml"
	req.Layout = "regular"
	req.RelativePath = MapsDir + "/" + cleanPart(sub) + "/" + FileName("yml", req.Name, req.TagName)
	req.Spec = map[string]any{"ncol": surf.NCol, "nrow": surf.NRow, "xinc": surf.XInc, "yinc": surf.YInc, "rotation": surf.Rotation}

	return s.writeYAMLObject(ctx, surf, req)
}

// ExportGridProperty implements Sink. Properties go to grids/.
func (s *FileSink) ExportGridProperty(ctx context.Context, prop *host.GridProperty, req metadata.Request) (string, error) {
	req.Class = metadata.ClassGridProperty
	req.Format = "yaml"
	req.Layout = "cornerpoint"
	req.RelativePath = path.Join(GridsDir, FileName("yml", req.Parent, req.Name, req.TagName))
	req.Spec = map[string]any{"ncol": prop.NCol, "nrow": prop.NRow, "nlay": prop.NLay, "discrete": prop.Discrete}

	return s.writeYAMLObject(ctx, prop, req)
}

// ExportTable implements Sink. Tables go to tables/ as CSV or XLSX.
func (s *FileSink) ExportTable(ctx context.Context, table *volumes.Table, req metadata.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	format := s.TableFormat
	if format == "" {
		format = volumes.FormatCSV
	}

	req.Class = metadata.ClassTable
	req.Format = string(format)
	req.Layout = "table"
	req.RelativePath = path.Join(TablesDir, FileName(string(format), req.Parent, req.Name, req.TagName))

	out, err := s.prepare(req.RelativePath)
	if err != nil {
		return "", err
	}

	switch format {
	case volumes.FormatXLSX:
		if err := volumes.WriteXLSX(out, table); err != nil {
			return "", err
		}
	default:
		var buf bytes.Buffer
		if err := volumes.WriteCSV(&buf, table); err != nil {
			return "", err
		}

		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", out, err)
		}
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("read back %s: %w", out, err)
	}

	return s.finish(out, data, req)
}

func (s *FileSink) writeYAMLObject(ctx context.Context, obj any, req metadata.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := s.prepare(req.RelativePath)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", req.Name, err)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}

	return s.finish(out, data, req)
}

// prepare resolves rel below Dir and creates its directory. Every element
// of rel must be a plain name.
func (s *FileSink) prepare(rel string) (string, error) {
	for _, elem := range strings.Split(rel, "/") {
		if elem == "" || strings.HasPrefix(elem, ".") {
			return "", fmt.Errorf("%w: %q", host.ErrInvalidName, rel)
		}
	}

	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", host.ErrInvalidName, rel)
	}

	full := filepath.Join(s.Dir, local)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(full), err)
	}

	return full, nil
}

func (s *FileSink) finish(out string, data []byte, req metadata.Request) (string, error) {
	md := metadata.New(s.Global, req, s.RunID, s.now())
	md.SetChecksum(data)

	if _, err := metadata.WriteSidecar(out, md); err != nil {
		return "", err
	}

	return out, nil
}
