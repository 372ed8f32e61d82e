package host

import (
	"context"
	"fmt"
	"strings"

	"rmsexport/internal/jobconfig"
	"rmsexport/internal/volumes"
)

func jobKey(owner []string, jobType, jobName string) string {
	return strings.Join(owner, "/") + "|" + jobType + "|" + jobName
}

// Memory is an in-memory host holding jobs and projects.
type Memory struct {
	jobs     map[string]*jobconfig.Arguments
	projects map[string]*MemoryProject
}

// NewMemory creates an empty in-memory host.
func NewMemory() *Memory {
	return &Memory{
		jobs:     make(map[string]*jobconfig.Arguments),
		projects: make(map[string]*MemoryProject),
	}
}

// AddJob stores job arguments.
func (m *Memory) AddJob(owner []string, jobType, jobName string, args *jobconfig.Arguments) {
	m.jobs[jobKey(owner, jobType, jobName)] = args
}

// AddProject stores a project under id.
func (m *Memory) AddProject(id string, p *MemoryProject) {
	m.projects[id] = p
}

// JobArguments implements JobSource.
func (m *Memory) JobArguments(ctx context.Context, owner []string, jobType, jobName string) (*jobconfig.Arguments, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args, ok := m.jobs[jobKey(owner, jobType, jobName)]
	if !ok {
		return nil, fmt.Errorf("%w: %s job %q owned by %v", ErrJobNotFound, jobType, jobName, owner)
	}

	return args, nil
}

// Project implements ProjectProvider.
func (m *Memory) Project(ctx context.Context, id string, readonly bool) (Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := m.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, id)
	}

	return &memoryView{MemoryProject: p, readonly: readonly}, nil
}

// MemoryProject holds project objects in maps.
type MemoryProject struct {
	tables     map[string]*volumes.Table
	surfaces   map[string]*Surface
	properties map[string]*GridProperty
}

// NewMemoryProject creates an empty project.
func NewMemoryProject() *MemoryProject {
	return &MemoryProject{
		tables:     make(map[string]*volumes.Table),
		surfaces:   make(map[string]*Surface),
		properties: make(map[string]*GridProperty),
	}
}

func surfaceKey(name, folder, stype string) string {
	return stype + "|" + folder + "|" + name
}

// AddTable stores a volumetric table under its name.
func (p *MemoryProject) AddTable(t *volumes.Table) {
	p.tables[t.Name] = t
}

// AddSurface stores a surface under its name, folder and location.
func (p *MemoryProject) AddSurface(s *Surface) {
	p.surfaces[surfaceKey(s.Name, s.Folder, s.Location)] = s
}

// AddGridProperty stores a grid property under its grid and name.
func (p *MemoryProject) AddGridProperty(gp *GridProperty) {
	p.properties[gp.Grid+"|"+gp.Name] = gp
}

// VolumetricTable implements volumes.TableSource.
func (p *MemoryProject) VolumetricTable(_ context.Context, name string) (*volumes.Table, bool, error) {
	t, ok := p.tables[name]
	return t, ok, nil
}

// Surface implements Project.
func (p *MemoryProject) Surface(_ context.Context, name, folder, stype string) (*Surface, bool, error) {
	s, ok := p.surfaces[surfaceKey(name, folder, stype)]
	return s, ok, nil
}

// GridProperty implements Project.
func (p *MemoryProject) GridProperty(_ context.Context, grid, name string) (*GridProperty, bool, error) {
	gp, ok := p.properties[grid+"|"+name]
	return gp, ok, nil
}

// ReadOnly implements Project. A bare MemoryProject is writable; projects
// handed out by Memory.Project report the mode they were opened with.
func (p *MemoryProject) ReadOnly() bool { return false }

type memoryView struct {
	*MemoryProject
	readonly bool
}

func (v *memoryView) ReadOnly() bool { return v.readonly }
