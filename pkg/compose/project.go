package compose

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scope is the dependency scope of a project.
type Scope string

const (
	ScopeCompile Scope = "compile"
	ScopeTest    Scope = "test"
)

// PackageType is the type of an artifact a project packages.
type PackageType string

const (
	PackageJar PackageType = "jar"
	PackageWar PackageType = "war"
)

// Include is a path that is added to a package.
type Include struct {
	Path string
	As   string
}

// Package describes an artifact that the host build tool assembles.
type Package struct {
	Type     PackageType
	Libs     []string
	Includes []Include
}

// ClearLibs removes all libraries from the package.
func (p *Package) ClearLibs() {
	p.Libs = nil
}

// AddLibs appends libs that are not part of the package yet.
func (p *Package) AddLibs(libs ...string) {
	p.Libs = appendUniq(p.Libs, libs...)
}

// Include adds a path to the package. Includes that are already part of
// the package are skipped.
func (p *Package) Include(path, as string) {
	inc := Include{Path: path, As: as}
	if slices.Contains(p.Includes, inc) {
		return
	}

	p.Includes = append(p.Includes, inc)
}

// Task is a build task that the host build tool executes.
type Task struct {
	Name         string
	Type         string
	Targets      []string
	JavaArgs     []string
	Dependencies []string
	Options      map[string]string
}

// Facet is an IDE facet of a project module.
type Facet struct {
	Type     string
	Settings map[string]string
	Modules  map[string]bool
}

// IDE is the IDE metadata of a project.
// Components, CodeInsightExcludes and NullableManager only have a meaning for
// root projects, they are written to the IDE project file.
type IDE struct {
	Facets              []*Facet
	Components          []string
	CodeInsightExcludes []string
	NullableManager     bool
}

// AddFacet appends a facet.
func (i *IDE) AddFacet(f *Facet) {
	i.Facets = append(i.Facets, f)
}

// Facet returns the first facet of type typ.
func (i *IDE) Facet(typ string) (*Facet, bool) {
	for _, f := range i.Facets {
		if f.Type == typ {
			return f, true
		}
	}

	return nil, false
}

// Project is the configuration of a project that is composed by features,
// extensions and roles.
type Project struct {
	Name    string
	Group   string
	Dir     string
	Publish bool

	SourceDirs          []string
	ResourceDirs        []string
	GeneratedSourceDirs []string

	parent   *Project
	children []*Project

	roles    []string
	steps    []string
	deps     map[Scope][]string
	packages []*Package
	tasks    []*Task
	ide      IDE

	attachments map[string]Attachment
	attachOrder []string
	extended    bool
	defined     bool
}

// NewProject returns a new project.
// If parent is not nil, the project becomes a sub project of parent.
func NewProject(name string, parent *Project) *Project {
	p := Project{
		Name:        name,
		parent:      parent,
		deps:        map[Scope][]string{},
		attachments: map[string]Attachment{},
	}

	if parent != nil {
		p.Group = parent.Group
		parent.children = append(parent.children, &p)
	}

	return &p
}

// FullName returns the name of the project prefixed with the names of its
// parents, separated by ':'.
func (p *Project) FullName() string {
	if p.parent == nil {
		return p.Name
	}

	return p.parent.FullName() + ":" + p.Name
}

func (p *Project) String() string {
	return p.FullName()
}

func (p *Project) Parent() *Project {
	return p.parent
}

func (p *Project) Children() []*Project {
	return slices.Clone(p.children)
}

// Root returns the top-level project.
func (p *Project) Root() *Project {
	root := p
	for root.parent != nil {
		root = root.parent
	}

	return root
}

// IsRoot returns true if p has no parent.
func (p *Project) IsRoot() bool {
	return p.parent == nil
}

// NameAsClass returns the project name in upper camel case,
// "user-experience" becomes "UserExperience".
func (p *Project) NameAsClass() string {
	var sb strings.Builder

	parts := strings.FieldsFunc(p.Name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})

	title := cases.Title(language.Und, cases.NoLower)
	for _, part := range parts {
		sb.WriteString(title.String(part))
	}

	return sb.String()
}

// GroupAsPackage returns the group of the project as java package name.
func (p *Project) GroupAsPackage() string {
	return strings.ReplaceAll(p.Group, "-", "_")
}

// Roles returns the names of the roles that were applied to the project.
func (p *Project) Roles() []string {
	return slices.Clone(p.roles)
}

// HasRole returns true if role was applied to the project.
func (p *Project) HasRole(role string) bool {
	return slices.Contains(p.roles, role)
}

// AddSteps appends code-generation steps.
// Steps that are already part of the list are not added again, the order of
// the existing steps is preserved.
func (p *Project) AddSteps(steps ...string) {
	p.steps = appendUniq(p.steps, steps...)
}

// Steps returns the ordered code-generation steps.
func (p *Project) Steps() []string {
	return slices.Clone(p.steps)
}

// AddDeps adds dependencies for scope.
func (p *Project) AddDeps(scope Scope, deps ...string) {
	p.deps[scope] = appendUniq(p.deps[scope], deps...)
}

// RemoveDeps removes dependencies from scope.
func (p *Project) RemoveDeps(scope Scope, deps ...string) {
	p.deps[scope] = slices.DeleteFunc(p.deps[scope], func(d string) bool {
		return slices.Contains(deps, d)
	})
}

// Deps returns the dependencies of scope.
func (p *Project) Deps(scope Scope) []string {
	return slices.Clone(p.deps[scope])
}

// Package returns the package of type typ, it is created if it does not
// exist.
func (p *Project) Package(typ PackageType) *Package {
	for _, pkg := range p.packages {
		if pkg.Type == typ {
			return pkg
		}
	}

	pkg := Package{Type: typ}
	p.packages = append(p.packages, &pkg)

	return &pkg
}

// ArtifactOf returns the identifier of the package of type typ that other
// projects use to depend on it.
func (p *Project) ArtifactOf(typ PackageType) string {
	return p.FullName() + ":" + string(typ)
}

// Packages returns the packages in the order they were created.
func (p *Project) Packages() []*Package {
	return slices.Clone(p.packages)
}

// AddTask adds a task. Task names must be unique per project.
func (p *Project) AddTask(t *Task) error {
	if t.Name == "" {
		return fmt.Errorf("project %q: task name is empty", p)
	}

	if _, exist := p.Task(t.Name); exist {
		return fmt.Errorf("project %q: task %q already exists", p, t.Name)
	}

	p.tasks = append(p.tasks, t)

	return nil
}

// Task returns the task called name.
func (p *Project) Task(name string) (*Task, bool) {
	for _, t := range p.tasks {
		if t.Name == name {
			return t, true
		}
	}

	return nil, false
}

// Tasks returns the tasks in the order they were added.
func (p *Project) Tasks() []*Task {
	return slices.Clone(p.tasks)
}

// IDE returns the IDE metadata of the project.
func (p *Project) IDE() *IDE {
	return &p.ide
}

// Attachment returns the value that the extension called name attached to
// the project.
func (p *Project) Attachment(name string) (Attachment, bool) {
	a, exist := p.attachments[name]
	return a, exist
}

// Attachments returns the names of the attached extensions in attach order.
func (p *Project) Attachments() []string {
	return slices.Clone(p.attachOrder)
}

// AttachmentOf returns the first attachment of p that has type T.
func AttachmentOf[T any](p *Project) (T, bool) {
	for _, name := range p.attachOrder {
		if v, ok := p.attachments[name].(T); ok {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// Extended returns true if the extensions were applied to the project.
func (p *Project) Extended() bool {
	return p.extended
}

// Defined returns true if the project was defined by a Composer.
func (p *Project) Defined() bool {
	return p.defined
}

func (p *Project) attach(name string, a Attachment) {
	if _, exist := p.attachments[name]; !exist {
		p.attachOrder = append(p.attachOrder, name)
	}

	p.attachments[name] = a
}

func (p *Project) addRole(name string) {
	if !slices.Contains(p.roles, name) {
		p.roles = append(p.roles, name)
	}
}

func appendUniq(s []string, elems ...string) []string {
	for _, e := range elems {
		if !slices.Contains(s, e) {
			s = append(s, e)
		}
	}

	return s
}
