// Package compose applies the contributions of active features, extensions
// and roles to project configurations.
package compose

import (
	"fmt"
	"slices"

	"github.com/simplesurance/buildplus/pkg/feature"
)

type Logger interface {
	Debugf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// StepFilter decides if a step is defined for a project.
type StepFilter func(step string, p *Project) bool

type Option func(*Composer)

func WithLogger(logger Logger) Option {
	return func(c *Composer) {
		c.logger = logger
	}
}

// WithExtensionAutoActivate defines if AutoActivate activates the
// extensions. It is enabled by default.
func WithExtensionAutoActivate(enabled bool) Option {
	return func(c *Composer) {
		c.autoActivate = enabled
	}
}

// WithStepFilter sets a filter that narrows which optional steps are defined
// for a project.
func WithStepFilter(f StepFilter) Option {
	return func(c *Composer) {
		c.filter = f
	}
}

// Composer applies extensions and roles to projects.
// It is not safe for concurrent use.
type Composer struct {
	logger       Logger
	features     *feature.Registry
	autoActivate bool
	filter       StepFilter

	activated  bool
	extensions []*Extension

	settings     map[string]any
	settingOrder []string

	roles     map[string]*Role
	roleOrder []string

	projects []*Project
}

// New returns a Composer that composes the contributions of the active
// features in features.
func New(features *feature.Registry, opts ...Option) *Composer {
	c := Composer{
		logger:       nopLogger{},
		features:     features,
		autoActivate: true,
		settings:     map[string]any{},
		roles:        map[string]*Role{},
	}

	for _, opt := range opts {
		opt(&c)
	}

	return &c
}

// Features returns the feature registry of the composer.
func (c *Composer) Features() *feature.Registry {
	return c.features
}

// RegisterExtension adds an extension that is applied to every project,
// independent of the activated features.
func (c *Composer) RegisterExtension(ext *Extension) error {
	if c.activated {
		return ErrFrozen
	}

	return c.addExtension(ext)
}

func (c *Composer) addExtension(ext *Extension) error {
	extensions, err := appendExtension(c.extensions, ext)
	if err != nil {
		return err
	}

	c.extensions = extensions
	c.logger.Debugf("compose: registered extension %q", ext.Name)

	return nil
}

func appendExtension(extensions []*Extension, ext *Extension) ([]*Extension, error) {
	if ext.Name == "" {
		return nil, fmt.Errorf("extension name is empty")
	}

	for _, e := range extensions {
		if e.Name == ext.Name {
			return nil, fmt.Errorf("extension %q is already registered", ext.Name)
		}
	}

	return append(extensions, ext), nil
}

// RegisterRole registers a role.
func (c *Composer) RegisterRole(name string, define RoleFunc) error {
	if _, exist := c.roles[name]; exist {
		return &DuplicateRoleError{Role: name}
	}

	if define == nil {
		return fmt.Errorf("role %q: define function is nil", name)
	}

	c.roles[name] = &Role{Name: name, Define: define}
	c.roleOrder = append(c.roleOrder, name)

	return nil
}

// Roles returns the registered roles in registration order.
func (c *Composer) Roles() []*Role {
	result := make([]*Role, 0, len(c.roleOrder))
	for _, name := range c.roleOrder {
		result = append(result, c.roles[name])
	}

	return result
}

// Activated returns true if Activate was called successfully.
func (c *Composer) Activated() bool {
	return c.activated
}

// AutoActivate calls Activate, if auto activation of extensions is enabled.
func (c *Composer) AutoActivate() error {
	if !c.autoActivate {
		return nil
	}

	return c.Activate()
}

// Activate resolves the feature registry and freezes it.
// The Config contributions of active features become settings, their
// ProjectExtension contributions are appended to the registered extensions.
// The FirstTime functions of all extensions are run.
// Settings and extensions only change when all steps succeeded, a failed
// activation can be retried.
// Calling Activate multiple times after it succeeded has no further effect.
func (c *Composer) Activate() error {
	if c.activated {
		return nil
	}

	if !c.features.Frozen() {
		if err := c.features.AutoActivate(); err != nil {
			return err
		}
	}

	if err := c.features.Validate(); err != nil {
		return fmt.Errorf("validating features failed: %w", err)
	}

	c.features.Freeze()

	settings := map[string]any{}
	var settingOrder []string

	for _, contrib := range c.features.Contributions(PointConfig) {
		s, ok := contrib.(*Setting)
		if !ok {
			return fmt.Errorf("unsupported contribution %T for extension point %q", contrib, PointConfig)
		}

		if _, exist := settings[s.Name]; exist {
			return fmt.Errorf("setting %q is contributed by multiple features", s.Name)
		}

		settings[s.Name] = s.Value
		settingOrder = append(settingOrder, s.Name)
	}

	extensions := slices.Clone(c.extensions)

	for _, contrib := range c.features.Contributions(PointProjectExtension) {
		ext, ok := contrib.(*Extension)
		if !ok {
			return fmt.Errorf("unsupported contribution %T for extension point %q", contrib, PointProjectExtension)
		}

		var err error
		if extensions, err = appendExtension(extensions, ext); err != nil {
			return err
		}
	}

	for _, ext := range extensions {
		if ext.FirstTime == nil {
			continue
		}

		if err := ext.FirstTime(); err != nil {
			return fmt.Errorf("extension %q: %w", ext.Name, err)
		}
	}

	c.settings = settings
	c.settingOrder = settingOrder
	c.extensions = extensions
	c.activated = true
	c.logger.Debugf("compose: activated, features: %q, extensions: %d",
		c.features.Snapshot().Names(), len(c.extensions))

	return nil
}

// Extensions returns the registered extensions in the order they are
// applied.
func (c *Composer) Extensions() []*Extension {
	return slices.Clone(c.extensions)
}

// Setting returns the value of the setting called name.
func (c *Composer) Setting(name string) (any, bool) {
	v, exist := c.settings[name]
	return v, exist
}

// Settings returns the names of all settings in contribution order.
func (c *Composer) Settings() []string {
	return slices.Clone(c.settingOrder)
}

// SettingOf returns the setting called name if it has the type T.
func SettingOf[T any](c *Composer, name string) (T, bool) {
	v, ok := c.settings[name].(T)
	return v, ok
}

// StepEnabled returns true if the step passes the step filter for p.
func (c *Composer) StepEnabled(step string, p *Project) bool {
	if c.filter == nil {
		return true
	}

	return c.filter(step, p)
}

// ApplyExtensions attaches all extensions to p.
// The extensions are only applied once to a project, further calls have no
// effect.
func (c *Composer) ApplyExtensions(p *Project) error {
	if !c.activated {
		return ErrNotActivated
	}

	if p.extended {
		return nil
	}

	for _, ext := range c.extensions {
		if ext.New == nil {
			continue
		}

		a, err := ext.New(c, p)
		if err != nil {
			return fmt.Errorf("project %q: extension %q: %w", p, ext.Name, err)
		}

		if a != nil {
			p.attach(ext.Name, a)
		}
	}

	p.extended = true

	return nil
}

// ApplyRole configures p according to the role called name.
func (c *Composer) ApplyRole(p *Project, name string) error {
	role, exist := c.roles[name]
	if !exist {
		return &UnknownRoleError{Role: name, Project: p.FullName()}
	}

	p.addRole(name)

	c.logger.Debugf("compose: applying role %q to project %q", name, p)

	err := role.Define(&RoleContext{
		Project:  p,
		Features: c.features.Snapshot(),
		composer: c,
	})
	if err != nil {
		return fmt.Errorf("project %q: role %q: %w", p, name, err)
	}

	return nil
}

// Define applies the extensions and the roles to p.
// The BeforeDefine hooks of the attachments are run before the roles are
// applied, the AfterDefine hooks afterwards.
// Project names must be unique.
func (c *Composer) Define(p *Project, roles ...string) error {
	if p.defined {
		return fmt.Errorf("project %q is already defined", p)
	}

	for _, other := range c.projects {
		if other.FullName() == p.FullName() {
			return fmt.Errorf("project names must be unique, a project named %q is already defined", p)
		}
	}

	if err := c.ApplyExtensions(p); err != nil {
		return err
	}

	for _, name := range p.attachOrder {
		if h, ok := p.attachments[name].(BeforeDefiner); ok {
			if err := h.BeforeDefine(p); err != nil {
				return fmt.Errorf("project %q: extension %q: %w", p, name, err)
			}
		}
	}

	for _, role := range roles {
		if err := c.ApplyRole(p, role); err != nil {
			return err
		}
	}

	for _, name := range p.attachOrder {
		if h, ok := p.attachments[name].(AfterDefiner); ok {
			if err := h.AfterDefine(p); err != nil {
				return fmt.Errorf("project %q: extension %q: %w", p, name, err)
			}
		}
	}

	p.defined = true
	c.projects = append(c.projects, p)

	return nil
}

// Projects returns the defined projects in definition order.
func (c *Composer) Projects() []*Project {
	return slices.Clone(c.projects)
}

// Project returns the defined project with the given full name.
func (c *Composer) Project(fullName string) (*Project, bool) {
	for _, p := range c.projects {
		if p.FullName() == fullName {
			return p, true
		}
	}

	return nil, false
}

// ProjectsWithRole returns the defined projects that have the role.
func (c *Composer) ProjectsWithRole(role string) []*Project {
	var result []*Project

	for _, p := range c.projects {
		if p.HasRole(role) {
			result = append(result, p)
		}
	}

	return result
}
