package compose

import "github.com/simplesurance/buildplus/pkg/feature"

const (
	// PointConfig is the extension point for process wide settings, the
	// contributions are *Setting values.
	PointConfig feature.ExtensionPoint = "Config"
	// PointProjectExtension is the extension point for behaviour that is
	// added to every project, the contributions are *Extension values.
	PointProjectExtension feature.ExtensionPoint = "ProjectExtension"
)

// Attachment is the per project value of an Extension.
// It can implement BeforeDefiner and AfterDefiner to run code when a project
// is defined.
type Attachment any

// BeforeDefiner is implemented by attachments that run before the roles of a
// project are applied.
type BeforeDefiner interface {
	BeforeDefine(*Project) error
}

// AfterDefiner is implemented by attachments that run after the roles of a
// project were applied.
type AfterDefiner interface {
	AfterDefine(*Project) error
}

// Extension adds behaviour to every project of a Composer.
type Extension struct {
	Name string
	// FirstTime is called once when the Composer is activated. It can be
	// nil.
	FirstTime func() error
	// New creates the value that is attached to a project. It can be nil,
	// then nothing is attached.
	New func(c *Composer, p *Project) (Attachment, error)
}

func (*Extension) ExtensionPoint() feature.ExtensionPoint {
	return PointProjectExtension
}

// Setting is a named process wide configuration value.
// Value should be a pointer, it is shared by all projects.
type Setting struct {
	Name  string
	Value any
}

func (*Setting) ExtensionPoint() feature.ExtensionPoint {
	return PointConfig
}
