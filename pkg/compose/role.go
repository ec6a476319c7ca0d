package compose

import "github.com/simplesurance/buildplus/pkg/feature"

// RoleFunc configures a project according to a role.
type RoleFunc func(*RoleContext) error

// Role is a named project archetype.
type Role struct {
	Name   string
	Define RoleFunc
}

// RoleContext is passed to a RoleFunc.
type RoleContext struct {
	Project  *Project
	Features *feature.Snapshot

	composer *Composer
}

// Activated returns true if the feature called name is active.
func (rc *RoleContext) Activated(name string) bool {
	return rc.Features.Activated(name)
}

// ProjectsWithRole returns the defined projects that have the role.
func (rc *RoleContext) ProjectsWithRole(role string) []*Project {
	return rc.composer.ProjectsWithRole(role)
}

// Setting returns the value of the setting called name.
func (rc *RoleContext) Setting(name string) (any, bool) {
	return rc.composer.Setting(name)
}

// StepEnabled returns true if the step should be defined for the project.
func (rc *RoleContext) StepEnabled(step string) bool {
	return rc.composer.StepEnabled(step, rc.Project)
}

// Composer returns the composer that applies the role.
func (rc *RoleContext) Composer() *Composer {
	return rc.composer
}
