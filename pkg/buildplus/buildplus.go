// Package buildplus provides the built-in features and roles and loads the
// projects of a buildplus repository.
package buildplus

// ProjectCfgFile is the name of project configuration files.
const ProjectCfgFile = ".project.toml"

// RepositoryCfgFile is the name of the repository configuration file.
const RepositoryCfgFile = ".buildplus.toml"

// Names of the built-in features.
const (
	FeatureJackson       = "jackson"
	FeatureJavascript    = "javascript"
	FeatureDomgen        = "domgen"
	FeatureDB            = "db"
	FeatureEJB           = "ejb"
	FeatureXML           = "xml"
	FeatureSOAP          = "soap"
	FeatureGWT           = "gwt"
	FeatureIdeaCodestyle = "idea_codestyle"
)

// Names of the built-in roles.
const (
	RoleModel          = "model"
	RoleModelQASupport = "model_qa_support"
	RoleShared         = "shared"
	RoleGWT            = "gwt"
	RoleServer         = "server"
)

type Logger interface {
	Debugf(format string, v ...any)
	Warnf(format string, v ...any)
}
