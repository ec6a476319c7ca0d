package buildplus

import (
	"fmt"

	"github.com/simplesurance/buildplus/pkg/compose"
)

// assetsDir is the directory, relative to the project directory, that
// contains the web assets of a project.
const assetsDir = "target/assets"

// Libs are the artifacts that roles add to projects.
type Libs struct {
	PackagedDeps      []string
	GlassfishEmbedded []string
	DBDrivers         []string
}

func mergeProjectsWithRole(rc *compose.RoleContext, scope compose.Scope, role string) {
	for _, p := range rc.ProjectsWithRole(role) {
		rc.Project.AddDeps(scope, p.ArtifactOf(compose.PackageJar))
	}
}

func gwtOf(rc *compose.RoleContext) (*GWTProject, error) {
	g, ok := GWTOf(rc.Project)
	if !ok {
		return nil, fmt.Errorf("the %q feature is not active", FeatureGWT)
	}

	return g, nil
}

func defineModel(rc *compose.RoleContext) error {
	p := rc.Project

	if rc.Activated(FeatureDomgen) {
		steps := []string{"ee_data_types"}

		if rc.Activated(FeatureDB) {
			steps = append(steps, "jpa_model", "jpa_ejb_dao")
		}

		if rc.Activated(FeatureJackson) {
			steps = append(steps, "jackson_date_util")
		}

		if rc.Activated(FeatureGWT) {
			steps = append(steps, "imit_jpa")
		}

		if rc.Activated(FeatureXML) {
			steps = append(steps, "xml_xml_assets")
		}

		p.AddSteps(steps...)
	}

	p.Publish = true
	p.Package(compose.PackageJar)

	return nil
}

func defineModelQASupport(rc *compose.RoleContext) error {
	p := rc.Project

	if rc.Activated(FeatureDomgen) && rc.Activated(FeatureDB) {
		p.AddSteps("jpa_test_qa_external", "jpa_test_factory")
	}

	mergeProjectsWithRole(rc, compose.ScopeCompile, RoleModel)

	p.Publish = true
	p.Package(compose.PackageJar)

	return nil
}

func defineShared(rc *compose.RoleContext) error {
	p := rc.Project

	if rc.Activated(FeatureDomgen) {
		steps := []string{"ee_messages"}

		if rc.Activated(FeatureGWT) {
			steps = append(steps, "gwt_rpc_shared", "imit_shared")
		}

		p.AddSteps(steps...)
	}

	mergeProjectsWithRole(rc, compose.ScopeCompile, RoleModel)

	p.Publish = true
	p.Package(compose.PackageJar)

	if rc.Activated(FeatureGWT) {
		g, err := gwtOf(rc)
		if err != nil {
			return err
		}

		g.AddSourceToJar()
	}

	return nil
}

func defineGWT(rc *compose.RoleContext) error {
	p := rc.Project

	g, err := gwtOf(rc)
	if err != nil {
		return err
	}

	if rc.Activated(FeatureDomgen) {
		p.AddSteps("gwt_client_event", "gwt_client_app", "gwt_client_gwt_model_module", "gwt_rpc_client_service", "imit_client_entity")
	}

	mergeProjectsWithRole(rc, compose.ScopeCompile, RoleShared)

	p.Package(compose.PackageJar)
	g.AddSourceToJar()

	if _, err := g.DefineTask("", nil); err != nil {
		return err
	}

	return g.DefineIdeaFacet()
}

func (l *Libs) defineServer(rc *compose.RoleContext) error {
	p := rc.Project

	if rc.Activated(FeatureDomgen) {
		steps := []string{"ee_web_xml"}

		if rc.Activated(FeatureDB) {
			steps = append(steps, "jpa_dao_test")

			if rc.Activated(FeatureGWT) {
				steps = append(steps, "imit_server_entity_replication")
			}
		}

		if rc.Activated(FeatureGWT) {
			steps = append(steps, "gwt_rpc_shared", "gwt_rpc_server", "imit_shared", "imit_server_service", "imit_server_qa")
		}

		if rc.Activated(FeatureEJB) {
			steps = append(steps, "ee_exceptions", "ejb_service_facades", "ejb_test_qa", "ejb_test_qa_external", "ejb_test_service_test")
		}

		if rc.Activated(FeatureXML) {
			steps = append(steps, "xml_public_xsd_webapp")
		}

		if rc.Activated(FeatureSOAP) {
			steps = append(steps, "jws_server", "ejb_glassfish_config_assets")
		}

		p.AddSteps(steps...)
	}

	p.Publish = true

	if rc.Activated(FeatureSOAP) {
		p.AddDeps(compose.ScopeCompile, l.GlassfishEmbedded...)
	}
	p.AddDeps(compose.ScopeCompile, l.PackagedDeps...)

	mergeProjectsWithRole(rc, compose.ScopeCompile, RoleModel)
	mergeProjectsWithRole(rc, compose.ScopeTest, RoleModelQASupport)

	p.AddDeps(compose.ScopeTest, l.DBDrivers...)

	war := p.Package(compose.PackageWar)
	war.ClearLibs()
	war.AddLibs(l.PackagedDeps...)

	for _, dep := range rc.ProjectsWithRole(RoleShared) {
		war.AddLibs(dep.ArtifactOf(compose.PackageJar))
	}

	for _, dep := range rc.ProjectsWithRole(RoleModel) {
		war.AddLibs(dep.ArtifactOf(compose.PackageJar))
	}

	if rc.Activated(FeatureGWT) {
		war.Include(assetsDir, ".")
	}

	if rc.Activated(FeatureEJB) {
		p.IDE().AddFacet(&compose.Facet{Type: "ejb"})
	}
	p.IDE().AddFacet(&compose.Facet{Type: "web"})

	return nil
}
