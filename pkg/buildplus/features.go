package buildplus

import (
	"fmt"

	"github.com/simplesurance/buildplus/pkg/compose"
	"github.com/simplesurance/buildplus/pkg/feature"
)

const ideaCodestyleComponent = "CodeStyleSettingsManager"

var ideaCodeInsightExcludes = []string{"graphql.Assert"}

// RegisterFeatures registers the built-in features in r.
// Features without enhancements only act as switches that roles query.
func RegisterFeatures(r *feature.Registry, gwtCfg *GWTConfig) error {
	for _, name := range []string{
		FeatureJackson,
		FeatureJavascript,
		FeatureDomgen,
		FeatureDB,
		FeatureEJB,
		FeatureXML,
		FeatureSOAP,
	} {
		if _, err := r.Register(name); err != nil {
			return err
		}
	}

	if gwtCfg == nil {
		gwtCfg = NewGWTConfig()
	}

	if err := defineGWTFeature(r, gwtCfg); err != nil {
		return err
	}

	return r.Define(FeatureIdeaCodestyle, nil, func(d *feature.Definer) {
		d.Enhance(compose.PointProjectExtension, &compose.Extension{
			Name: FeatureIdeaCodestyle,
			New: func(*compose.Composer, *compose.Project) (compose.Attachment, error) {
				return &ideaCodestyle{}, nil
			},
		})
	})
}

// ideaCodestyle adds the code style settings to the IDE model of root
// projects.
type ideaCodestyle struct{}

func (*ideaCodestyle) AfterDefine(p *compose.Project) error {
	if !p.IsRoot() {
		return nil
	}

	ide := p.IDE()
	ide.Components = append(ide.Components, ideaCodestyleComponent)
	ide.CodeInsightExcludes = append(ide.CodeInsightExcludes, ideaCodeInsightExcludes...)
	ide.NullableManager = true

	return nil
}

// RegisterRoles registers the built-in roles in c.
func RegisterRoles(c *compose.Composer, libs *Libs) error {
	if libs == nil {
		libs = &Libs{}
	}

	for _, r := range []struct {
		name   string
		define compose.RoleFunc
	}{
		{RoleModel, defineModel},
		{RoleModelQASupport, defineModelQASupport},
		{RoleShared, defineShared},
		{RoleGWT, defineGWT},
		{RoleServer, libs.defineServer},
	} {
		if err := c.RegisterRole(r.name, r.define); err != nil {
			return fmt.Errorf("registering built-in role failed: %w", err)
		}
	}

	return nil
}
