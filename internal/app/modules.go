package app

import (
	"github.com/Booklab/TimelineBundle/internal/config"
	"github.com/Booklab/TimelineBundle/internal/locator"
	"github.com/Booklab/TimelineBundle/internal/registry"
)

// FixturesLocatorID is the service id of the locator serving the entities
// declared in configuration.
const FixturesLocatorID = "timeline.locator.fixtures"

// fixturesModule registers a static locator over the configured entities.
type fixturesModule struct {
	entities []*config.Entity
}

func (m *fixturesModule) Register(r *registry.Registry) {
	s := locator.NewStatic()
	for _, e := range m.entities {
		s.Add(e.Model, e.Identifier, e.Data)
	}
	r.Register(FixturesLocatorID, s)
}

// coreModules is the list of modules compiled into the binary, built for
// one configuration model.
func coreModules(model *config.Model) []registry.Module {
	return []registry.Module{
		&fixturesModule{entities: model.Entities},
	}
}
