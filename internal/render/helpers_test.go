package render

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/Booklab/TimelineBundle/internal/engine"
	"github.com/Booklab/TimelineBundle/internal/timeline"
)

// newTestExtension builds an Extension over an in-memory template tree.
// Every file name is a path such as "acme/like.html.twig".
func newTestExtension(t *testing.T, files map[string]string, settings Settings, resources ...string) *Extension {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return New(context.Background(), engine.New(context.Background(), fsys), settings, resources...)
}

func (x *Extension) pending() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.stack)
}

// likeAction is "Chuck (Acme\Model #42) like a photo".
func likeAction() *timeline.Action {
	subject := timeline.NewComponent(`Acme\Model`, "42")
	subject.Data = map[string]any{"name": "Chuck"}
	return timeline.NewAction("like").
		SetComponent("subject", subject).
		SetComponent("complement", "a photo")
}
