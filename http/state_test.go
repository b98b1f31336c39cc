package http_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/fwojciec/devdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stateBody struct {
	State devdocs.BrowserState `json:"state"`
	View  devdocs.View         `json:"view"`
}

func TestServer_State(t *testing.T) {
	t.Parallel()

	t.Run("starts on the first topic", func(t *testing.T) {
		t.Parallel()

		var body stateBody
		do(t, newTestServer(), http.MethodGet, "/api/state", nil, &body)

		assert.Equal(t, devdocs.TabTopics, body.State.Tab)
		assert.Equal(t, "intro", body.State.ActiveDocID)
		assert.Equal(t, devdocs.PanelDocument, body.View.Panel)
		assert.Equal(t, []string{"Topics", "Introduction"}, body.View.Breadcrumb)
	})

	t.Run("applies actions in order", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer()

		var body stateBody
		do(t, srv, http.MethodPost, "/api/state", devdocs.Action{Type: devdocs.ActionChangeTab, Tab: devdocs.TabFilters}, &body)
		do(t, srv, http.MethodPost, "/api/state", devdocs.Action{Type: devdocs.ActionToggleTag, Tag: "auth"}, &body)
		assert.Equal(t, devdocs.PanelFiltered, body.View.Panel)

		do(t, srv, http.MethodPost, "/api/state", devdocs.Action{Type: devdocs.ActionFollowLink, Href: "doc://setup"}, &body)
		assert.Equal(t, "setup", body.State.ActiveDocID)
		assert.True(t, body.State.ShowDocWhileFiltering)
		assert.Equal(t, []string{"Filters", "Reference", "Setup"}, body.View.Breadcrumb)

		do(t, srv, http.MethodGet, "/api/state", nil, &body)
		assert.Equal(t, []string{"auth"}, body.State.SelectedTags)
	})

	t.Run("rejects invalid actions without changing state", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer()

		var errBody map[string]string
		rec := do(t, srv, http.MethodPost, "/api/state", devdocs.Action{Type: devdocs.ActionSelectDocument, DocumentID: "missing"}, &errBody)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, srv, http.MethodPost, "/api/state", devdocs.Action{Type: "jump"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body stateBody
		do(t, srv, http.MethodGet, "/api/state", nil, &body)
		assert.Equal(t, "intro", body.State.ActiveDocID)
	})

	t.Run("serializes concurrent actions", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer()

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := devdocs.Action{Type: devdocs.ActionToggleTopic, DocumentID: "setup"}
				rec := do(t, srv, http.MethodPost, "/api/state", req, nil)
				assert.Equal(t, http.StatusOK, rec.Code)
			}()
		}
		wg.Wait()

		var body stateBody
		do(t, srv, http.MethodGet, "/api/state", nil, &body)
		require.NotNil(t, body.State)
		assert.Empty(t, body.State.OpenTopics, "an even number of toggles closes the topic")
	})
}
