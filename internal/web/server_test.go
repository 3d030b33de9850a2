package web_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/catalog"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/testutils"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/web"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *externalmock.MockClient
	server     *httptest.Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = externalmock.NewMockClient(s.ctrl)
	s.server = s.newServer(s.mockClient)
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *ServerTestSuite) newServer(client external.Client) *httptest.Server {
	handler, err := web.NewServer(&web.Config{
		Client:      client,
		IDGenerator: idgen.NewSequential("search"),
	})
	s.Require().NoError(err)
	return httptest.NewServer(handler)
}

func (s *ServerTestSuite) get(server *httptest.Server, path string) (int, string) {
	resp, err := http.Get(server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}

func (s *ServerTestSuite) TestEmptyPage() {
	status, body := s.get(s.server, "/")

	s.Equal(http.StatusOK, status)
	s.Contains(body, "Search for Creature Name or ID:")
	s.Contains(body, `<option value="Pyrolynx">`)
	s.NotContains(body, "creature-info")
	s.NotContains(body, `role="alert"`)
}

func (s *ServerTestSuite) TestSearchRendersCreature() {
	s.mockClient.EXPECT().
		GetCreature(gomock.Any(), creature.ByName("pyrolynx")).
		Return(testutils.Pyrolynx(), nil)

	status, body := s.get(s.server, "/?q=+pyrolynx+")

	s.Equal(http.StatusOK, status)
	s.Contains(body, `<span id="creature-name">PYROLYNX</span>`)
	s.Contains(body, `<span id="creature-id">#1</span>`)
	s.Contains(body, `<span id="weight">Weight: 42</span>`)
	s.Contains(body, `<span id="height">Height: 32</span>`)
	s.Contains(body, ">FIRE</span>")
	s.Contains(body, `<h3 id="special-name">Blazing Roar</h3>`)
	s.Contains(body, `<td id="speed">100</td>`)
	s.Contains(body, `<td id="special-attack">90</td>`)
	s.Contains(body, `value=" pyrolynx "`)
	s.NotContains(body, `role="alert"`)
}

func (s *ServerTestSuite) TestSearchMissingStatShowsNotAvailable() {
	s.mockClient.EXPECT().
		GetCreature(gomock.Any(), creature.ByID(1)).
		Return(testutils.Minimal(), nil)

	_, body := s.get(s.server, "/?q=1")

	s.Contains(body, `<td id="hp">39</td>`)
	s.Contains(body, `<td id="attack">N/A</td>`)
	s.Contains(body, "No special ability data.")
}

func (s *ServerTestSuite) TestSearchNotFound() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	client, err := external.New(&external.Config{BaseURL: upstream.URL})
	s.Require().NoError(err)
	server := s.newServer(client)
	defer server.Close()

	status, body := s.get(server, "/?q=missingno")

	s.Equal(http.StatusOK, status)
	s.Contains(body, `<p class="notice" role="alert">Creature not found</p>`)
	s.NotContains(body, "creature-info")
	s.Contains(body, `name="q" value=""`)
}

func (s *ServerTestSuite) TestSearchIncompleteResponse() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 5, "name": null, "types": [], "stats": []}`))
	}))
	defer upstream.Close()

	client, err := external.New(&external.Config{BaseURL: upstream.URL})
	s.Require().NoError(err)
	server := s.newServer(client)
	defer server.Close()

	status, body := s.get(server, "/?q=5")
	s.Equal(http.StatusOK, status)
	s.Contains(body, `<p class="notice" role="alert">Creature not found</p>`)
	s.NotContains(body, "creature-info")

	status, body = s.get(server, "/api/creature/5")
	s.Equal(http.StatusNotFound, status)
	s.JSONEq(`{"error":"creature response is missing fields"}`, body)
}

func (s *ServerTestSuite) TestClearRedirects() {
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}

	resp, err := client.Post(s.server.URL+"/clear", "application/x-www-form-urlencoded", strings.NewReader(""))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusSeeOther, resp.StatusCode)
	s.Equal("/", resp.Header.Get("Location"))
}

func (s *ServerTestSuite) TestHealth() {
	status, body := s.get(s.server, "/health")

	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"status":"ok"}`, body)
}

func (s *ServerTestSuite) TestCatalog() {
	status, body := s.get(s.server, "/catalog")
	s.Equal(http.StatusOK, status)

	var entries []catalog.Entry
	s.Require().NoError(json.Unmarshal([]byte(body), &entries))
	s.Equal(catalog.All(), entries)
}

func (s *ServerTestSuite) TestCreatureJSON() {
	s.mockClient.EXPECT().
		GetCreature(gomock.Any(), creature.ByName("pyrolynx")).
		Return(testutils.Pyrolynx(), nil)

	status, body := s.get(s.server, "/api/creature/pyrolynx")
	s.Equal(http.StatusOK, status)

	var record creature.Creature
	s.Require().NoError(json.Unmarshal([]byte(body), &record))
	s.Equal(testutils.Pyrolynx(), &record)
}

func (s *ServerTestSuite) TestCreatureJSONErrors() {
	testCases := []struct {
		name       string
		err        error
		record     *creature.Creature
		wantStatus int
	}{
		{
			name:       "upstream not found",
			err:        errors.Status(http.StatusNotFound, "creature service returned an error"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "upstream failure",
			err:        errors.Status(http.StatusInternalServerError, "creature service returned an error"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unreachable",
			err:        errors.Transport(fmt.Errorf("dial tcp: connection refused"), "failed to reach creature service"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "zero id",
			record:     builders.NewCreatureBuilder().WithID(0).Build(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "id only",
			record:     builders.NewCreatureBuilder().WithID(25).WithoutName().WithoutLists().Build(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "no name",
			record:     builders.NewCreatureBuilder().WithID(25).WithoutName().Build(),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockClient.EXPECT().
				GetCreature(gomock.Any(), creature.ByID(25)).
				Return(tc.record, tc.err)

			status, body := s.get(s.server, "/api/creature/25")
			s.Equal(tc.wantStatus, status)

			var resp map[string]string
			s.Require().NoError(json.Unmarshal([]byte(body), &resp))
			s.NotEmpty(resp["error"])
		})
	}
}

func (s *ServerTestSuite) TestUnknownRoutes() {
	status, _ := s.get(s.server, "/nope")
	s.Equal(http.StatusNotFound, status)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, s.server.URL+"/clear", nil)
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func (s *ServerTestSuite) TestConfigValidation() {
	_, err := web.NewServer(nil)
	s.Error(err)

	_, err = web.NewServer(&web.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Client: is required")
}
