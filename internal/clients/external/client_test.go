package external_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/testutils"
)

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	handler  atomic.Value
	lastPath atomic.Value
	requests atomic.Int32
	client   external.Client
	ctx      context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.requests.Store(0)
	s.lastPath.Store("")
	s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testutils.PyrolynxJSON))
	})

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.lastPath.Store(r.URL.EscapedPath())
		s.handler.Load().(http.HandlerFunc)(w, r)
	}))

	client, err := external.New(&external.Config{BaseURL: s.server.URL})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) setHandler(h http.HandlerFunc) {
	s.handler.Store(h)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestGetCreatureByName() {
	record, err := s.client.GetCreature(s.ctx, creature.ByName("pyrolynx"))
	s.Require().NoError(err)

	s.Equal("/api/creature/pyrolynx", s.lastPath.Load())
	s.Equal(testutils.Pyrolynx(), record)
	s.Equal(int32(1), s.requests.Load())
}

func (s *ClientTestSuite) TestGetCreatureByID() {
	_, err := s.client.GetCreature(s.ctx, creature.ByID(1))
	s.Require().NoError(err)
	s.Equal("/api/creature/1", s.lastPath.Load())
}

func (s *ClientTestSuite) TestGetCreatureUsesRawInput() {
	query := creature.Query{Kind: creature.KindByID, ID: 7, Raw: "7.0"}

	_, err := s.client.GetCreature(s.ctx, query)
	s.Require().NoError(err)
	s.Equal("/api/creature/7.0", s.lastPath.Load())
}

func (s *ClientTestSuite) TestGetCreatureEmptyQuery() {
	s.setHandler(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := s.client.GetCreature(s.ctx, creature.ByName(""))
	s.Require().Error(err)
	s.Equal("/api/creature/", s.lastPath.Load())
	s.True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestGetCreatureStatusErrors() {
	testCases := []struct {
		name     string
		status   int
		wantCode errors.Code
	}{
		{name: "not found", status: http.StatusNotFound, wantCode: errors.CodeNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantCode: errors.CodeUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantCode: errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			})

			record, err := s.client.GetCreature(s.ctx, creature.ByName("missingno"))
			s.Nil(record)
			s.Require().Error(err)
			s.Equal(tc.wantCode, errors.GetCode(err))
			s.False(errors.IsTransport(err))

			status, ok := errors.GetStatusCode(err)
			s.True(ok)
			s.Equal(tc.status, status)
		})
	}
}

func (s *ClientTestSuite) TestGetCreatureMalformedJSON() {
	s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1, "name": `))
	})

	record, err := s.client.GetCreature(s.ctx, creature.ByName("pyrolynx"))
	s.Nil(record)
	s.True(errors.IsTransport(err))
}

func (s *ClientTestSuite) TestGetCreatureUnreachable() {
	s.server.Close()

	record, err := s.client.GetCreature(s.ctx, creature.ByName("pyrolynx"))
	s.Nil(record)
	s.True(errors.IsTransport(err))
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestGetCreatureNoRetry() {
	s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := s.client.GetCreature(s.ctx, creature.ByName("pyrolynx"))
	s.Error(err)
	s.Equal(int32(1), s.requests.Load())
}

func (s *ClientTestSuite) TestGetCreatureIgnoresUnknownFields() {
	s.setHandler(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 3, "name": "Voltadon", "color": "yellow", "types": [], "stats": []}`))
	})

	record, err := s.client.GetCreature(s.ctx, creature.ByID(3))
	s.Require().NoError(err)
	s.Equal(3, record.ID)
	s.Nil(record.Special)
}

func (s *ClientTestSuite) TestConfigValidate() {
	testCases := []struct {
		name    string
		cfg     *external.Config
		wantErr bool
	}{
		{name: "nil config", cfg: nil, wantErr: true},
		{name: "defaults", cfg: &external.Config{}},
		{name: "bad url", cfg: &external.Config{BaseURL: "not a url"}, wantErr: true},
		{name: "negative timeout", cfg: &external.Config{HTTPTimeout: -1}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.cfg.Validate()
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.NoError(err)
			s.Equal(external.DefaultBaseURL, tc.cfg.BaseURL)
		})
	}
}
