package external_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	creaturecache "github.com/KirkDiggler/rpg-creature-lookup/internal/repositories/creature_cache"
	creaturecachemock "github.com/KirkDiggler/rpg-creature-lookup/internal/repositories/creature_cache/mock"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/testutils"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/testutils/builders"
)

type CachedClientTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *externalmock.MockClient
	mockCache  *creaturecachemock.MockRepository
	client     external.Client
	ctx        context.Context
}

func TestCachedClientSuite(t *testing.T) {
	suite.Run(t, new(CachedClientTestSuite))
}

func (s *CachedClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = externalmock.NewMockClient(s.ctrl)
	s.mockCache = creaturecachemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	client, err := external.NewCachedClient(&external.CachedConfig{
		Client: s.mockClient,
		Cache:  s.mockCache,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *CachedClientTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedClientTestSuite) TestHitSkipsFetch() {
	query := creature.ByName("pyrolynx")

	s.mockCache.EXPECT().
		Get(s.ctx, creaturecache.GetInput{Key: "pyrolynx"}).
		Return(&creaturecache.GetOutput{Creature: testutils.Pyrolynx()}, nil)

	record, err := s.client.GetCreature(s.ctx, query)
	s.Require().NoError(err)
	s.Equal("Pyrolynx", record.GetName())
}

func (s *CachedClientTestSuite) TestMissFetchesAndStores() {
	query := creature.ByID(1)
	record := testutils.Pyrolynx()

	gomock.InOrder(
		s.mockCache.EXPECT().
			Get(s.ctx, creaturecache.GetInput{Key: "1"}).
			Return(nil, errors.NotFound("not cached")),
		s.mockClient.EXPECT().
			GetCreature(s.ctx, query).
			Return(record, nil),
		s.mockCache.EXPECT().
			Put(s.ctx, creaturecache.PutInput{Key: "1", Creature: record, TTL: time.Hour}).
			Return(&creaturecache.PutOutput{}, nil),
	)

	got, err := s.client.GetCreature(s.ctx, query)
	s.Require().NoError(err)
	s.Same(record, got)
}

func (s *CachedClientTestSuite) TestFailuresNotCached() {
	query := creature.ByName("missingno")
	fetchErr := errors.Status(http.StatusNotFound, "creature not found")

	s.mockCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("not cached"))
	s.mockClient.EXPECT().
		GetCreature(s.ctx, query).
		Return(nil, fetchErr)

	_, err := s.client.GetCreature(s.ctx, query)
	s.Equal(fetchErr, err)
}

func (s *CachedClientTestSuite) TestEmptyResultNotCached() {
	query := creature.ByName("ghost")

	s.mockCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("not cached"))
	s.mockClient.EXPECT().
		GetCreature(s.ctx, query).
		Return(&creature.Creature{}, nil)

	record, err := s.client.GetCreature(s.ctx, query)
	s.Require().NoError(err)
	s.False(record.HasID())
}

func (s *CachedClientTestSuite) TestIncompleteRecordNotCached() {
	query := creature.ByID(5)

	s.mockCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("not cached"))
	s.mockClient.EXPECT().
		GetCreature(s.ctx, query).
		Return(builders.NewCreatureBuilder().WithID(5).WithoutLists().Build(), nil)

	record, err := s.client.GetCreature(s.ctx, query)
	s.Require().NoError(err)
	s.False(record.Complete())
}

func (s *CachedClientTestSuite) TestCacheErrorsFallThrough() {
	query := creature.ByName("pyrolynx")
	record := testutils.Pyrolynx()

	s.mockCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))
	s.mockClient.EXPECT().
		GetCreature(s.ctx, query).
		Return(record, nil)
	s.mockCache.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	got, err := s.client.GetCreature(s.ctx, query)
	s.Require().NoError(err)
	s.Same(record, got)
}

func (s *CachedClientTestSuite) TestEmptyKeyBypassesCache() {
	query := creature.ByName("")

	s.mockClient.EXPECT().
		GetCreature(s.ctx, query).
		Return(nil, errors.Status(http.StatusNotFound, "creature not found"))

	_, err := s.client.GetCreature(s.ctx, query)
	s.True(errors.IsNotFound(err))
}

func (s *CachedClientTestSuite) TestNewCachedClientValidation() {
	_, err := external.NewCachedClient(nil)
	s.Error(err)

	_, err = external.NewCachedClient(&external.CachedConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Client: is required")
	s.Contains(err.Error(), "Cache: is required")

	cfg := &external.CachedConfig{Client: s.mockClient, Cache: s.mockCache}
	s.Require().NoError(cfg.Validate())
	s.Equal(24*time.Hour, cfg.TTL)
}
