package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency when
// seeding data outside a unit of work.
type mockAggregateTracker struct {
	mock.Mock
}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

func newSeedTracker() *mockAggregateTracker {
	tracker := &mockAggregateTracker{}
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	return tracker
}

// stubRestaurantsCache is an in-memory RestaurantsCache for asserting the
// read-through behavior of the catalog listing.
type stubRestaurantsCache struct {
	entries map[string][]queries.GetRestaurantsQueryResponse
	sets    int
}

func newStubRestaurantsCache() *stubRestaurantsCache {
	return &stubRestaurantsCache{entries: make(map[string][]queries.GetRestaurantsQueryResponse)}
}

func (c *stubRestaurantsCache) Get(_ context.Context, city string) ([]queries.GetRestaurantsQueryResponse, bool) {
	rows, ok := c.entries[city]
	return rows, ok
}

func (c *stubRestaurantsCache) Set(_ context.Context, city string, rows []queries.GetRestaurantsQueryResponse) {
	c.entries[city] = rows
	c.sets++
}

type GetRestaurantsQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	restaurantRepo *restaurantrepo.GormRestaurantRepository
}

func (suite *GetRestaurantsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&restaurantrepo.RestaurantDTO{}, &restaurantrepo.FoodDTO{})
	suite.Require().NoError(err)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetRestaurantsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE restaurants, foods CASCADE").Error
	suite.Require().NoError(err)

	suite.restaurantRepo = restaurantrepo.NewGormRestaurantRepository(suite.db, newSeedTracker())
}

func (suite *GetRestaurantsQueryHandlerTestSuite) seedRestaurant(name, city string) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(),
		name, "italian", city, "Hauptstrasse 1", nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.Add(context.Background(), r))
	return r
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetRestaurantsQueryHandler(suite.db, nil)

	result, err := handler.Handle(context.Background(), queries.NewGetRestaurantsQuery(""))

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_ListsAllSortedByName() {
	suite.seedRestaurant("Zur Post", "Berlin")
	suite.seedRestaurant("Akropolis", "Hamburg")
	suite.seedRestaurant("Milano", "Berlin")

	handler := queries.NewGetRestaurantsQueryHandler(suite.db, nil)

	result, err := handler.Handle(context.Background(), queries.NewGetRestaurantsQuery(""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Akropolis", result[0].Name)
	suite.Equal("Milano", result[1].Name)
	suite.Equal("Zur Post", result[2].Name)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_FiltersByCity() {
	berlin := suite.seedRestaurant("Milano", "Berlin")
	suite.seedRestaurant("Akropolis", "Hamburg")

	handler := queries.NewGetRestaurantsQueryHandler(suite.db, nil)

	result, err := handler.Handle(context.Background(), queries.NewGetRestaurantsQuery("Berlin"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(berlin.ID()))
	suite.Equal("Berlin", result[0].City)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_PopulatesCacheOnMiss() {
	suite.seedRestaurant("Milano", "Berlin")
	cache := newStubRestaurantsCache()

	handler := queries.NewGetRestaurantsQueryHandler(suite.db, cache)

	result, err := handler.Handle(context.Background(), queries.NewGetRestaurantsQuery("Berlin"))

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.Equal(1, cache.sets)
	cached, ok := cache.Get(context.Background(), "Berlin")
	suite.True(ok)
	suite.Equal(result, cached)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_ServesFromCacheOnHit() {
	// The database stays empty; a hit must short-circuit the query.
	cache := newStubRestaurantsCache()
	cache.Set(context.Background(), "", []queries.GetRestaurantsQueryResponse{
		{ID: kernel.NewUUID(), Name: "Cached Only", FoodType: "greek", City: "Hamburg", Address: "Hafenstrasse 2"},
	})
	cache.sets = 0

	handler := queries.NewGetRestaurantsQueryHandler(suite.db, cache)

	result, err := handler.Handle(context.Background(), queries.NewGetRestaurantsQuery(""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Cached Only", result[0].Name)
	suite.Equal(0, cache.sets)
}

func (suite *GetRestaurantsQueryHandlerTestSuite) TestHandle_MenuListsFoodsOfRestaurantOnly() {
	r := suite.seedRestaurant("Milano", "Berlin")
	other := suite.seedRestaurant("Akropolis", "Hamburg")

	price, err := restaurant.NewPrice(1250)
	suite.Require().NoError(err)
	pizza, err := restaurant.NewFood(kernel.NewUUID(), r.ID(), "Margherita", price)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.AddFood(context.Background(), pizza))

	gyros, err := restaurant.NewFood(kernel.NewUUID(), other.ID(), "Gyros", price)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.AddFood(context.Background(), gyros))

	menuHandler := queries.NewGetRestaurantMenuQueryHandler(suite.db)
	query, err := queries.NewGetRestaurantMenuQuery(r.ID())
	suite.Require().NoError(err)

	result, err := menuHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(pizza.ID()))
	suite.Equal("Margherita", result[0].Name)
	suite.Equal(int64(1250), result[0].PriceCents)
}

func TestGetRestaurantsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRestaurantsQueryHandlerTestSuite))
}
