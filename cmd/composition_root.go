package cmd

import (
	"log/slog"
	"os"
	"strings"
	"time"

	kafkaout "foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/postgres"
	redisout "foodorder/internal/adapters/out/redis"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// restaurantsCacheTTL bounds how stale the catalog listing may get.
const restaurantsCacheTTL = 5 * time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafkaout.OrderChangedPublisher
	cache      *redisout.RestaurantsCache
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters once. Kafka and redis are optional:
// when their hosts are not configured the application runs without event
// publishing and without the catalog cache.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	if configs.KafkaHost != "" {
		root.publisher = kafkaout.NewOrderChangedPublisher(
			strings.Split(configs.KafkaHost, ","), configs.KafkaOrderChangedTopic)
	}

	if configs.RedisHost != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     configs.RedisHost,
			Password: configs.RedisPassword,
		})
		root.cache = redisout.NewRestaurantsCache(client, restaurantsCacheTTL)
	}

	return root
}

// Close releases adapter resources held by the root.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		return c.publisher.Close()
	}
	return nil
}

// Logger returns the application-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// orderEventPublisher returns the configured publisher as the port type,
// keeping the nil usable by handlers when kafka is disabled.
func (c *CompositionRoot) orderEventPublisher() ports.OrderEventPublisher {
	if c.publisher == nil {
		return nil
	}
	return c.publisher
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.orderEventPublisher())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.orderEventPublisher())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.orderEventPublisher())
}

func (c *CompositionRoot) CreateApproveDeliveryCommandHandler() commands.ApproveDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveDeliveryCommandHandler(f, c.orderEventPublisher())
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateAddFoodCommandHandler() commands.AddFoodCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddFoodCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateFoodCommandHandler() commands.UpdateFoodCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFoodCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	var cache queries.RestaurantsCache
	if c.cache != nil {
		cache = c.cache
	}
	return queries.NewGetRestaurantsQueryHandler(c.gormDB, cache)
}

func (c *CompositionRoot) CreateGetRestaurantMenuQueryHandler() queries.GetRestaurantMenuQueryHandler {
	return queries.NewGetRestaurantMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMerchantOrdersQueryHandler() queries.GetMerchantOrdersQueryHandler {
	return queries.NewGetMerchantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
