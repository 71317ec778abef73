package cmd

import (
	"log/slog"

	httpserver "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/adapters/out/prom"
	"pizzeria/internal/adapters/out/sim"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	agent      *agent.Agent
	world      *sim.World
	metrics    commands.MetricsSink
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	town, err := defaultTown()
	if err != nil {
		return CompositionRoot{}, err
	}

	world, err := sim.NewWorld(town)
	if err != nil {
		return CompositionRoot{}, err
	}

	a, err := agent.NewAgent(kernel.NewUUID())
	if err != nil {
		return CompositionRoot{}, err
	}

	sink, err := prom.NewSink(nil)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		agent:      a,
		world:      world,
		metrics:    sink,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateDeliverPizzasCommandHandler() commands.DeliverPizzasCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverPizzasCommandHandler(c.agent, c.world, c.world, f, c.metrics, c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.world, c.world, c.logger)
}

func (c *CompositionRoot) CreateGetAgentStatusQueryHandler() queries.GetAgentStatusQueryHandler {
	return queries.NewGetAgentStatusQueryHandler(c.agent, c.world)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.world)
}

func (c *CompositionRoot) CreateGetCompletedDeliveriesQueryHandler() queries.GetCompletedDeliveriesQueryHandler {
	return queries.NewGetCompletedDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateGetAgentStatusQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetCompletedDeliveriesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDeliverPizzasCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.world,
		c.logger,
	)
}

// defaultTown is the simulated layout the service runs against: the bakery
// at the origin and a handful of houses a short ride away.
func defaultTown() (sim.Config, error) {
	bakery, err := kernel.NewLocation(0, 0)
	if err != nil {
		return sim.Config{}, err
	}

	houseCoords := map[order.HouseNumber][2]float64{
		1: {800, 0},
		2: {0, 600},
		3: {-700, 400},
		4: {1200, -900},
		5: {-400, -1100},
		6: {1500, 1400},
	}

	houses := make(map[order.HouseNumber]kernel.Location, len(houseCoords))
	for number, xy := range houseCoords {
		loc, err := kernel.NewLocation(xy[0], xy[1])
		if err != nil {
			return sim.Config{}, err
		}
		houses[number] = loc
	}

	return sim.Config{
		Bakery:         bakery,
		Houses:         houses,
		AgentSpeed:     120,
		PickupRadius:   150,
		DeliveryRadius: 150,
		OrderTimeLimit: 180,
	}, nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
