package cmd

import (
	"context"
	"log/slog"
	"time"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/cache"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/ledgerrepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// orderReadTTL bounds how long order reads may lag behind a write that failed
// to invalidate them.
const orderReadTTL = time.Minute

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.Cache
	clock      kernel.Clock
	salaryRate kernel.Money
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, cache ports.Cache, logger *slog.Logger) (*CompositionRoot, error) {
	salaryRate, err := config.SalaryRate()
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		clock:      kernel.SystemClock(),
		salaryRate: salaryRate,
		logger:     logger,
	}, nil
}

// NewCache builds the configured cache backend. The returned function
// releases its connections.
func NewCache(ctx context.Context, config Config) (ports.Cache, func() error, error) {
	if config.CacheBackend != "redis" {
		return cache.NewMemoryCache(cache.DefaultCleanupInterval), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	c := cache.NewRedisCache(client, "laundry:")
	if err := c.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return c, client.Close, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) expenseUoWFactory() commands.ExpenseUoWFactory {
	return FuncExpenseUoWFactory(func() commands.ExpenseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) salaryUoWFactory() commands.SalaryUoWFactory {
	return FuncSalaryUoWFactory(func() commands.SalaryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) distributionUoWFactory() commands.DistributionUoWFactory {
	return FuncDistributionUoWFactory(func() commands.DistributionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.config.RetryPolicy(), c.clock, c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() *commands.UpdateOrderDetailsCommandHandler {
	h := commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory(), c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() *commands.AdvanceOrderStatusCommandHandler {
	h := commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory(), c.clock, c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() *commands.MarkOrderPaidCommandHandler {
	h := commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory(), c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateExpenseCommandHandler() *commands.CreateExpenseCommandHandler {
	h := commands.NewCreateExpenseCommandHandler(c.expenseUoWFactory(), c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateDeleteExpenseCommandHandler() *commands.DeleteExpenseCommandHandler {
	h := commands.NewDeleteExpenseCommandHandler(c.expenseUoWFactory(), c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateReimburseExpenseCommandHandler() *commands.ReimburseExpenseCommandHandler {
	h := commands.NewReimburseExpenseCommandHandler(c.expenseUoWFactory(), c.clock, c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateBulkReimburseExpensesCommandHandler() *commands.BulkReimburseExpensesCommandHandler {
	h := commands.NewBulkReimburseExpensesCommandHandler(
		c.expenseUoWFactory(), c.config.ExpenseBulkAtomic, c.clock, c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRecordLoadCompletionCommandHandler() *commands.RecordLoadCompletionCommandHandler {
	h := commands.NewRecordLoadCompletionCommandHandler(c.salaryUoWFactory(), c.salaryRate, c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateSetSalaryPaidCommandHandler() *commands.SetSalaryPaidCommandHandler {
	h := commands.NewSetSalaryPaidCommandHandler(c.salaryUoWFactory(), c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCloseDistributionPeriodCommandHandler() *commands.CloseDistributionPeriodCommandHandler {
	h := commands.NewCloseDistributionPeriodCommandHandler(
		c.distributionUoWFactory(), ledgerrepo.NewGormLedgerReader(c.gormDB), c.clock, c.cache, c.logger)
	return &h
}

func (c *CompositionRoot) CreateClaimDistributionCommandHandler() *commands.ClaimDistributionCommandHandler {
	h := commands.NewClaimDistributionCommandHandler(c.distributionUoWFactory(), c.clock, c.logger)
	return &h
}

func (c *CompositionRoot) CreateComputePriceQueryHandler() queries.ComputePriceQueryHandler {
	return queries.NewComputePriceQueryHandler()
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB, c.cache, orderReadTTL, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.cache, orderReadTTL, c.logger)
}

func (c *CompositionRoot) CreateGetOwnerPendingTotalsQueryHandler() queries.GetOwnerPendingTotalsQueryHandler {
	return queries.NewGetOwnerPendingTotalsQueryHandler(c.gormDB, c.cache, c.config.ReportCacheTTL, c.logger)
}

func (c *CompositionRoot) CreateGetFinancialSummaryQueryHandler() queries.GetFinancialSummaryQueryHandler {
	return queries.NewGetFinancialSummaryQueryHandler(
		ledgerrepo.NewGormLedgerReader(c.gormDB), c.clock, c.cache, c.config.ReportCacheTTL, c.logger)
}

func (c *CompositionRoot) CreateGetDistributionsQueryHandler() queries.GetDistributionsQueryHandler {
	return queries.NewGetDistributionsQueryHandler(c.gormDB)
}

// Handlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		ComputePrice:       c.CreateComputePriceQueryHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		GetActiveOrders:    c.CreateGetActiveOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		UpdateOrderDetails: c.CreateUpdateOrderDetailsCommandHandler(),
		AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),
		MarkOrderPaid:      c.CreateMarkOrderPaidCommandHandler(),

		CreateExpense:         c.CreateCreateExpenseCommandHandler(),
		DeleteExpense:         c.CreateDeleteExpenseCommandHandler(),
		ReimburseExpense:      c.CreateReimburseExpenseCommandHandler(),
		BulkReimburseExpenses: c.CreateBulkReimburseExpensesCommandHandler(),
		GetOwnerPendingTotals: c.CreateGetOwnerPendingTotalsQueryHandler(),

		RecordLoadCompletion: c.CreateRecordLoadCompletionCommandHandler(),
		SetSalaryPaid:        c.CreateSetSalaryPaidCommandHandler(),

		GetFinancialSummary:     c.CreateGetFinancialSummaryQueryHandler(),
		GetDistributions:        c.CreateGetDistributionsQueryHandler(),
		CloseDistributionPeriod: c.CreateCloseDistributionPeriodCommandHandler(),
		ClaimDistribution:       c.CreateClaimDistributionCommandHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewDistributionCloseJob(c.CreateCloseDistributionPeriodCommandHandler(), c.clock, c.logger),
		jobs.NewPendingReimbursementJob(c.CreateGetOwnerPendingTotalsQueryHandler(), c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncExpenseUoWFactory func() commands.ExpenseUoW

func (f FuncExpenseUoWFactory) Create() commands.ExpenseUoW {
	return f()
}

type FuncSalaryUoWFactory func() commands.SalaryUoW

func (f FuncSalaryUoWFactory) Create() commands.SalaryUoW {
	return f()
}

type FuncDistributionUoWFactory func() commands.DistributionUoW

func (f FuncDistributionUoWFactory) Create() commands.DistributionUoW {
	return f()
}
