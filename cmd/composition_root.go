package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/campaign"
	"rental/internal/adapters/out/monitor"
	"rental/internal/adapters/out/postgres"
	"rental/internal/adapters/out/sale"
	"rental/internal/adapters/out/sms"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/jobs"
)

// CompositionRoot wires every adapter into the use cases.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	policy services.Policy
	window services.ProgramWindow

	notifier ports.NotificationClient
	renderer ports.MessageRenderer
	sender   ports.MessageSender
	campaign ports.CampaignClient
	sale     services.SaleComputer
}

// NewCompositionRoot builds the object graph from the parsed configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	policy := services.DefaultPolicy()
	policy.CouponEventLimit = config.CouponEventLimit

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		policy:     policy,
		window:     programWindow(config, policy),
		notifier:   monitor.NewClient(config.MonitorURL, config.ClientTimeout),
		renderer:   sms.NewTemplateRenderer(),
		sender:     sms.NewGatewaySender(config.SMSGatewayURL, config.SMSAPIKey, config.ClientTimeout),
		campaign:   campaign.NewClient(config.CampaignURL, config.ClientTimeout),
		sale:       sale.NewFreeHighestItemSale(),
	}
}

// programWindow parses the campaign window dates; a malformed or missing
// date leaves the window disabled.
func programWindow(config Config, policy services.Policy) services.ProgramWindow {
	window := services.ProgramWindow{
		MinAge:        config.ProgramMinAge,
		MaxAge:        config.ProgramMaxAge,
		Purpose:       config.ProgramPurpose,
		AddressPrefix: config.ProgramAddressPrefix,
	}
	if start, err := time.ParseInLocation("2006-01-02", config.ProgramStart, policy.Location); err == nil {
		window.Start = start
	}
	if end, err := time.ParseInLocation("2006-01-02", config.ProgramEnd, policy.Location); err == nil {
		window.End = end.AddDate(0, 0, 1).Add(-time.Second)
	}
	return window
}

func (c *CompositionRoot) CreateReservateOrderCommandHandler() commands.ReservateOrderCommandHandler {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReservateOrderCommandHandler(
		f, services.NewCouponLedger(), c.window, c.notifier, c.renderer, c.sender, c.logger)
}

func (c *CompositionRoot) CreateUpdateReservationCommandHandler() commands.UpdateReservationCommandHandler {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReservationCommandHandler(
		f, services.NewCouponLedger(), c.campaign, c.renderer, c.sender, c.logger)
}

func (c *CompositionRoot) CreateCancelReservationCommandHandler() commands.CancelReservationCommandHandler {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelReservationCommandHandler(f, c.renderer, c.sender, c.logger)
}

func (c *CompositionRoot) CreateCheckInOrderCommandHandler() commands.CheckInOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckInOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreatePackOrderCommandHandler() commands.PackOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPackOrderCommandHandler(
		f, services.NewDiscountEngine(c.policy), c.sale, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateConfirmPackingCommandHandler() commands.ConfirmPackingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPackingCommandHandler(f, c.policy, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateExtendRentalCommandHandler() commands.ExtendRentalCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExtendRentalCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateStartRentalCommandHandler() commands.StartRentalCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRentalCommandHandler(
		f, c.policy, c.notifier, c.renderer, c.sender, c.logger)
}

func (c *CompositionRoot) CreateReturnRentalCommandHandler() commands.ReturnRentalCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnRentalCommandHandler(
		f, services.NewLateFeeCalculator(c.policy), c.notifier, c.renderer, c.sender, c.logger)
}

func (c *CompositionRoot) CreatePartialReturnCommandHandler() commands.PartialReturnCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPartialReturnCommandHandler(
		f, services.NewLateFeeCalculator(c.policy), c.policy, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReboxOrderCommandHandler() commands.ReboxOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReboxOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreatePaybackOrderCommandHandler() commands.PaybackOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPaybackOrderCommandHandler(
		f, services.NewLateFeeCalculator(c.policy), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrderReceiptQueryHandler() queries.GetOrderReceiptQueryHandler {
	return queries.NewGetOrderReceiptQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueRentalsQueryHandler() queries.GetOverdueRentalsQueryHandler {
	return queries.NewGetOverdueRentalsQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueRentalsQueryHandler(), c.renderer, c.sender, c.logger)
}

// CreateHTTPServer wires every route onto one server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateReservateOrderCommandHandler(),
		c.CreateUpdateReservationCommandHandler(),
		c.CreateCancelReservationCommandHandler(),
		c.CreateCheckInOrderCommandHandler(),
		c.CreatePackOrderCommandHandler(),
		c.CreateConfirmPackingCommandHandler(),
		c.CreateExtendRentalCommandHandler(),
		c.CreateStartRentalCommandHandler(),
		c.CreateReturnRentalCommandHandler(),
		c.CreatePartialReturnCommandHandler(),
		c.CreateReboxOrderCommandHandler(),
		c.CreatePaybackOrderCommandHandler(),
		c.CreateGetOrderReceiptQueryHandler(),
		c.CreateGetOverdueRentalsQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
