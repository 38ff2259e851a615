package components

import (
	"arbitat/internal/infra/kvstore"
	"arbitat/internal/infra/memstore"
	"arbitat/internal/infra/payment"
	"arbitat/internal/pkg/clock"
	"arbitat/internal/pkg/config"
	"arbitat/internal/usecase/commands"
	"arbitat/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		memstore.NewListingStore,
		memstore.NewDecisionStore,
		memstore.NewBookingStore,
		memstore.NewUserStore,
		NewSelectionStore,
		NewPaymentSimulator,

		// Command-side ports
		func(s *memstore.ListingStore) commands.ListingRepository { return s },
		func(s *memstore.DecisionStore) commands.DecisionRepository { return s },
		func(s *memstore.SelectionStore) commands.SelectionRepository { return s },
		func(s *memstore.BookingStore) commands.BookingRepository { return s },
		func(s *memstore.UserStore) commands.UserRepository { return s },
		func(s *kvstore.Sessions) commands.SessionRepository { return s },
		func(s *payment.Simulator) commands.PaymentGateway { return s },

		// Read-side ports for queries
		func(s *memstore.ListingStore) queries.ListingReadStore { return s },
		func(s *memstore.DecisionStore) queries.DecisionReadStore { return s },
		func(s *memstore.SelectionStore) queries.SelectionReadStore { return s },
		func(s *memstore.BookingStore) queries.BookingReadStore { return s },
		func(s *memstore.UserStore) queries.UserReadStore { return s },
		func(s *kvstore.Sessions) queries.SessionReadStore { return s },
	),
	fx.Invoke(SeedDemoData),
)

func NewSelectionStore(cfg config.Config) *memstore.SelectionStore {
	return memstore.NewSelectionStore(cfg.Match.CompareLimit)
}

func NewPaymentSimulator(cfg config.Config, clk clock.Clock) *payment.Simulator {
	return payment.NewSimulator(cfg.Payment.SimulatedLatency, clk)
}

func SeedDemoData(listings *memstore.ListingStore, users *memstore.UserStore, clk clock.Clock) error {
	return memstore.SeedDemoData(listings, users, clk)
}
