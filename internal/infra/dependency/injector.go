// Package dependency provides dependency injection for the application.
package dependency

import (
	"errors"
	"log/slog"

	"github.com/productivity-hub/backend/config"
	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/application/session"
	"github.com/productivity-hub/backend/internal/application/usecase/auth"
	"github.com/productivity-hub/backend/internal/application/usecase/category"
	"github.com/productivity-hub/backend/internal/application/usecase/dashboard"
	"github.com/productivity-hub/backend/internal/application/usecase/draft"
	"github.com/productivity-hub/backend/internal/application/usecase/event"
	"github.com/productivity-hub/backend/internal/application/usecase/goal"
	"github.com/productivity-hub/backend/internal/application/usecase/project"
	"github.com/productivity-hub/backend/internal/application/usecase/task"
	"github.com/productivity-hub/backend/internal/application/usecase/transaction"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/infra/seed"
	"github.com/productivity-hub/backend/internal/infra/server/router"
	"github.com/productivity-hub/backend/internal/integration/adapters"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/controller"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/middleware"
	"github.com/productivity-hub/backend/internal/integration/messaging"
	"github.com/productivity-hub/backend/internal/integration/realtime"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Stores      dashboard.Stores
	Storage     adapter.SessionStorage
	Gate        *session.Gate
	Hub         *realtime.Hub
	Drafts      *draft.ExpireDraftsUseCase
	RateLimiter *middleware.RateLimiter
	Router      *router.Router

	closers []func() error
}

// NewInjector opens the configured session storage and message broker and
// wires every dependency on top of them.
func NewInjector(cfg *config.Config) (*Injector, error) {
	storage, closeStorage, err := NewSessionStorage(cfg)
	if err != nil {
		return nil, err
	}

	var publishers []adapter.EventPublisher
	closers := []func() error{closeStorage}

	if cfg.Messaging.URL != "" {
		pub, err := messaging.NewPublisher(cfg.Messaging.URL, cfg.Messaging.Exchange)
		if err != nil {
			// Realtime delivery still works without the broker.
			slog.Warn("Message broker unavailable, publishing to WebSocket clients only", "error", err)
		} else {
			slog.Info("Publishing events to message broker", "exchange", cfg.Messaging.Exchange)
			publishers = append(publishers, pub)
			closers = append(closers, pub.Close)
		}
	}

	inj := NewInjectorWithStorage(cfg, storage, publishers...)
	inj.closers = closers
	return inj, nil
}

// NewInjectorWithStorage wires every dependency on the given session
// storage. Messages go to the WebSocket hub and to extra.
func NewInjectorWithStorage(cfg *config.Config, storage adapter.SessionStorage, extra ...adapter.EventPublisher) *Injector {
	stores := seed.NewStores(cfg.Workspace.SeedFixtures)
	hub := realtime.NewHub()
	publisher := adapters.NewMultiPublisher(append([]adapter.EventPublisher{hub}, extra...)...)
	notifier := notify.New(publisher)

	gate := session.NewGate(storage, cfg.Session.LoginDelay)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Editors are shared by the record endpoints and the draft endpoints
	taskEditor := task.NewEditor(stores.Tasks)
	transactionEditor := transaction.NewEditor(stores.Transactions, stores.Categories)
	categoryEditor := category.NewEditor(stores.Categories)
	goalEditor := goal.NewEditor(stores.Goals)
	projectEditor := project.NewEditor(stores.Projects)
	eventEditor := event.NewEditor(stores.Events)

	registry := draft.NewRegistry(
		draft.NewDesk[entity.Task, entity.TaskPatch](taskEditor),
		draft.NewDesk[entity.Transaction, entity.TransactionPatch](transactionEditor),
		draft.NewDesk[entity.Category, entity.CategoryPatch](categoryEditor),
		draft.NewDesk[entity.Goal, entity.GoalPatch](goalEditor),
		draft.NewDesk[entity.Project, entity.ProjectPatch](projectEditor),
		draft.NewDesk[entity.CalendarEvent, entity.CalendarEventPatch](eventEditor),
	)

	// Create task use cases
	changeTaskStatus := task.NewChangeTaskStatusUseCase(taskEditor, notifier)
	taskUseCases := controller.TaskUseCases{
		List:         task.NewListTasksUseCase(stores.Tasks),
		Board:        task.NewGetTaskBoardUseCase(stores.Tasks),
		Create:       task.NewCreateTaskUseCase(taskEditor, notifier),
		QuickAdd:     task.NewQuickAddTaskUseCase(taskEditor, notifier),
		Update:       task.NewUpdateTaskUseCase(taskEditor, notifier),
		ChangeStatus: changeTaskStatus,
		Toggle:       task.NewToggleTaskUseCase(taskEditor, notifier),
		Relocate:     task.NewRelocateTaskUseCase(stores.Tasks, changeTaskStatus, publisher),
		Delete:       task.NewDeleteTaskUseCase(stores.Tasks, notifier),
	}

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(StorageName(cfg), storage.Ping),
		Auth: controller.NewAuthController(
			auth.NewLoginUserUseCase(gate, tokenService),
			auth.NewRegisterUserUseCase(gate, tokenService),
			auth.NewLogoutUserUseCase(gate, notifier),
			auth.NewGetSessionUseCase(gate),
		),
		Task: controller.NewTaskController(taskUseCases),
		Transaction: controller.NewTransactionController(
			transaction.NewListTransactionsUseCase(stores.Transactions),
			transaction.NewCreateTransactionUseCase(transactionEditor, notifier),
			transaction.NewUpdateTransactionUseCase(transactionEditor, notifier),
			transaction.NewDeleteTransactionUseCase(stores.Transactions, notifier),
			transaction.NewSplitTransactionUseCase(transactionEditor, notifier),
		),
		Category: controller.NewCategoryController(
			category.NewListCategoriesUseCase(stores.Categories, stores.Transactions),
			category.NewCreateCategoryUseCase(categoryEditor, notifier),
			category.NewUpdateCategoryUseCase(categoryEditor, notifier),
			category.NewDeleteCategoryUseCase(stores.Categories, notifier),
		),
		Goal: controller.NewGoalController(
			goal.NewListGoalsUseCase(stores.Goals),
			goal.NewCreateGoalUseCase(goalEditor, notifier),
			goal.NewUpdateGoalUseCase(goalEditor, notifier),
			goal.NewDeleteGoalUseCase(stores.Goals, notifier),
		),
		Finance: controller.NewFinanceController(
			dashboard.NewGetFinanceSummaryUseCase(stores),
			dashboard.NewGetBudgetUsageUseCase(stores),
			dashboard.NewGetCategoryBreakdownUseCase(stores),
		),
		Project: controller.NewProjectController(
			project.NewListProjectsUseCase(stores.Projects),
			project.NewCreateProjectUseCase(projectEditor, notifier),
			project.NewUpdateProjectUseCase(projectEditor, notifier),
			project.NewDeleteProjectUseCase(stores.Projects, notifier),
		),
		Event: controller.NewEventController(
			event.NewListEventsUseCase(stores.Events),
			event.NewListEventDaysUseCase(stores.Events),
			event.NewCreateEventUseCase(eventEditor, notifier),
			event.NewUpdateEventUseCase(eventEditor, notifier),
			event.NewDeleteEventUseCase(stores.Events, notifier),
		),
		Draft: controller.NewDraftController(controller.DraftUseCases{
			Registry: registry,
			Begin:    draft.NewBeginDraftUseCase(registry),
			Get:      draft.NewGetDraftUseCase(registry),
			Update:   draft.NewUpdateDraftUseCase(registry),
			Commit:   draft.NewCommitDraftUseCase(registry, notifier),
			Discard:  draft.NewDiscardDraftUseCase(registry),
		}),
		Dashboard: controller.NewDashboardController(dashboard.NewGetOverviewUseCase(stores)),
	}

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.Server.Environment == "test")
	authMiddleware := middleware.NewAuthMiddleware(tokenService, gate)

	return &Injector{
		Config:      cfg,
		Stores:      stores,
		Storage:     storage,
		Gate:        gate,
		Hub:         hub,
		Drafts:      draft.NewExpireDraftsUseCase(registry, cfg.Workspace.DraftTTL),
		RateLimiter: rateLimiter,
		Router:      router.NewRouter(controllers, hub.ServeWS, rateLimiter, cfg.RateLimit, authMiddleware),
	}
}

// Close releases the storage and broker connections.
func (i *Injector) Close() error {
	var errs []error
	for j := len(i.closers) - 1; j >= 0; j-- {
		if err := i.closers[j](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
