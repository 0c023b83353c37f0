package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/finance"
)

// dueSoonWindow is how far ahead a project deadline counts as due this week.
const dueSoonWindow = 7 * 24 * time.Hour

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	Now time.Time // Zero means the current time
}

// TaskStats counts tasks by completion.
type TaskStats struct {
	Total     int
	Completed int
	Pending   int
}

// ProjectStats counts projects.
type ProjectStats struct {
	Total       int
	Active      int
	DueThisWeek int
}

// BudgetStats compares categorised spending with the total budget.
type BudgetStats struct {
	Spent        decimal.Decimal
	Budget       decimal.Decimal
	WidthPercent float64
	LabelPercent int64
	Display      string // Spent, formatted in the display currency
}

// GetOverviewOutput represents the dashboard cards.
type GetOverviewOutput struct {
	Tasks       TaskStats
	Projects    ProjectStats
	Finance     finance.Summary
	Budget      BudgetStats
	Goals       int
	EventsToday []entity.CalendarEvent
}

// GetOverviewUseCase aggregates every module into the dashboard cards.
type GetOverviewUseCase struct {
	stores Stores
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(stores Stores) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		stores: stores,
	}
}

// Execute computes the overview.
func (uc *GetOverviewUseCase) Execute(_ context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	output := &GetOverviewOutput{
		Goals:       uc.stores.Goals.Len(),
		EventsToday: uc.stores.Events.List(func(e entity.CalendarEvent) bool { return entity.SameDay(e.StartDate, now) }),
	}

	for _, t := range uc.stores.Tasks.List() {
		output.Tasks.Total++
		if t.Status == entity.TaskStatusCompleted {
			output.Tasks.Completed++
		}
	}
	output.Tasks.Pending = output.Tasks.Total - output.Tasks.Completed

	for _, p := range uc.stores.Projects.List() {
		output.Projects.Total++
		if p.Status != entity.ProjectStatusActive {
			continue
		}
		output.Projects.Active++
		if until := p.DueDate.Sub(now); until >= -24*time.Hour && until <= dueSoonWindow {
			output.Projects.DueThisWeek++
		}
	}

	transactions := uc.stores.Transactions.List()
	output.Finance = finance.Summarize(transactions)
	output.Budget = budgetStats(finance.WithSpent(uc.stores.Categories.List(), transactions))

	return output, nil
}

func budgetStats(categories []entity.Category) BudgetStats {
	total := entity.Category{Budget: decimal.Zero, Spent: decimal.Zero}
	for _, c := range categories {
		total.Budget = total.Budget.Add(c.Budget)
		total.Spent = total.Spent.Add(c.Spent)
	}

	width, label := finance.PercentOfBudget(total)
	return BudgetStats{
		Spent:        total.Spent,
		Budget:       total.Budget,
		WidthPercent: width,
		LabelPercent: label,
		Display:      finance.FormatAmount(total.Spent),
	}
}
