// Package seed provides the sample records a fresh workspace starts with.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// Tasks returns the sample tasks.
func Tasks() []entity.Task {
	return []entity.Task{
		{ID: "1", Title: "Complete project proposal", Description: "Finish the proposal for the new client project", Priority: entity.TaskPriorityHigh, Status: entity.TaskStatusTodo, DueDate: date(2023, 10, 15)},
		{ID: "2", Title: "Review budget report", Description: "Review monthly budget and expenses", Priority: entity.TaskPriorityMedium, Status: entity.TaskStatusTodo, DueDate: date(2023, 10, 16)},
		{ID: "3", Title: "Team meeting notes", Description: "Write up the notes from the weekly team meeting", Priority: entity.TaskPriorityLow, Status: entity.TaskStatusCompleted, DueDate: date(2023, 10, 12)},
		{ID: "4", Title: "Update website content", Description: "Update the company website with new information", Priority: entity.TaskPriorityMedium, Status: entity.TaskStatusInProgress, DueDate: date(2023, 10, 18)},
	}
}

// Transactions returns the sample ledger.
func Transactions() []entity.Transaction {
	tx := func(id, description string, amount int64, t entity.TransactionType, category string, day int) entity.Transaction {
		return entity.Transaction{
			ID:          id,
			Description: description,
			Amount:      decimal.NewFromInt(amount),
			Type:        t,
			Category:    category,
			Date:        date(2023, 10, day),
		}
	}
	return []entity.Transaction{
		tx("1", "Salary", 3500, entity.TransactionTypeIncome, "Salary", 1),
		tx("2", "Rent", 1200, entity.TransactionTypeExpense, "Housing", 3),
		tx("3", "Groceries", 150, entity.TransactionTypeExpense, "Food", 5),
		tx("4", "Freelance Work", 800, entity.TransactionTypeIncome, "Freelance", 10),
		tx("5", "Utilities", 200, entity.TransactionTypeExpense, "Utilities", 15),
		tx("6", "Dining Out", 75, entity.TransactionTypeExpense, "Food", 18),
		tx("7", "Transportation", 120, entity.TransactionTypeExpense, "Transport", 20),
	}
}

// Categories returns the sample budget categories.
func Categories() []entity.Category {
	c := func(name string, budget int64, color string) entity.Category {
		return entity.Category{Name: name, Budget: decimal.NewFromInt(budget), Spent: decimal.Zero, Color: color}
	}
	return []entity.Category{
		c("Housing", 1500, "bg-blue-500"),
		c("Food", 500, "bg-green-500"),
		c("Transport", 300, "bg-purple-500"),
		c("Utilities", 250, "bg-yellow-500"),
		c("Entertainment", 200, "bg-red-500"),
	}
}

// Goals returns the sample savings goals.
func Goals() []entity.Goal {
	return []entity.Goal{
		{ID: "1", Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(10000), CurrentAmount: decimal.NewFromInt(5000), Deadline: date(2024, 6, 30)},
		{ID: "2", Name: "Vacation", TargetAmount: decimal.NewFromInt(3000), CurrentAmount: decimal.NewFromInt(1200), Deadline: date(2024, 3, 15)},
	}
}

// Projects returns the sample projects.
func Projects() []entity.Project {
	return []entity.Project{
		{ID: "1", Name: "Marketing Campaign", Description: "Q4 social media and content marketing campaign", Progress: 75, DueDate: date(2023, 12, 15), Status: entity.ProjectStatusActive, TeamSize: 4, TasksCompleted: 15, TotalTasks: 20},
		{ID: "2", Name: "Product Launch", Description: "New product line launch and marketing materials", Progress: 40, DueDate: date(2024, 1, 30), Status: entity.ProjectStatusActive, TeamSize: 6, TasksCompleted: 8, TotalTasks: 20},
		{ID: "3", Name: "Website Redesign", Description: "Complete overhaul of company website and brand refresh", Progress: 100, DueDate: date(2023, 9, 10), Status: entity.ProjectStatusCompleted, TeamSize: 3, TasksCompleted: 12, TotalTasks: 12},
	}
}

// Events returns the sample calendar events.
func Events() []entity.CalendarEvent {
	meetingEnd := at(2023, 10, 15, 11, 0)
	reviewEnd := at(2023, 10, 5, 15, 30)
	return []entity.CalendarEvent{
		{ID: "1", Title: "Team Meeting", Description: "Weekly team sync", StartDate: at(2023, 10, 15, 10, 0), EndDate: &meetingEnd, Type: entity.CalendarEventMeeting, Participants: []string{"John", "Sarah", "Mike"}},
		{ID: "2", Title: "Project Deadline", Description: "Submit final project deliverables", StartDate: at(2023, 10, 20, 17, 0), Type: entity.CalendarEventTask},
		{ID: "3", Title: "Budget Review", Description: "Monthly budget and expense review", StartDate: at(2023, 10, 5, 14, 0), EndDate: &reviewEnd, Type: entity.CalendarEventFinance},
	}
}
