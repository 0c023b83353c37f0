package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/productivity-hub/backend/internal/application/usecase/task"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
)

// TaskUseCases groups the task use cases served by TaskController.
type TaskUseCases struct {
	List         *task.ListTasksUseCase
	Board        *task.GetTaskBoardUseCase
	Create       *task.CreateTaskUseCase
	QuickAdd     *task.QuickAddTaskUseCase
	Update       *task.UpdateTaskUseCase
	ChangeStatus *task.ChangeTaskStatusUseCase
	Toggle       *task.ToggleTaskUseCase
	Relocate     *task.RelocateTaskUseCase
	Delete       *task.DeleteTaskUseCase
}

// TaskController handles task endpoints.
type TaskController struct {
	uc TaskUseCases
}

// NewTaskController creates a new task controller instance.
func NewTaskController(uc TaskUseCases) *TaskController {
	return &TaskController{uc: uc}
}

// List handles GET /tasks requests.
func (c *TaskController) List(ctx *gin.Context) {
	input := task.ListTasksInput{Query: ctx.Query("q")}
	if s := ctx.Query("status"); s != "" {
		status := entity.TaskStatus(s)
		input.Status = &status
	}

	output, err := c.uc.List.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// Board handles GET /tasks/board requests.
func (c *TaskController) Board(ctx *gin.Context) {
	output, err := c.uc.Board.Execute(ctx.Request.Context(), task.GetTaskBoardInput{Query: ctx.Query("q")})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBoardResponse(output.Columns))
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	var req dto.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.uc.Create.Execute(ctx.Request.Context(), task.CreateTaskInput{Patch: patch})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task))
}

// QuickAdd handles POST /tasks/quick requests.
func (c *TaskController) QuickAdd(ctx *gin.Context) {
	var req dto.QuickAddTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.uc.QuickAdd.Execute(ctx.Request.Context(), task.QuickAddTaskInput{Title: req.Title})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task))
}

// Update handles PATCH /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	var req dto.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.uc.Update.Execute(ctx.Request.Context(), task.UpdateTaskInput{
		ID:    ctx.Param("id"),
		Patch: patch,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// ChangeStatus handles PATCH /tasks/:id/status requests.
func (c *TaskController) ChangeStatus(ctx *gin.Context) {
	var req dto.ChangeTaskStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.uc.ChangeStatus.Execute(ctx.Request.Context(), task.ChangeTaskStatusInput{
		ID:     ctx.Param("id"),
		Status: entity.TaskStatus(req.Status),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Toggle handles POST /tasks/:id/toggle requests.
func (c *TaskController) Toggle(ctx *gin.Context) {
	output, err := c.uc.Toggle.Execute(ctx.Request.Context(), task.ToggleTaskInput{ID: ctx.Param("id")})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Drop handles POST /tasks/board/drop requests.
func (c *TaskController) Drop(ctx *gin.Context) {
	var req dto.DropRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.uc.Relocate.Execute(ctx.Request.Context(), task.RelocateTaskInput{
		ID:       req.ID,
		ToBucket: req.To,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToRelocatedResponse(output.Relocated))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	if err := c.uc.Delete.Execute(ctx.Request.Context(), task.DeleteTaskInput{ID: ctx.Param("id")}); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
