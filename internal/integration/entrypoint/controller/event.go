package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/productivity-hub/backend/internal/application/usecase/event"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
)

// EventController handles calendar endpoints.
type EventController struct {
	listUseCase   *event.ListEventsUseCase
	daysUseCase   *event.ListEventDaysUseCase
	createUseCase *event.CreateEventUseCase
	updateUseCase *event.UpdateEventUseCase
	deleteUseCase *event.DeleteEventUseCase
}

// NewEventController creates a new event controller instance.
func NewEventController(
	listUseCase *event.ListEventsUseCase,
	daysUseCase *event.ListEventDaysUseCase,
	createUseCase *event.CreateEventUseCase,
	updateUseCase *event.UpdateEventUseCase,
	deleteUseCase *event.DeleteEventUseCase,
) *EventController {
	return &EventController{
		listUseCase:   listUseCase,
		daysUseCase:   daysUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /events requests. The optional day query parameter
// narrows the list to events starting on that date.
func (c *EventController) List(ctx *gin.Context) {
	var input event.ListEventsInput
	if s := ctx.Query("day"); s != "" {
		day, err := time.Parse(entity.DateLayout, s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Invalid day format",
				Details: err.Error(),
			})
			return
		}
		input.Day = &day
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEventListResponse(output.Events))
}

// Days handles GET /events/days requests. Year and month default to the
// current month.
func (c *EventController) Days(ctx *gin.Context) {
	today := entity.Today()
	year, month := today.Year(), int(today.Month())

	var err error
	if s := ctx.Query("year"); s != "" {
		if year, err = strconv.Atoi(s); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year"})
			return
		}
	}
	if s := ctx.Query("month"); s != "" {
		if month, err = strconv.Atoi(s); err != nil || month < 1 || month > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid month"})
			return
		}
	}

	output, err := c.daysUseCase.Execute(ctx.Request.Context(), event.ListEventDaysInput{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.EventDaysResponse{Year: year, Month: month, Days: output.Days})
}

// Create handles POST /events requests.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	day, err := req.ParseDay()
	if err != nil {
		handleError(ctx, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), event.CreateEventInput{Day: day, Patch: patch})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToEventResponse(output.Event))
}

// Update handles PATCH /events/:id requests.
func (c *EventController) Update(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), event.UpdateEventInput{
		ID:    ctx.Param("id"),
		Patch: patch,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToEventResponse(output.Event))
}

// Delete handles DELETE /events/:id requests.
func (c *EventController) Delete(ctx *gin.Context) {
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), event.DeleteEventInput{ID: ctx.Param("id")}); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
