package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/productivity-hub/backend/internal/application/usecase/draft"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
)

// DraftUseCases groups the draft use cases served by DraftController.
type DraftUseCases struct {
	Registry *draft.Registry
	Begin    *draft.BeginDraftUseCase
	Get      *draft.GetDraftUseCase
	Update   *draft.UpdateDraftUseCase
	Commit   *draft.CommitDraftUseCase
	Discard  *draft.DiscardDraftUseCase
}

// DraftController exposes the record editors directly.
type DraftController struct {
	uc DraftUseCases
}

// NewDraftController creates a new draft controller instance.
func NewDraftController(uc DraftUseCases) *DraftController {
	return &DraftController{uc: uc}
}

// Kinds handles GET /drafts requests.
func (c *DraftController) Kinds(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"kinds": c.uc.Registry.Kinds()})
}

// Begin handles POST /drafts/:kind requests.
func (c *DraftController) Begin(ctx *gin.Context) {
	var req dto.BeginDraftRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			badRequest(ctx, err)
			return
		}
	}

	v, err := c.uc.Begin.Execute(ctx.Request.Context(), draft.BeginDraftInput{
		Kind:     ctx.Param("kind"),
		SourceID: req.SourceID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToDraftResponse(v))
}

// Get handles GET /drafts/:kind/:handle requests.
func (c *DraftController) Get(ctx *gin.Context) {
	v, err := c.uc.Get.Execute(ctx.Request.Context(), c.input(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDraftResponse(v))
}

// Update handles PATCH /drafts/:kind/:handle requests. The body uses the
// same format as the kind's create endpoint.
func (c *DraftController) Update(ctx *gin.Context) {
	in := c.input(ctx)
	if _, err := c.uc.Registry.Desk(in.Kind); err != nil {
		handleError(ctx, err)
		return
	}

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	patch, err := dto.DecodePatch(in.Kind, body)
	if err != nil {
		handleError(ctx, domainerror.NewRecordError(domainerror.ErrCodeInvalidDraftBody, "Invalid draft body", err))
		return
	}

	v, err := c.uc.Update.Execute(ctx.Request.Context(), draft.UpdateDraftInput{
		Kind:   in.Kind,
		Handle: in.Handle,
		Patch:  patch,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDraftResponse(v))
}

// Commit handles POST /drafts/:kind/:handle/commit requests.
func (c *DraftController) Commit(ctx *gin.Context) {
	v, err := c.uc.Commit.Execute(ctx.Request.Context(), c.input(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDraftResponse(v))
}

// Discard handles DELETE /drafts/:kind/:handle requests.
func (c *DraftController) Discard(ctx *gin.Context) {
	if err := c.uc.Discard.Execute(ctx.Request.Context(), c.input(ctx)); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *DraftController) input(ctx *gin.Context) draft.DraftInput {
	return draft.DraftInput{
		Kind:   ctx.Param("kind"),
		Handle: ctx.Param("handle"),
	}
}
