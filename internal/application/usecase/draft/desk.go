// Package draft exposes the record editors as a uniform draft workflow:
// begin, edit, commit or discard.
package draft

import (
	"time"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
)

// View is a kind-independent snapshot of a draft.
type View struct {
	Handle    string
	Kind      string
	Mode      editor.Mode
	SourceID  string
	State     editor.State
	Record    any
	Missing   []string
	CanSave   bool
	UpdatedAt time.Time
}

// Patch is implemented by the entity patch types.
type Patch[T any] interface {
	Apply(T) T
}

// Desk is the type-erased face of one editor.
type Desk interface {
	Kind() string
	BeginAdd() View
	BeginEdit(id string) (View, error)
	Get(handle string) (View, error)
	// Apply edits the draft with patch, which must be the kind's patch type.
	Apply(handle string, patch any) (View, error)
	Commit(handle string) (View, error)
	Discard(handle string) bool
	Expire(before time.Time) int
}

type desk[T entity.Record[T], P Patch[T]] struct {
	editor *editor.Editor[T]
}

// NewDesk wraps an editor whose drafts are edited with patches of type P.
func NewDesk[T entity.Record[T], P Patch[T]](ed *editor.Editor[T]) Desk {
	return &desk[T, P]{editor: ed}
}

func (d *desk[T, P]) Kind() string {
	return d.editor.Kind()
}

func (d *desk[T, P]) BeginAdd() View {
	return toView(d.editor.BeginAdd())
}

func (d *desk[T, P]) BeginEdit(id string) (View, error) {
	dr, err := d.editor.BeginEdit(id)
	if err != nil {
		return View{}, err
	}
	return toView(dr), nil
}

func (d *desk[T, P]) Get(handle string) (View, error) {
	dr, err := d.editor.Get(handle)
	if err != nil {
		return View{}, err
	}
	return toView(dr), nil
}

func (d *desk[T, P]) Apply(handle string, patch any) (View, error) {
	p, ok := patch.(P)
	if !ok {
		return View{}, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidDraftBody,
			"patch does not fit a "+d.editor.Kind()+" draft",
			nil,
		)
	}
	dr, err := d.editor.Update(handle, p.Apply)
	if err != nil {
		return View{}, err
	}
	return toView(dr), nil
}

func (d *desk[T, P]) Commit(handle string) (View, error) {
	saved, mode, err := d.editor.Commit(handle)
	if err != nil {
		return View{}, err
	}
	return View{
		Handle:    handle,
		Kind:      d.editor.Kind(),
		Mode:      mode,
		SourceID:  saved.GetID(),
		State:     editor.StateClosed,
		Record:    saved,
		CanSave:   true,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (d *desk[T, P]) Discard(handle string) bool {
	return d.editor.Discard(handle)
}

func (d *desk[T, P]) Expire(before time.Time) int {
	return d.editor.Expire(before)
}

func toView[T any](d editor.Draft[T]) View {
	return View{
		Handle:    d.Handle,
		Kind:      d.Kind,
		Mode:      d.Mode,
		SourceID:  d.SourceID,
		State:     d.State,
		Record:    d.Record,
		Missing:   d.Missing,
		CanSave:   d.CanSave(),
		UpdatedAt: d.UpdatedAt,
	}
}
