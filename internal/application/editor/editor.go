// Package editor implements the staging area used to create and edit
// records. A draft is opened from a template or a copy of an existing
// record, edited by immutable replacement, and only touches the store when
// it is committed.
package editor

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// State is the lifecycle position of a draft.
type State string

const (
	StateOpen   State = "open"
	StateSaving State = "saving"
	StateClosed State = "closed"
)

// Mode tells whether a commit appends or replaces.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Draft is an uncommitted copy of a record.
type Draft[T any] struct {
	Handle    string
	Kind      string
	Mode      Mode
	SourceID  string // Id of the record being edited; empty for ModeCreate
	Record    T
	State     State
	Missing   []string
	UpdatedAt time.Time
}

// CanSave reports whether no required field is empty.
func (d Draft[T]) CanSave() bool {
	return len(d.Missing) == 0
}

// Validator checks domain rules beyond required fields when a draft is
// committed. sourceID is empty for new records.
type Validator[T any] func(record T, sourceID string) error

// Option configures an Editor.
type Option[T any] func(*config[T])

type config[T any] struct {
	validate Validator[T]
	conflict func(T) error
	now      func() time.Time
}

// WithValidator sets the commit-time validator.
func WithValidator[T any](v Validator[T]) Option[T] {
	return func(c *config[T]) { c.validate = v }
}

// WithConflict sets the error reported when a commit would give the record
// an id another record already holds.
func WithConflict[T any](f func(record T) error) Option[T] {
	return func(c *config[T]) { c.conflict = f }
}

// WithClock overrides the clock used to stamp drafts.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *config[T]) { c.now = now }
}

// Editor stages drafts for one record store.
type Editor[T entity.Record[T]] struct {
	kind     string
	store    *store.Store[T]
	template func() T
	validate Validator[T]
	conflict func(T) error
	now      func() time.Time

	mu     sync.Mutex
	drafts map[string]*Draft[T]
}

// New creates an editor for s. template seeds drafts opened with BeginAdd.
func New[T entity.Record[T]](kind string, s *store.Store[T], template func() T, opts ...Option[T]) *Editor[T] {
	cfg := config[T]{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Editor[T]{
		kind:     kind,
		store:    s,
		template: template,
		validate: cfg.validate,
		conflict: cfg.conflict,
		now:      cfg.now,
		drafts:   make(map[string]*Draft[T]),
	}
}

// Kind returns the record kind this editor stages.
func (e *Editor[T]) Kind() string {
	return e.kind
}

// Store returns the store commits are applied to.
func (e *Editor[T]) Store() *store.Store[T] {
	return e.store
}

// BeginAdd opens a draft seeded from the editor template.
func (e *Editor[T]) BeginAdd() Draft[T] {
	return e.BeginAddFrom(e.template())
}

// BeginAddFrom opens a create draft seeded from record.
func (e *Editor[T]) BeginAddFrom(record T) Draft[T] {
	return e.open(ModeCreate, "", record)
}

// BeginEdit opens a draft holding a copy of the record with the given id.
func (e *Editor[T]) BeginEdit(id string) (Draft[T], error) {
	record, ok := e.store.Get(id)
	if !ok {
		return Draft[T]{}, domainerror.NewNotFoundError(e.kind, id)
	}
	return e.open(ModeEdit, id, record), nil
}

func (e *Editor[T]) open(mode Mode, sourceID string, record T) Draft[T] {
	d := &Draft[T]{
		Handle:    uuid.NewString(),
		Kind:      e.kind,
		Mode:      mode,
		SourceID:  sourceID,
		Record:    record,
		State:     StateOpen,
		Missing:   record.MissingFields(),
		UpdatedAt: e.now(),
	}

	e.mu.Lock()
	e.drafts[d.Handle] = d
	e.mu.Unlock()

	return *d
}

// Get returns the draft with the given handle.
func (e *Editor[T]) Get(handle string) (Draft[T], error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d, ok := e.drafts[handle]
	if !ok {
		return Draft[T]{}, draftNotFound(handle)
	}
	return *d, nil
}

// Update replaces the draft record with edit applied to a copy of it.
func (e *Editor[T]) Update(handle string, edit func(T) T) (Draft[T], error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d, ok := e.drafts[handle]
	if !ok {
		return Draft[T]{}, draftNotFound(handle)
	}
	if d.State != StateOpen {
		return Draft[T]{}, draftNotOpen(handle)
	}

	record := edit(d.Record)
	d.Record = record
	d.Missing = record.MissingFields()
	d.UpdatedAt = e.now()
	return *d, nil
}

// Commit writes the draft to the store: a create draft is appended with a
// fresh id, an edit draft replaces its source record in place. Commit is
// refused while required fields are empty, the validator fails or the
// record's id is already taken; the draft then stays open. On success the draft is closed and forgotten.
func (e *Editor[T]) Commit(handle string) (T, Mode, error) {
	var zero T

	e.mu.Lock()
	d, ok := e.drafts[handle]
	if !ok {
		e.mu.Unlock()
		return zero, "", draftNotFound(handle)
	}
	if d.State != StateOpen {
		e.mu.Unlock()
		return zero, "", draftNotOpen(handle)
	}
	if missing := d.Record.MissingFields(); len(missing) > 0 {
		d.Missing = missing
		e.mu.Unlock()
		return zero, "", domainerror.NewMissingFieldsError(missing)
	}
	if e.validate != nil {
		if err := e.validate(d.Record, d.SourceID); err != nil {
			e.mu.Unlock()
			return zero, "", err
		}
	}
	d.State = StateSaving
	record, mode, sourceID := d.Record, d.Mode, d.SourceID
	e.mu.Unlock()

	var (
		saved T
		err   error
	)
	if mode == ModeCreate {
		saved, err = e.store.Insert(record)
	} else {
		saved, err = e.store.Update(sourceID, func(T) T { return record })
	}

	if errors.Is(err, domainerror.ErrRecordExists) {
		e.mu.Lock()
		d.State = StateOpen
		e.mu.Unlock()
		return zero, "", e.conflictError(record)
	}

	e.mu.Lock()
	d.State = StateClosed
	delete(e.drafts, handle)
	e.mu.Unlock()

	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return zero, "", domainerror.NewNotFoundError(e.kind, sourceID)
	}
	if err != nil {
		return zero, "", err
	}
	return saved, mode, nil
}

func (e *Editor[T]) conflictError(record T) error {
	if e.conflict != nil {
		return e.conflict(record)
	}
	return domainerror.NewExistsError(e.kind, record.GetID())
}

// Discard closes the draft without touching the store. It reports whether
// an open draft was discarded.
func (e *Editor[T]) Discard(handle string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	d, ok := e.drafts[handle]
	if !ok || d.State != StateOpen {
		return false
	}
	d.State = StateClosed
	delete(e.drafts, handle)
	return true
}

// Expire discards open drafts not touched since before and returns how
// many were dropped.
func (e *Editor[T]) Expire(before time.Time) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for handle, d := range e.drafts {
		if d.State == StateOpen && d.UpdatedAt.Before(before) {
			d.State = StateClosed
			delete(e.drafts, handle)
			n++
		}
	}
	return n
}

// Open returns the number of drafts currently open.
func (e *Editor[T]) Open() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.drafts)
}

func draftNotFound(handle string) error {
	return domainerror.NewRecordError(
		domainerror.ErrCodeDraftNotFound,
		"draft "+handle+" not found",
		domainerror.ErrDraftNotFound,
	)
}

func draftNotOpen(handle string) error {
	return domainerror.NewRecordError(
		domainerror.ErrCodeDraftNotOpen,
		"draft "+handle+" is not open",
		domainerror.ErrDraftNotOpen,
	)
}

// Create stages a new record from the template, applies edit and commits
// it in one step. A refused commit discards the draft.
func (e *Editor[T]) Create(edit func(T) T) (T, error) {
	return e.CreateFrom(e.template(), edit)
}

// CreateFrom is Create with an explicit starting record.
func (e *Editor[T]) CreateFrom(record T, edit func(T) T) (T, error) {
	d := e.BeginAddFrom(record)
	return e.apply(d.Handle, edit)
}

// Edit stages a copy of the record with the given id, applies edit and
// commits it in one step. A refused commit discards the draft.
func (e *Editor[T]) Edit(id string, edit func(T) T) (T, error) {
	d, err := e.BeginEdit(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.apply(d.Handle, edit)
}

func (e *Editor[T]) apply(handle string, edit func(T) T) (T, error) {
	if _, err := e.Update(handle, edit); err != nil {
		e.Discard(handle)
		var zero T
		return zero, err
	}
	saved, _, err := e.Commit(handle)
	if err != nil {
		e.Discard(handle)
		var zero T
		return zero, err
	}
	return saved, nil
}
