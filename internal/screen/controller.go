// Package screen implements the resource screens of the console. One generic
// controller drives the load / form / submit / delete workflow; each entity
// contributes a declarative configuration (defaults, validation, payload
// mapping, wording) instead of repeating the flow.
package screen

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/notify"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

// Form holds the string-valued field state of the open modal. Numeric and
// foreign-key fields are parsed when the payload is built, never before.
type Form map[string]string

func (f Form) clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Msg is a title/text pair for a notification.
type Msg struct {
	Title string
	Text  string
}

// Confirmation describes a yes/no dialog.
type Confirmation struct {
	Title        string
	Text         string
	ConfirmLabel string
	CancelLabel  string
}

// Option is one selectable value of a foreign-key or enum field.
type Option struct {
	Value string
	Label string
}

// Field describes one form field for rendering. Options is non-nil for select
// fields and is re-evaluated after each load so foreign-key choices stay fresh.
type Field struct {
	Name     string
	Label    string
	Required bool
	Options  func() []Option
}

// Texts carries the fixed wording of one screen.
type Texts struct {
	LoadBanner     string
	LoadError      Msg
	CreateProgress Msg
	UpdateProgress Msg
	DeleteProgress Msg
	Duplicate      Msg
	Constraint     Msg
	Conflict       *Msg // set only where the backend can answer with a schedule conflict
	CreateError    Msg
	UpdateError    Msg
	DeleteError    Msg
}

// Config parameterizes the controller for one entity.
type Config[T any] struct {
	Entity string
	Texts  Texts
	Fields []Field

	// Load fetches the primary list and any auxiliary lists in one joined batch.
	Load     func(ctx context.Context) ([]T, error)
	ID       func(T) int64
	Defaults func() Form
	FormOf   func(T) Form
	// Validate returns the notification to show, or nil when the form is valid.
	Validate func(Form) *Msg
	// Derive recomputes derived fields after one field changed. Optional.
	Derive func(f Form, changed string)

	Create func(ctx context.Context, f Form) error
	Update func(ctx context.Context, id int64, f Form) error
	Remove func(ctx context.Context, id int64) error

	ConfirmDelete func(rec *T, id int64) Confirmation
	DeleteSuccess func(rec *T, id int64) Msg
	SaveSuccess   func(mode Mode, f Form) Msg
}

var validationMsg = Msg{
	Title: "Erreur de validation",
	Text:  "Les données saisies ne sont pas valides. Veuillez vérifier vos informations.",
}

// Controller is the per-screen state machine: Loading → Ready, with the modal
// closed or open in create/edit mode, and a non-blocking error banner.
type Controller[T any] struct {
	cfg Config[T]
	nt  notify.Notifier
	log zerolog.Logger

	phase     Phase
	banner    string
	items     []T
	modalOpen bool
	mode      Mode
	editingID int64
	form      Form
}

func NewController[T any](cfg Config[T], nt notify.Notifier, log zerolog.Logger) *Controller[T] {
	return &Controller[T]{
		cfg:   cfg,
		nt:    nt,
		log:   log.With().Str("screen", cfg.Entity).Logger(),
		phase: PhaseLoading,
	}
}

func (c *Controller[T]) Phase() Phase    { return c.phase }
func (c *Controller[T]) Banner() string  { return c.banner }
func (c *Controller[T]) Items() []T      { return c.items }
func (c *Controller[T]) ModalOpen() bool { return c.modalOpen }
func (c *Controller[T]) Mode() Mode      { return c.mode }
func (c *Controller[T]) Fields() []Field { return c.cfg.Fields }

func (c *Controller[T]) FormValue(name string) string { return c.form[name] }

// FormSnapshot returns a copy of the current form state.
func (c *Controller[T]) FormSnapshot() Form { return c.form.clone() }

// Record returns the loaded record with the given id.
func (c *Controller[T]) Record(id int64) (T, bool) {
	if rec := c.find(id); rec != nil {
		return *rec, true
	}
	var zero T
	return zero, false
}

// Load fetches the screen's lists. On failure the banner is set, a network or
// generic notification is emitted, and the previous items are kept so retry
// stays possible.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.phase = PhaseLoading
	items, err := c.cfg.Load(ctx)
	c.phase = PhaseReady
	if err != nil {
		c.banner = c.cfg.Texts.LoadBanner
		c.log.Error().Err(err).Msg("chargement échoué")
		if api.Classify(err) == api.ReasonNetwork {
			notify.NetworkError(c.nt)
		} else {
			c.nt.Error(c.cfg.Texts.LoadError.Title, c.cfg.Texts.LoadError.Text)
		}
		return err
	}
	c.items = items
	c.banner = ""
	return nil
}

// OpenCreate resets the form to entity defaults and opens the modal.
func (c *Controller[T]) OpenCreate() {
	c.mode = ModeCreate
	c.editingID = 0
	c.form = c.cfg.Defaults()
	c.modalOpen = true
}

// OpenEdit populates the form from the given record and opens the modal.
func (c *Controller[T]) OpenEdit(rec T) {
	c.mode = ModeEdit
	c.editingID = c.cfg.ID(rec)
	c.form = c.cfg.FormOf(rec)
	c.modalOpen = true
}

func (c *Controller[T]) CloseModal() {
	c.modalOpen = false
	c.form = nil
}

// SetField updates one form field and recomputes derived fields.
func (c *Controller[T]) SetField(name, value string) {
	if !c.modalOpen {
		return
	}
	c.form[name] = value
	if c.cfg.Derive != nil {
		c.cfg.Derive(c.form, name)
	}
}

// Submit validates the form and runs create or update depending on the modal
// mode. Validation failures never reach the gateway. On API failure the modal
// stays open with the operator's input intact.
func (c *Controller[T]) Submit(ctx context.Context) error {
	if !c.modalOpen {
		return nil
	}
	if m := c.cfg.Validate(c.form); m != nil {
		c.nt.Error(m.Title, m.Text)
		return nil
	}

	progress := c.cfg.Texts.CreateProgress
	if c.mode == ModeEdit {
		progress = c.cfg.Texts.UpdateProgress
	}
	closeLoading := c.nt.Loading(progress.Title, progress.Text)
	var err error
	if c.mode == ModeEdit {
		err = c.cfg.Update(ctx, c.editingID, c.form)
	} else {
		err = c.cfg.Create(ctx, c.form)
	}
	closeLoading()
	if err != nil {
		c.log.Warn().Err(err).Msg("sauvegarde échouée")
		c.reportSaveFailure(err)
		return err
	}

	mode, form := c.mode, c.form
	c.CloseModal()
	_ = c.Load(ctx) // reload failures notify on their own
	m := c.cfg.SaveSuccess(mode, form)
	c.nt.Success(m.Title, m.Text)
	return nil
}

// Delete asks for confirmation, then deletes and reloads. A declined dialog
// makes no API call; a failed delete leaves the visible list untouched.
func (c *Controller[T]) Delete(ctx context.Context, id int64) error {
	rec := c.find(id)
	conf := c.cfg.ConfirmDelete(rec, id)
	if !c.nt.Confirm(conf.Title, conf.Text, conf.ConfirmLabel, conf.CancelLabel) {
		return nil
	}

	closeLoading := c.nt.Loading(c.cfg.Texts.DeleteProgress.Title, c.cfg.Texts.DeleteProgress.Text)
	err := c.cfg.Remove(ctx, id)
	closeLoading()
	if err != nil {
		c.log.Warn().Err(err).Int64("id", id).Msg("suppression échouée")
		switch api.Classify(err) {
		case api.ReasonConstraint:
			c.nt.Error(c.cfg.Texts.Constraint.Title, c.cfg.Texts.Constraint.Text)
		case api.ReasonNetwork:
			notify.NetworkError(c.nt)
		default:
			c.nt.Error(c.cfg.Texts.DeleteError.Title, c.cfg.Texts.DeleteError.Text)
		}
		return err
	}

	_ = c.Load(ctx)
	m := c.cfg.DeleteSuccess(rec, id)
	c.nt.Success(m.Title, m.Text)
	return nil
}

func (c *Controller[T]) reportSaveFailure(err error) {
	t := c.cfg.Texts
	switch api.Classify(err) {
	case api.ReasonDuplicate:
		if t.Duplicate.Title == "" {
			c.reportGenericSave()
			return
		}
		c.nt.Error(t.Duplicate.Title, t.Duplicate.Text)
	case api.ReasonValidation:
		c.nt.Error(validationMsg.Title, validationMsg.Text)
	case api.ReasonConstraint:
		c.nt.Error(t.Constraint.Title, t.Constraint.Text)
	case api.ReasonConflict:
		if t.Conflict != nil {
			c.nt.Error(t.Conflict.Title, t.Conflict.Text)
			return
		}
		c.reportGenericSave()
	case api.ReasonNetwork:
		notify.NetworkError(c.nt)
	default:
		c.reportGenericSave()
	}
}

func (c *Controller[T]) reportGenericSave() {
	t := c.cfg.Texts
	if c.mode == ModeEdit {
		c.nt.Error(t.UpdateError.Title, t.UpdateError.Text)
		return
	}
	c.nt.Error(t.CreateError.Title, t.CreateError.Text)
}

func (c *Controller[T]) find(id int64) *T {
	for i := range c.items {
		if c.cfg.ID(c.items[i]) == id {
			return &c.items[i]
		}
	}
	return nil
}
