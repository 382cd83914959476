// Package widget implements the todo list controller: it reads an input,
// appends items to a container and removes them again. The controller never
// looks anything up on its own; the host hands it every element it touches.
package widget

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/model"
)

// Input is the text field items are read from.
type Input interface {
	Value() string
	SetValue(s string)
}

// Container holds the rendered items in order.
type Container interface {
	Append(it model.Item)
	Remove(id model.ItemID) bool
	Len() int
	Items() []model.Item
}

// Messages are the user-facing texts the controller emits.
type Messages struct {
	EmptyInput string
}

// DefaultMessages are used when no localized set is supplied.
var DefaultMessages = Messages{
	EmptyInput: "Please enter a to-do.",
}

// Controller mediates the add and delete intents.
type Controller struct {
	input  Input
	list   Container
	notify Notifier

	newID    func() model.ItemID
	logger   *log.Logger
	messages Messages
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDFunc overrides how item ids are generated.
func WithIDFunc(fn func() model.ItemID) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMessages sets the user-facing texts.
func WithMessages(m Messages) Option {
	return func(c *Controller) {
		if m.EmptyInput != "" {
			c.messages = m
		}
	}
}

// New wires a controller to its elements. All three are required.
func New(input Input, list Container, notify Notifier, opts ...Option) (*Controller, error) {
	switch {
	case input == nil:
		return nil, fmt.Errorf("input: %w", ErrMissingElement)
	case list == nil:
		return nil, fmt.Errorf("container: %w", ErrMissingElement)
	case notify == nil:
		return nil, fmt.Errorf("notifier: %w", ErrMissingElement)
	}
	c := &Controller{
		input:    input,
		list:     list,
		notify:   notify,
		newID:    model.NewItemID,
		logger:   log.New(io.Discard),
		messages: DefaultMessages,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Bind makes every trigger run the same add action.
func (c *Controller) Bind(triggers ...Trigger) {
	for _, t := range triggers {
		t.OnActivate(c.activate)
	}
}

// activate is the trigger handler. The empty-input case has already been
// reported through the notifier, so the error is dropped here.
func (c *Controller) activate() {
	_, _ = c.Add()
}

// Add reads the input, and when the trimmed value is non-empty appends a new
// item at the end of the container and clears the input. An empty value
// notifies the user and changes nothing.
func (c *Controller) Add() (model.Item, error) {
	title := Trim(c.input.Value())
	if title == "" {
		c.logger.Debug("empty input rejected")
		c.notify.Notify(c.messages.EmptyInput)
		return model.Item{}, ErrEmptyInput
	}

	it := model.Item{ID: c.newID(), Title: title}
	c.list.Append(it)
	c.input.SetValue("")
	c.logger.Debug("item added", "id", it.ID, "count", c.list.Len())
	return it, nil
}

// Delete removes exactly the item with the given id.
func (c *Controller) Delete(id model.ItemID) error {
	if !c.list.Remove(id) {
		return fmt.Errorf("delete %s: %w", id, ErrItemNotFound)
	}
	c.logger.Debug("item deleted", "id", id, "count", c.list.Len())
	return nil
}

// Items returns the current items in order.
func (c *Controller) Items() []model.Item { return c.list.Items() }

// Trim strips leading and trailing white space the way Add does: Unicode
// white space and byte order marks, but not U+0085 (NEL).
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\uFEFF' || unicode.IsSpace(r) && r != '\u0085'
	})
}
