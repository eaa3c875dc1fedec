// Package dialog shows native file pickers and message boxes.
package dialog

import (
	"errors"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/logger"
)

// ErrCancelled is returned when the user dismisses a picker without
// choosing a file.
var ErrCancelled = dialog.ErrCancelled

// Filter restricts a picker to files with the given extensions.
type Filter struct {
	Description string
	Extensions  []string
}

// Native opens the platform's dialogs. It blocks until the user answers.
type Native struct{}

// OpenFile asks for an existing file.
func (Native) OpenFile(title string, filters ...Filter) (string, error) {
	return build(title, filters).Load()
}

// SaveFile asks for a destination path.
func (Native) SaveFile(title string, filters ...Filter) (string, error) {
	return build(title, filters).Save()
}

// Error shows a modal error message.
func (Native) Error(title, message string) {
	logger.Named("dialog").Warn(message, zap.String("title", title))
	dialog.Message("%s", message).Title(title).Error()
}

func build(title string, filters []Filter) *dialog.FileBuilder {
	b := dialog.File().Title(title)
	for _, f := range filters {
		b = b.Filter(f.Description, f.Extensions...)
	}
	return b
}

// Cancelled reports whether err means the user dismissed the dialog.
func Cancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
