package renamer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mydehq/tagrename/internal/types"
)

// Status of a single rename operation
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// EventType classifies progress events
type EventType string

const (
	EventInfo    EventType = "info"
	EventSuccess EventType = "success"
	EventWarning EventType = "warning"
	EventError   EventType = "error"
)

// Event is emitted for every file handled by Execute
type Event struct {
	Type    EventType
	Message string
}

// EventHandler receives progress events
type EventHandler func(Event)

// RenameOperation records the outcome of renaming one file
type RenameOperation struct {
	SourcePath string
	TargetPath string
	Status     Status
	Err        error
}

// Renamer applies a rename plan inside the plan's directory
type Renamer struct {
	dryRun bool
	events EventHandler
}

// New creates a Renamer
func New() *Renamer {
	return &Renamer{}
}

// WithDryRun reports what would happen without touching the filesystem
func (r *Renamer) WithDryRun() *Renamer {
	r.dryRun = true
	return r
}

// WithEvents sets the progress event handler
func (r *Renamer) WithEvents(h EventHandler) *Renamer {
	r.events = h
	return r
}

// Execute renames every entry within its parent directory. A failed rename is
// recorded on its operation and does not stop the batch. Cancelling ctx marks
// the remaining operations skipped and returns ctx.Err().
func (r *Renamer) Execute(ctx context.Context, entries []Entry) ([]RenameOperation, error) {
	ops := make([]RenameOperation, len(entries))
	for i, e := range entries {
		ops[i] = RenameOperation{
			SourcePath: e.Source.Path,
			TargetPath: filepath.Join(filepath.Dir(e.Source.Path), e.Target),
			Status:     StatusPending,
		}
	}

	for i := range ops {
		op := &ops[i]
		if err := ctx.Err(); err != nil {
			for j := i; j < len(ops); j++ {
				ops[j].Status = StatusSkipped
			}
			return ops, err
		}

		src, dst := filepath.Base(op.SourcePath), filepath.Base(op.TargetPath)
		if r.dryRun {
			r.emit(EventInfo, fmt.Sprintf("Would rename: %s → %s", src, dst))
			continue
		}

		if err := renameFile(op.SourcePath, op.TargetPath); err != nil {
			op.Status = StatusFailed
			op.Err = err
			r.emit(EventError, fmt.Sprintf("Failed: %s → %s (%v)", src, dst, err))
			continue
		}
		op.Status = StatusSuccess
		r.emit(EventSuccess, fmt.Sprintf("Renamed: %s → %s", src, dst))
	}

	return ops, nil
}

// renameFile refuses to replace a target that appeared after planning.
func renameFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("failed to rename %s: %w", filepath.Base(src), types.ErrTargetExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check target: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename %s: %w", filepath.Base(src), err)
	}
	return nil
}

func (r *Renamer) emit(t EventType, msg string) {
	if r.events != nil {
		r.events(Event{Type: t, Message: msg})
	}
}

// Summary counts successful operations out of the attempted ones.
func Summary(ops []RenameOperation) (success, attempted int) {
	for _, op := range ops {
		switch op.Status {
		case StatusSuccess:
			success++
			attempted++
		case StatusFailed:
			attempted++
		}
	}
	return success, attempted
}
