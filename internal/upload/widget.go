package upload

import "context"

// Widget tracks the files picked in the upload area and whether a drag is
// hovering over it. Picker selection and drops go through the same handler,
// which replaces the whole list.
type Widget struct {
	selection Selection
	dragOver  bool
}

// NewWidget creates a widget with no files selected.
func NewWidget() *Widget {
	return &Widget{}
}

// Select handles a file-picker change.
func (w *Widget) Select(files Selection) {
	w.handleFiles(files)
}

// Drop handles files dropped on the upload area.
func (w *Widget) Drop(files Selection) {
	w.dragOver = false
	w.handleFiles(files)
}

// DragOver turns the drop affordance on. The selection is untouched.
func (w *Widget) DragOver() {
	w.dragOver = true
}

// DragLeave turns the drop affordance off. The selection is untouched.
func (w *Widget) DragLeave() {
	w.dragOver = false
}

// DragActive reports whether the drop affordance is on.
func (w *Widget) DragActive() bool {
	return w.dragOver
}

// Selection returns a copy of the current selection.
func (w *Widget) Selection() Selection {
	out := make(Selection, len(w.selection))
	copy(out, w.selection)
	return out
}

// Entries returns the displayed list: one entry per file, showing its name.
func (w *Widget) Entries() []string {
	return w.selection.Names()
}

// Inspect reads the content of every selected file and stores the results
// on the selection.
func (w *Widget) Inspect(ctx context.Context, workers int) error {
	inspected, err := Inspect(ctx, w.selection, workers)
	if err != nil {
		return err
	}
	w.selection = inspected
	return nil
}

func (w *Widget) handleFiles(files Selection) {
	w.selection = make(Selection, len(files))
	copy(w.selection, files)
}
