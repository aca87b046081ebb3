package richtext

// toolbarGap is the vertical distance between the toolbar and the top edge of
// the selection bounds.
const toolbarGap = 8.0

// Rect is a bounding box in editor viewport coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Selection is the editor's current text selection.
type Selection struct {
	Start  int  `json:"start"`
	End    int  `json:"end"`
	Bounds Rect `json:"bounds"`
}

// IsEmpty reports whether the selection covers no text.
func (s Selection) IsEmpty() bool {
	return s.End <= s.Start
}

// ToolbarState is the floating toolbar's derived UI state. It is recomputed
// on every selection change and never persisted.
type ToolbarState struct {
	Visible         bool    `json:"visible"`
	Left            float64 `json:"left"`
	Top             float64 `json:"top"`
	LinkEditorOpen  bool    `json:"link_editor_open"`
	ColorPickerOpen bool    `json:"color_picker_open"`
}

// ProjectToolbar computes the toolbar state for a selection change. An empty
// selection hides the toolbar and clears the link-editor and color-picker
// sub-states; a non-empty selection shows the toolbar directly above the
// selection bounds, keeping any open sub-state.
func ProjectToolbar(prev ToolbarState, sel Selection) ToolbarState {
	if sel.IsEmpty() {
		return ToolbarState{}
	}
	next := prev
	next.Visible = true
	next.Left = sel.Bounds.Left
	next.Top = sel.Bounds.Top - toolbarGap
	return next
}
