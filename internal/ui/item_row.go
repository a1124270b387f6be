package ui

import (
	"image/color"
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/docdesk/docdesk/internal/model"
)

// ItemRow represents a single queued file as a compact draggable row
type ItemRow struct {
	widget.BaseWidget

	item         *model.Item
	index        int
	localization *Localization

	// UI components
	thumbnail *canvas.Image
	nameLabel *widget.Label
	sizeLabel *widget.Label
	removeBtn *widget.Button

	// Callbacks
	onRemove    func(itemID string)
	onDragBegin func(index int)
	onDragOver  func(target int)
	onDragEnd   func(target int)

	// Drag state
	dragging   bool
	dragOffset float32
}

// NewItemRow creates a new item row widget
func NewItemRow(item *model.Item, localization *Localization) *ItemRow {
	if item == nil {
		log.Printf("Warning: NewItemRow called with nil item")
		item = &model.Item{ID: "dummy", Name: "?", SizeLabel: "0 B"}
	}

	r := &ItemRow{
		item:         item,
		localization: localization,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	r.updateFromItem()
	return r
}

// SetCallbacks sets the action and drag callbacks
func (r *ItemRow) SetCallbacks(
	onRemove func(itemID string),
	onDragBegin func(index int),
	onDragOver func(target int),
	onDragEnd func(target int),
) {
	r.onRemove = onRemove
	r.onDragBegin = onDragBegin
	r.onDragOver = onDragOver
	r.onDragEnd = onDragEnd
}

// UpdateItem updates the row with new item data and its current position
func (r *ItemRow) UpdateItem(item *model.Item, index int) {
	if item == nil {
		log.Printf("Warning: UpdateItem called with nil item for row %d", r.index)
		return
	}

	r.item = item
	r.index = index
	r.updateFromItem()
	r.Refresh()
}

// createUI creates the UI components
func (r *ItemRow) createUI() {
	r.thumbnail = canvas.NewImageFromImage(nil)
	r.thumbnail.FillMode = canvas.ImageFillContain
	r.thumbnail.SetMinSize(fyne.NewSize(RowThumbnailSize, RowThumbnailSize))

	r.nameLabel = widget.NewLabel("")
	r.nameLabel.Truncation = fyne.TextTruncateEllipsis
	r.nameLabel.Alignment = fyne.TextAlignLeading

	r.sizeLabel = widget.NewLabel("")
	r.sizeLabel.Alignment = fyne.TextAlignTrailing
	r.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	r.removeBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		current := r.item
		if r.onRemove != nil {
			r.onRemove(current.ID)
		} else {
			log.Printf("onRemove callback is nil for item %s", current.ID)
		}
	})
	r.removeBtn.Importance = widget.LowImportance
}

// updateFromItem syncs the widgets with the current item data
func (r *ItemRow) updateFromItem() {
	r.nameLabel.SetText(r.item.Name)
	r.sizeLabel.SetText(r.item.SizeLabel)

	if r.item.Preview != "" {
		r.thumbnail.File = r.item.Preview
		r.thumbnail.Refresh()
	}
}

// Dragged accumulates vertical drag movement and reports the hovered slot.
// The row itself does not move; reordering is applied on drag end.
func (r *ItemRow) Dragged(e *fyne.DragEvent) {
	if !r.dragging {
		r.dragging = true
		r.dragOffset = 0
		if r.onDragBegin != nil {
			r.onDragBegin(r.index)
		}
	}

	r.dragOffset += e.Dragged.DY
	if r.onDragOver != nil {
		r.onDragOver(r.dropTarget())
	}
}

// DragEnd finishes the gesture and reports the final drop slot
func (r *ItemRow) DragEnd() {
	if !r.dragging {
		return
	}

	target := r.dropTarget()
	r.dragging = false
	r.dragOffset = 0
	if r.onDragEnd != nil {
		r.onDragEnd(target)
	}
}

// dropTarget converts the accumulated offset into a list index
func (r *ItemRow) dropTarget() int {
	rows := float64(r.dragOffset) / float64(RowMinHeight)
	return r.index + int(math.Round(rows))
}

// CreateRenderer creates the widget renderer
func (r *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	return &itemRowRenderer{row: r}
}

// itemRowRenderer renders the item row
type itemRowRenderer struct {
	row    *ItemRow
	layout *fyne.Container
}

// Layout arranges the components
func (rn *itemRowRenderer) Layout(size fyne.Size) {
	if rn.layout == nil {
		rn.layout = rn.createLayout()
	}
	rn.layout.Resize(size)
}

// MinSize returns the minimum size of the row
func (rn *itemRowRenderer) MinSize() fyne.Size {
	if rn.layout == nil {
		rn.layout = rn.createLayout()
	}

	min := rn.layout.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

// Refresh refreshes the row
func (rn *itemRowRenderer) Refresh() {
	if rn.layout != nil {
		rn.layout.Refresh()
	}
}

// Objects returns the objects to render
func (rn *itemRowRenderer) Objects() []fyne.CanvasObject {
	if rn.layout == nil {
		rn.layout = rn.createLayout()
	}
	return []fyne.CanvasObject{rn.layout}
}

// Destroy cleans up the renderer
func (rn *itemRowRenderer) Destroy() {}

// createLayout builds the row layout: thumbnail | name | size | remove
func (rn *itemRowRenderer) createLayout() *fyne.Container {
	r := rn.row

	right := container.NewHBox(fixedWidth(RowSizeLabelWidth, r.sizeLabel), r.removeBtn)

	var left fyne.CanvasObject
	if r.item.Preview != "" {
		left = r.thumbnail
	}

	return container.NewBorder(nil, nil, left, right, r.nameLabel)
}

// fixedWidth wraps an object in a container that enforces a minimum width
func fixedWidth(width float32, object fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(width, 1))
	return container.NewStack(spacer, object)
}
