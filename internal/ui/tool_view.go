package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/docdesk/docdesk/internal/config"
	"github.com/docdesk/docdesk/internal/convert"
	"github.com/docdesk/docdesk/internal/handle"
	"github.com/docdesk/docdesk/internal/intake"
	"github.com/docdesk/docdesk/internal/model"
	"github.com/docdesk/docdesk/internal/platform"
	"github.com/docdesk/docdesk/internal/queue"
	"github.com/docdesk/docdesk/internal/reorder"
)

// ToolConfig fixes the per-tool parts of the shared tool screen.
type ToolConfig struct {
	TitleKey    string // tab title localization key
	ActionKey   string // trigger button localization key
	EmptyKey    string // message shown when the queue is below the minimum
	BaseName    string // stem of the suggested output file name
	Policy      intake.Policy
	Previews    bool // render image thumbnails for queued files
	Determinate bool // per-item progress bar instead of a busy indicator
}

// ToolView is one conversion tool: an ordered file queue, its admission
// gate, the run trigger with progress, and the save action for the last
// produced document. Both tools are instances of this screen with
// different policies and builders.
type ToolView struct {
	window       fyne.Window
	localization *Localization
	settings     *config.Settings
	registry     *handle.Registry
	cfg          ToolConfig

	service *convert.Service
	queue   *queue.Queue[*model.Item]
	drag    *reorder.Controller

	previews map[string]string // item id -> preview blob id
	outputID string            // blob id of the last successful run's output

	// UI components
	list        *widget.List
	addBtn      *widget.Button
	clearBtn    *widget.Button
	runBtn      *widget.Button
	saveBtn     *widget.Button
	progressBar *widget.ProgressBar
	busyBar     *widget.ProgressBarInfinite
	statusLabel *widget.Label
	countLabel  *widget.Label
	noticeLabel *widget.Label
	hintLabel   *widget.Label
	content     fyne.CanvasObject

	noticeTimer *time.Timer
}

// NewToolView creates a tool screen around a builder and an admission policy
func NewToolView(window fyne.Window, localization *Localization, settings *config.Settings,
	registry *handle.Registry, builder convert.Builder, cfg ToolConfig) *ToolView {

	v := &ToolView{
		window:       window,
		localization: localization,
		settings:     settings,
		registry:     registry,
		cfg:          cfg,
		previews:     make(map[string]string),
	}

	v.queue = queue.New(func(item *model.Item) string { return item.ID })
	v.queue.OnRelease(v.releaseItem)
	v.queue.OnChange(v.onQueueChanged)

	v.drag = reorder.NewController(v.queue.Len)

	v.service = convert.NewService(builder)
	v.service.SetUpdateCallback(v.onRunUpdate)

	v.createUI()
	v.refreshControls()
	return v
}

// Container returns the root canvas object of the tool screen
func (v *ToolView) Container() fyne.CanvasObject {
	return v.content
}

// Title returns the localized tab title
func (v *ToolView) Title() string {
	return v.localization.GetText(v.cfg.TitleKey)
}

// createUI creates the UI components
func (v *ToolView) createUI() {
	v.list = widget.NewList(
		func() int { return v.queue.Len() },
		func() fyne.CanvasObject {
			return NewItemRow(&model.Item{}, v.localization)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			row := o.(*ItemRow)
			row.SetCallbacks(v.removeItem, v.drag.Begin, v.drag.Over, v.dropAt)
			if i < v.queue.Len() {
				row.UpdateItem(v.queue.Get(i), i)
			}
		},
	)

	v.addBtn = widget.NewButtonWithIcon(v.localization.GetText(KeyAddFiles), theme.ContentAddIcon(), v.onAddClick)
	v.clearBtn = widget.NewButton(v.localization.GetText(KeyClearAll), v.onClear)

	v.runBtn = widget.NewButton(v.localization.GetText(v.cfg.ActionKey), v.onRun)
	v.runBtn.Importance = widget.HighImportance

	v.saveBtn = widget.NewButtonWithIcon(v.localization.GetText(KeySave), theme.DocumentSaveIcon(), v.onSave)
	v.saveBtn.Disable()

	v.progressBar = widget.NewProgressBar()
	v.progressBar.Hide()
	v.busyBar = widget.NewProgressBarInfinite()
	v.busyBar.Stop()
	v.busyBar.Hide()

	v.statusLabel = widget.NewLabel("")
	v.countLabel = widget.NewLabel("")
	v.countLabel.Alignment = fyne.TextAlignTrailing

	v.noticeLabel = widget.NewLabel("")
	v.noticeLabel.Wrapping = fyne.TextWrapWord

	v.hintLabel = widget.NewLabel(v.localization.GetText(KeyDropHint))
	v.hintLabel.TextStyle = fyne.TextStyle{Italic: true}

	top := container.NewVBox(
		container.NewHBox(v.addBtn, v.clearBtn, layout.NewSpacer(), v.countLabel),
		v.hintLabel,
		widget.NewSeparator(),
	)

	var progress fyne.CanvasObject = v.busyBar
	if v.cfg.Determinate {
		progress = v.progressBar
	}

	bottom := container.NewVBox(
		widget.NewSeparator(),
		v.noticeLabel,
		progress,
		container.NewHBox(v.statusLabel, layout.NewSpacer(), v.runBtn, v.saveBtn),
	)

	v.content = container.NewBorder(top, bottom, nil, nil, v.list)
}

// AddPaths admits local file paths into the queue. This is the entry point
// for both the file picker and window drop events.
func (v *ToolView) AddPaths(paths []string) {
	candidates := make([]intake.Candidate, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			log.Printf("Skipping unreadable file %s: %v", p, err)
			continue
		}
		if info.IsDir() {
			continue
		}
		candidates = append(candidates, intake.Candidate{
			Path: p,
			Name: filepath.Base(p),
			Size: info.Size(),
		})
	}
	v.admit(candidates)
}

// admit runs one batch through the gate and queues whatever was accepted
func (v *ToolView) admit(candidates []intake.Candidate) {
	if v.service.Running() || len(candidates) == 0 {
		return
	}

	adm := v.cfg.Policy.Admit(candidates, v.queue.Len())

	items := make([]*model.Item, 0, len(adm.Accepted))
	for _, c := range adm.Accepted {
		item := model.NewItem(c.Path, c.Size)
		if v.cfg.Previews {
			v.attachPreview(item, c.Path)
		}
		items = append(items, item)
	}
	if len(items) > 0 {
		if err := v.queue.Append(items...); err != nil {
			log.Printf("Failed to queue %d admitted files: %v", len(items), err)
		}
	}

	switch err := adm.Err(); {
	case errors.Is(err, intake.ErrCapacityReached):
		v.showNotice(v.localization.GetText(KeyMaxReached))
	case errors.Is(err, intake.ErrNoValidFiles):
		v.showNotice(v.localization.GetText(KeyNoValidFiles))
	case adm.RejectedType > 0 || adm.Overflow > 0:
		v.showNotice(v.localization.GetText(KeySomeIgnored))
	}
}

// attachPreview copies the file into the blob registry and points the item's
// thumbnail at the copy, so the preview survives the source file moving.
func (v *ToolView) attachPreview(item *model.Item, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read %s for preview: %v", path, err)
		return
	}

	h, err := v.registry.Acquire(data, filepath.Ext(path))
	if err != nil {
		log.Printf("Failed to create preview blob for %s: %v", item.Name, err)
		return
	}
	v.previews[item.ID] = h.ID
	item.Preview = h.Path
}

// releaseItem frees the preview blob of an item leaving the queue
func (v *ToolView) releaseItem(item *model.Item) {
	if id, ok := v.previews[item.ID]; ok {
		delete(v.previews, item.ID)
		v.registry.Release(id)
	}
}

// onQueueChanged reacts to any queue mutation: the previous output no
// longer matches the queue, so its blob is dropped and Save goes dark.
func (v *ToolView) onQueueChanged() {
	v.invalidateOutput()
	v.list.Refresh()
	v.refreshControls()
}

// invalidateOutput releases the last run's output blob, if any
func (v *ToolView) invalidateOutput() {
	if v.outputID != "" {
		v.registry.Release(v.outputID)
		v.outputID = ""
	}
}

// onAddClick opens the file picker for a single file
func (v *ToolView) onAddClick() {
	dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if closeErr := reader.Close(); closeErr != nil {
			log.Printf("Failed to close picked file %s: %v", path, closeErr)
		}
		v.AddPaths([]string{path})
	}, v.window)
	dlg.SetFilter(storage.NewExtensionFileFilter(v.cfg.Policy.Exts))
	dlg.Show()
}

// onClear empties the queue
func (v *ToolView) onClear() {
	if v.service.Running() {
		return
	}
	v.queue.Clear()
}

// removeItem removes a single item from the queue
func (v *ToolView) removeItem(itemID string) {
	if v.service.Running() {
		return
	}
	v.queue.RemoveByID(itemID)
}

// dropAt completes a row drag: the hovered slot is clamped to the current
// queue bounds and handed to the reorder controller, which decides whether
// the gesture still maps to a valid move.
func (v *ToolView) dropAt(target int) {
	if v.service.Running() {
		v.drag.Cancel()
		return
	}

	if max := v.queue.Len() - 1; target > max {
		target = max
	}
	if target < 0 {
		target = 0
	}

	if from, to, ok := v.drag.Drop(target); ok {
		v.queue.MoveTo(from, to)
	}
}

// onRun triggers a conversion over the current queue order
func (v *ToolView) onRun() {
	err := v.service.Start(v.queue.Items(), v.onRunOutput)
	if err == nil {
		return
	}

	if errors.Is(err, intake.ErrTooFewItems) {
		v.showNotice(v.localization.GetText(v.cfg.EmptyKey))
		return
	}
	if errors.Is(err, convert.ErrRunInFlight) {
		return
	}
	v.showNotice(err.Error())
}

// onRunUpdate receives run state on the run goroutine and marshals it to
// the UI thread
func (v *ToolView) onRunUpdate(state *model.RunState) {
	st := *state
	fyne.Do(func() {
		v.applyRunState(&st)
	})
}

// applyRunState updates the progress widgets and control availability
func (v *ToolView) applyRunState(st *model.RunState) {
	switch st.Status {
	case model.RunStatusRunning:
		v.setRunning(true)
		if v.cfg.Determinate {
			v.progressBar.SetValue(st.Fraction())
			v.statusLabel.SetText(fmt.Sprintf("%s %d%%", v.localization.GetText(KeyConverting), st.Percent()))
		} else {
			v.statusLabel.SetText(v.localization.GetText(KeyConverting))
		}
	case model.RunStatusFailed:
		v.setRunning(false)
		v.statusLabel.SetText("")
		v.showNotice(v.localization.GetText(KeyOperationFailed))
	case model.RunStatusDone:
		v.setRunning(false)
		v.statusLabel.SetText("")
	}
}

// setRunning toggles the controls and the progress indicator for a run
func (v *ToolView) setRunning(running bool) {
	if running {
		v.addBtn.Disable()
		v.clearBtn.Disable()
		v.runBtn.Disable()
		v.saveBtn.Disable()
		if v.cfg.Determinate {
			v.progressBar.Show()
		} else {
			v.busyBar.Show()
			v.busyBar.Start()
		}
		return
	}

	if v.cfg.Determinate {
		v.progressBar.Hide()
	} else {
		v.busyBar.Stop()
		v.busyBar.Hide()
	}
	v.addBtn.Enable()
	v.refreshControls()
}

// onRunOutput stores a successful run's document in the blob registry.
// Runs on the run goroutine; a nil output means the run failed and the
// state callback already reported it.
func (v *ToolView) onRunOutput(output []byte) {
	if output == nil {
		return
	}

	h, err := v.registry.Acquire(output, v.service.Builder().OutputExt())
	if err != nil {
		log.Printf("Failed to store run output: %v", err)
		fyne.Do(func() {
			v.showNotice(v.localization.GetText(KeyOperationFailed))
		})
		return
	}

	fyne.Do(func() {
		v.invalidateOutput()
		v.outputID = h.ID
		v.saveBtn.Enable()
		v.showNotice(v.localization.GetText(KeyConversionDone))
	})
}

// onSave lets the user pick a destination for the last produced document
func (v *ToolView) onSave() {
	if v.outputID == "" {
		return
	}

	dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if closeErr := writer.Close(); closeErr != nil {
				log.Printf("Failed to close saved file: %v", closeErr)
			}
		}()

		data, readErr := os.ReadFile(v.registry.Path(v.outputID))
		if readErr != nil {
			log.Printf("Failed to read output blob %s: %v", v.outputID, readErr)
			v.showNotice(v.localization.GetText(KeyErrorSaving))
			return
		}
		if _, writeErr := writer.Write(data); writeErr != nil {
			log.Printf("Failed to write %s: %v", writer.URI().Path(), writeErr)
			v.showNotice(v.localization.GetText(KeyErrorSaving))
			return
		}

		path := writer.URI().Path()
		v.showNotice(v.localization.GetText(KeySavedTo) + ": " + filepath.Base(path))
		if v.settings.GetAutoRevealOnSave() && path != "" {
			if revealErr := platform.OpenFileInManager(path); revealErr != nil {
				log.Printf("Failed to reveal %s: %v", path, revealErr)
			}
		}
	}, v.window)

	dlg.SetFileName(v.defaultFileName())
	dlg.SetFilter(storage.NewExtensionFileFilter([]string{v.service.Builder().OutputExt()}))
	if lister, err := storage.ListerForURI(storage.NewFileURI(v.settings.GetOutputDirectory())); err == nil {
		dlg.SetLocation(lister)
	}
	dlg.Show()
}

// defaultFileName suggests a date-stamped name for the output document
func (v *ToolView) defaultFileName() string {
	return v.cfg.BaseName + "-" + time.Now().Format(OutputDateFormat) + v.service.Builder().OutputExt()
}

// refreshControls syncs button availability with the queue and run state
func (v *ToolView) refreshControls() {
	running := v.service.Running()

	if v.queue.Len() >= v.service.Builder().MinItems() && !running {
		v.runBtn.Enable()
	} else {
		v.runBtn.Disable()
	}
	if v.queue.Len() > 0 && !running {
		v.clearBtn.Enable()
	} else {
		v.clearBtn.Disable()
	}
	if v.outputID != "" && !running {
		v.saveBtn.Enable()
	} else {
		v.saveBtn.Disable()
	}

	v.countLabel.SetText(fmt.Sprintf(v.localization.GetText(KeyQueuedFiles), v.queue.Len()))
}

// showNotice displays a transient status message
func (v *ToolView) showNotice(text string) {
	v.noticeLabel.SetText(text)

	if v.noticeTimer != nil {
		v.noticeTimer.Stop()
	}
	v.noticeTimer = time.AfterFunc(NoticeDuration, func() {
		fyne.Do(func() {
			v.noticeLabel.SetText("")
		})
	})
}

// RefreshTexts updates control labels after a language change
func (v *ToolView) RefreshTexts() {
	v.addBtn.SetText(v.localization.GetText(KeyAddFiles))
	v.clearBtn.SetText(v.localization.GetText(KeyClearAll))
	v.runBtn.SetText(v.localization.GetText(v.cfg.ActionKey))
	v.saveBtn.SetText(v.localization.GetText(KeySave))
	v.hintLabel.SetText(v.localization.GetText(KeyDropHint))
	v.refreshControls()
}

// Teardown releases everything the tool holds in the blob registry
func (v *ToolView) Teardown() {
	v.queue.Clear()
	v.invalidateOutput()
}
