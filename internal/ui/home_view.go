package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HomeView is the landing screen with one card per tool
type HomeView struct {
	localization *Localization
	onOpenTool   func(tabIndex int)

	introLabel *widget.Label
	imagesCard *widget.Card
	mergeCard  *widget.Card
	content    fyne.CanvasObject
}

// NewHomeView creates the landing screen. onOpenTool receives the tab index
// of the tool to switch to.
func NewHomeView(localization *Localization, onOpenTool func(tabIndex int)) *HomeView {
	h := &HomeView{
		localization: localization,
		onOpenTool:   onOpenTool,
	}
	h.createUI()
	return h
}

// Container returns the root canvas object of the landing screen
func (h *HomeView) Container() fyne.CanvasObject {
	return h.content
}

// createUI creates the UI components
func (h *HomeView) createUI() {
	h.introLabel = widget.NewLabel(h.localization.GetText(KeyHomeIntro))
	h.introLabel.Wrapping = fyne.TextWrapWord

	openImages := widget.NewButton(h.localization.GetText(KeyOpenTool), func() {
		if h.onOpenTool != nil {
			h.onOpenTool(TabImages)
		}
	})
	h.imagesCard = widget.NewCard(
		h.localization.GetText(KeyToolImages),
		h.localization.GetText(KeyToolImagesDesc),
		openImages,
	)

	openMerge := widget.NewButton(h.localization.GetText(KeyOpenTool), func() {
		if h.onOpenTool != nil {
			h.onOpenTool(TabMerge)
		}
	})
	h.mergeCard = widget.NewCard(
		h.localization.GetText(KeyToolMerge),
		h.localization.GetText(KeyToolMergeDesc),
		openMerge,
	)

	h.content = container.NewVBox(
		h.introLabel,
		widget.NewSeparator(),
		h.imagesCard,
		h.mergeCard,
	)
}

// RefreshTexts updates labels after a language change
func (h *HomeView) RefreshTexts() {
	h.introLabel.SetText(h.localization.GetText(KeyHomeIntro))
	h.imagesCard.SetTitle(h.localization.GetText(KeyToolImages))
	h.imagesCard.SetSubTitle(h.localization.GetText(KeyToolImagesDesc))
	h.mergeCard.SetTitle(h.localization.GetText(KeyToolMerge))
	h.mergeCard.SetSubTitle(h.localization.GetText(KeyToolMergeDesc))
}
