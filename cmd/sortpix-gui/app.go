package main

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/oukeidos/sortpix/internal/apperrors"
	"github.com/oukeidos/sortpix/internal/config"
	"github.com/oukeidos/sortpix/internal/exifinfo"
	"github.com/oukeidos/sortpix/internal/imaging"
	"github.com/oukeidos/sortpix/internal/logger"
	"github.com/oukeidos/sortpix/internal/session"
)

// buttonsPerColumn matches the historical layout: label buttons stack in
// columns of ten.
const buttonsPerColumn = 10

type labelerApp struct {
	window fyne.Window
	sess   *session.Session
	cfg    *config.Config

	image     *canvas.Image
	infoLabel *widget.Label
	content   *fyne.Container

	finished        bool
	panicNoticeOnce sync.Once
}

func newLabelerApp(w fyne.Window, sess *session.Session, cfg *config.Config) *labelerApp {
	a := &labelerApp{window: w, sess: sess, cfg: cfg}
	a.setupUI()
	a.bindKeys()
	return a
}

func (a *labelerApp) setupUI() {
	a.image = &canvas.Image{FillMode: canvas.ImageFillContain}
	a.image.SetMinSize(fyne.NewSize(float32(a.cfg.DisplayWidth), float32(a.cfg.DisplayHeight)))

	a.infoLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	a.content = container.NewBorder(nil, a.infoLabel, a.buildButtons(), nil, a.image)
	a.window.SetContent(a.content)
}

// buildButtons lays out the undo control and one button per label, shortcut
// bracketed in the button text.
func (a *labelerApp) buildButtons() fyne.CanvasObject {
	undoBtn := widget.NewButtonWithIcon("undo", theme.ContentUndoIcon(), func() {
		a.safeDo("ui.undo", a.onUndo)
	})

	columns := container.NewHBox()
	col := container.NewVBox()
	for i := range a.sess.Labels().Labels() {
		idx := i
		btn := widget.NewButton(a.sess.Labels().Display(i), func() {
			a.safeDo("ui.label_button", func() { a.onLabel(idx) })
		})
		col.Add(btn)
		if len(col.Objects) == buttonsPerColumn {
			columns.Add(col)
			col = container.NewVBox()
		}
	}
	if len(col.Objects) > 0 {
		columns.Add(col)
	}

	return container.NewVBox(undoBtn, widget.NewSeparator(), columns)
}

// bindKeys routes single key presses through the shortcut table. Unmapped
// keys are ignored.
func (a *labelerApp) bindKeys() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		idx, ok := a.sess.Labels().ByKey(string(r))
		if !ok {
			return
		}
		a.safeDo("ui.shortcut", func() { a.onLabel(idx) })
	})
}

// start advances to the first image.
func (a *labelerApp) start() {
	if err := a.sess.Next(); err != nil {
		a.finish()
		return
	}
	a.showCurrent()
}

func (a *labelerApp) onLabel(idx int) {
	if a.finished {
		return
	}
	err := a.sess.Apply(idx)
	switch {
	case err == nil:
		a.showCurrent()
	case apperrors.Is(err, apperrors.KindExhausted):
		a.finish()
	case apperrors.IsWarning(err):
		dialog.ShowInformation("Warning", apperrors.PublicMessage(err), a.window)
	default:
		logger.Error("Label action failed", "error", err)
		dialog.ShowError(fmt.Errorf("%s", apperrors.PublicMessage(err)), a.window)
	}
}

func (a *labelerApp) onUndo() {
	if a.finished {
		return
	}
	if err := a.sess.Undo(); err != nil {
		if apperrors.IsWarning(err) {
			dialog.ShowInformation("Warning", apperrors.PublicMessage(err), a.window)
			return
		}
		logger.Error("Undo failed", "error", err)
		dialog.ShowError(fmt.Errorf("%s", apperrors.PublicMessage(err)), a.window)
		return
	}
	a.showCurrent()
}

// showCurrent renders the image under the cursor and refreshes the title and
// info line.
func (a *labelerApp) showCurrent() {
	name, ok := a.sess.Current()
	if !ok {
		a.finish()
		return
	}
	path, _ := a.sess.CurrentPath()
	a.window.SetTitle("sortpix - " + name)

	img, err := imaging.Load(path)
	if err != nil {
		logger.Warn("Failed to load image", "file", name, "error", err)
		a.image.Image = nil
		a.image.Resource = theme.BrokenImageIcon()
	} else {
		a.image.Resource = nil
		a.image.Image = imaging.FitWithin(img, uint(a.cfg.DisplayWidth), uint(a.cfg.DisplayHeight))
	}
	a.image.Refresh()

	pos, total, pct := a.sess.Progress()
	info := fmt.Sprintf("%s | %d of %d (%.2f%%)", name, pos, total, pct)
	if captured, ok := exifinfo.CaptureTime(path); ok {
		info += " | captured " + captured.Format("2006-01-02 15:04:05")
	}
	a.infoLabel.SetText(info)
}

// finish shows the completion summary once and closes the window when the
// dialog is dismissed.
func (a *labelerApp) finish() {
	if a.finished {
		return
	}
	a.finished = true
	count := a.sess.Count()
	logger.Info("Finished", "labeled", count)

	d := dialog.NewInformation(
		"sortpix",
		fmt.Sprintf("Congrats! You're done.\nYou've successfully labeled %d images.", count),
		a.window,
	)
	d.SetOnClosed(func() {
		a.window.Close()
	})
	d.Show()
}
