package ui

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"path/filepath"
	"strings"

	"Scribble/internal/config"
	"Scribble/internal/export"
	"Scribble/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Scribble"

// Shell is the main window. It owns the menus and dialogs and forwards every
// user intent to the surface it was given.
type Shell struct {
	cfg     config.Config
	surface *surface.Surface
	app     fyne.App
	win     fyne.Window
	board   *ScribbleWidget
	tools   *toolbar
}

var _ handler = (*Shell)(nil)

// NewShell builds the window around s. Nothing is shown until Run.
func NewShell(cfg config.Config, s *surface.Surface) *Shell {
	sh := &Shell{cfg: cfg, surface: s}
	sh.app = app.NewWithID("scribble.paint")
	sh.win = sh.app.NewWindow(appTitle)
	sh.win.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	sh.board = NewScribbleWidget(s)
	var bar fyne.CanvasObject
	sh.tools, bar = newToolbar(s, sh)
	sh.win.SetContent(container.NewBorder(bar, nil, nil, nil, sh.board))
	sh.win.SetMainMenu(sh.buildMenu())
	sh.win.SetCloseIntercept(func() {
		sh.maybeSave(sh.win.Close)
	})
	return sh
}

// Run shows the window and blocks until the application quits.
func (sh *Shell) Run() {
	log.Printf("[UI] Window shown, canvas %v", sh.surface.Size())
	sh.win.ShowAndRun()
	log.Println("[UI] Application stopped")
}

// RunApp is the usual startup: build the shell around s and run it.
func RunApp(cfg config.Config, s *surface.Surface) {
	NewShell(cfg, s).Run()
}

func (sh *Shell) buildMenu() *fyne.MainMenu {
	var menus []*fyne.Menu
	byName := map[string]*fyne.Menu{}
	subs := map[string]*fyne.MenuItem{}

	for _, e := range menuEntries() {
		item := fyne.NewMenuItem(e.label, func() { dispatch(sh, e.action, e.format) })
		if e.key != "" {
			sc := &desktop.CustomShortcut{KeyName: e.key, Modifier: fyne.KeyModifierShortcutDefault}
			item.Shortcut = sc
			sh.win.Canvas().AddShortcut(sc, func(fyne.Shortcut) { dispatch(sh, e.action, e.format) })
		}
		item.IsQuit = e.action == ActionExit

		m, ok := byName[e.menu]
		if !ok {
			m = fyne.NewMenu(e.menu)
			byName[e.menu] = m
			menus = append(menus, m)
		}
		if e.submenu == "" {
			m.Items = append(m.Items, item)
			continue
		}
		parent, ok := subs[e.menu+"/"+e.submenu]
		if !ok {
			parent = fyne.NewMenuItem(e.submenu, nil)
			parent.ChildMenu = fyne.NewMenu("")
			subs[e.menu+"/"+e.submenu] = parent
			m.Items = append(m.Items, parent)
		}
		parent.ChildMenu.Items = append(parent.ChildMenu.Items, item)
	}
	return fyne.NewMainMenu(menus...)
}

// maybeSave runs proceed right away when there is nothing to lose, otherwise
// after the user chose to save (successfully) or discard the changes.
func (sh *Shell) maybeSave(proceed func()) {
	if !sh.surface.IsModified() {
		proceed()
		return
	}

	msg := widget.NewLabel("The image has been modified.\nDo you want to save your changes?")
	d := dialog.NewCustomWithoutButtons(appTitle, msg, sh.win)
	d.SetButtons([]fyne.CanvasObject{
		widget.NewButton("Cancel", d.Hide),
		widget.NewButton("Discard", func() {
			d.Hide()
			proceed()
		}),
		widget.NewButton("Save", func() {
			d.Hide()
			sh.saveFile("png", func(ok bool) {
				if ok {
					proceed()
				}
			})
		}),
	})
	d.Show()
}

// saveFile asks for a target and saves the surface as format. done receives
// whether the image was written. The dialog has already opened the target,
// so the image is written through its writer rather than by path.
func (sh *Shell) saveFile(format string, done func(ok bool)) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sh.win)
			done(false)
			return
		}
		if wc == nil {
			done(false)
			return
		}
		path := wc.URI().Path()
		if err := sh.surface.SaveAndClose(wc, format); err != nil {
			log.Printf("[UI] Save failed: %v", err)
			dialog.ShowError(err, sh.win)
			done(false)
			return
		}
		log.Printf("[UI] Saved %s", path)
		done(true)
	}, sh.win)
	d.SetFileName("untitled." + format)
	d.SetFilter(storage.NewExtensionFileFilter([]string{"." + format}))
	d.Show()
}

func (sh *Shell) open() {
	sh.maybeSave(func() {
		d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, sh.win)
				return
			}
			if rc == nil {
				return
			}
			path := rc.URI().Path()
			rc.Close()

			if err := sh.surface.Load(path); err != nil {
				log.Printf("[UI] Open failed: %v", err)
				dialog.ShowError(err, sh.win)
				return
			}
			sh.win.SetTitle(fmt.Sprintf("%s - %s", appTitle, filepath.Base(path)))
		}, sh.win)
		d.SetFilter(storage.NewExtensionFileFilter(surface.LoadExtensions()))
		d.Show()
	})
}

func (sh *Shell) saveAs(format string) {
	sh.saveFile(format, func(bool) {})
}

func (sh *Shell) print() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sh.win)
			return
		}
		if wc == nil {
			return
		}
		path := wc.URI().Path()
		opts := export.Options{Title: strings.TrimSuffix(filepath.Base(path), ".pdf"), DPI: sh.cfg.PrintDPI}
		if err := printTo(wc, sh.surface.Snapshot(), opts); err != nil {
			log.Printf("[UI] Print failed: %v", err)
			dialog.ShowError(err, sh.win)
			return
		}
		log.Printf("[UI] Printed to %s", path)
	}, sh.win)
	d.SetFileName("untitled.pdf")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}

// printTo renders img as a PDF into wc and closes it, reporting whichever
// of the two failed first.
func printTo(wc io.WriteCloser, img image.Image, opts export.Options) error {
	if err := export.WritePDF(wc, img, opts); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func (sh *Shell) exit() {
	sh.maybeSave(sh.app.Quit)
}

func (sh *Shell) penColor() {
	picker := dialog.NewColorPicker("Pen Color", "Select pen color", func(c color.Color) {
		sh.surface.SetPenColor(c)
	}, sh.win)
	picker.Advanced = true
	picker.SetColor(sh.surface.PenColor())
	picker.Show()
}

func (sh *Shell) penWidth() {
	value := widget.NewLabel("")
	slider := widget.NewSlider(surface.MinPenWidth, surface.MaxPenWidth)
	slider.Step = 1
	slider.OnChanged = func(v float64) {
		value.SetText(fmt.Sprintf("%d", int(v)))
	}
	slider.SetValue(float64(sh.surface.PenWidth()))
	value.SetText(fmt.Sprintf("%d", sh.surface.PenWidth()))

	content := container.NewBorder(widget.NewLabel("Select pen width:"), nil, nil, value, slider)
	dialog.ShowCustomConfirm(appTitle, "OK", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		sh.surface.SetPenWidth(int(slider.Value))
		sh.tools.sync()
	}, sh.win)
}

func (sh *Shell) clear() {
	sh.surface.Clear()
}

func (sh *Shell) about() {
	dialog.ShowInformation("About Scribble", "Scribble paint application", sh.win)
}
