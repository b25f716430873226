// Package desktop is the Fyne front end: a window with a query entry, a
// search button and a scrolling list of matches.
package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/namefinder/namefinder/internal/i18n"
	"github.com/namefinder/namefinder/internal/logging"
	"github.com/namefinder/namefinder/internal/names"
	"github.com/namefinder/namefinder/internal/search"
	"github.com/namefinder/namefinder/internal/theme"
)

// AppID identifies the application to Fyne preferences and storage.
const AppID = "io.github.namefinder"

// Options configures the window.
type Options struct {
	Names   []string
	Source  string
	Problem *names.Problem // recoverable load error, shown once as a dialog
	Palette theme.Palette
	Width   float32
	Height  float32
}

// view owns the widgets and the current result. All methods run on the
// Fyne event goroutine.
type view struct {
	names   []string
	noMatch string
	logger  zerolog.Logger

	entry  *widget.Entry
	button *widget.Button
	list   *widget.List
	status *widget.Label

	result search.Result
	rows   []string
}

func newView(opts Options) *view {
	v := &view{
		names:   opts.Names,
		noMatch: i18n.T("search.no_match"),
		logger:  logging.For("desktop"),
		result:  search.Evaluate(opts.Names, ""),
	}

	v.entry = widget.NewEntry()
	v.entry.SetPlaceHolder(i18n.T("search.placeholder"))
	v.entry.OnChanged = func(string) { v.evaluate() }
	v.entry.OnSubmitted = func(string) { v.evaluate() }

	v.button = widget.NewButton(i18n.T("search.button"), v.evaluate)

	v.list = widget.NewList(
		func() int {
			return len(v.rows)
		},
		func() fyne.CanvasObject {
			lbl := widget.NewLabel("")
			lbl.Truncation = fyne.TextTruncateEllipsis
			return lbl
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if v.result.NoMatch() {
				lbl.Importance = widget.DangerImportance
				lbl.TextStyle = fyne.TextStyle{Italic: true}
			} else {
				lbl.Importance = widget.MediumImportance
				lbl.TextStyle = fyne.TextStyle{}
			}
			lbl.SetText(v.rows[id])
		},
	)

	v.status = widget.NewLabel("")
	v.updateStatus()
	return v
}

// evaluate re-runs the search for the entry text. The entry callbacks and
// the button share it.
func (v *view) evaluate() {
	v.result = search.Evaluate(v.names, v.entry.Text)
	v.rows = v.result.Rows(v.noMatch)
	v.logger.Debug().
		Str("query", v.result.Query).
		Int("matches", len(v.result.Matches)).
		Msg("search")
	v.list.UnselectAll()
	v.list.ScrollToTop()
	v.list.Refresh()
	v.updateStatus()
}

func (v *view) updateStatus() {
	if v.result.State != search.Shown {
		v.status.SetText(i18n.TData("search.idle", map[string]any{"Total": len(v.names)}))
		return
	}
	v.status.SetText(i18n.TData("search.count", map[string]any{
		"Count": len(v.result.Matches),
		"Total": len(v.names),
	}))
}

func (v *view) content() fyne.CanvasObject {
	top := container.NewVBox(
		widget.NewLabelWithStyle(i18n.T("search.prompt"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, v.button, v.entry),
		widget.NewLabel(i18n.T("search.results")),
	)
	return container.NewPadded(container.NewBorder(top, v.status, nil, nil, v.list))
}

// Run opens the search window and blocks until it is closed.
func Run(opts Options) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(newTheme(opts.Palette))

	w := a.NewWindow(i18n.T("app.title"))
	v := newView(opts)
	w.SetContent(v.content())
	w.Resize(fyne.NewSize(opts.Width, opts.Height))
	w.Canvas().Focus(v.entry)

	if p := opts.Problem; p != nil {
		dialog.ShowInformation(p.Title, p.Message, w)
	}

	v.logger.Info().Str("source", opts.Source).Int("names", len(opts.Names)).Msg("window opened")
	w.ShowAndRun()
	return nil
}

// Fail shows a fatal load problem in a dialog and returns once the user has
// dismissed it. No search interface is created.
func Fail(p *names.Problem) {
	a := app.NewWithID(AppID)
	w := a.NewWindow(p.Title)
	w.Resize(fyne.NewSize(400, 200))

	d := dialog.NewInformation(p.Title, p.Message, w)
	d.SetOnClosed(a.Quit)
	w.SetOnClosed(a.Quit)
	d.Show()
	w.ShowAndRun()
}
