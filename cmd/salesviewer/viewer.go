package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/SalesViewer/cmd/salesviewer/uihelpers"
	"github.com/iafilius/SalesViewer/src/sales"
)

const (
	windowTitle  = "Sales Viewer"
	windowWidth  = 800
	windowHeight = 600
	selectWidth  = 300
)

// viewer is the window controller. All fields are touched only from Fyne
// callbacks, so no locking is needed.
type viewer struct {
	app    fyne.App
	window fyne.Window

	dataset  *sales.Dataset
	category string
	kind     sales.ChartKind
	// busy drops handler invocations that arrive while another handler runs.
	busy     bool
	lastSpec sales.ChartSpec

	categorySelect *widget.Select
	kindSelect     *widget.Select
	chartImage     *canvas.Image
	fileLabel      *widget.Label
	statusLabel    *widget.Label
}

// salesTheme is a green/light-text theme on top of the default one.
type salesTheme struct{}

var (
	salesBackground = color.NRGBA{R: 0x00, G: 0x64, B: 0x00, A: 0xff}
	salesForeground = color.NRGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff}
	salesControl    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

func (s *salesTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return salesBackground
	case theme.ColorNameForeground:
		return salesForeground
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return salesControl
	case theme.ColorNameSelection:
		return salesBackground
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (s *salesTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (s *salesTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (s *salesTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// newViewer builds the window and its widgets. Nothing is loaded yet.
func newViewer(a fyne.App) *viewer {
	v := &viewer{
		app:      a,
		category: sales.AllCategories,
		kind:     sales.KindLine,
	}
	v.window = a.NewWindow(windowTitle)
	v.window.Resize(fyne.NewSize(windowWidth, windowHeight))

	loadBtn := widget.NewButton("Load CSV", v.openFileDialog)

	v.categorySelect = widget.NewSelect([]string{sales.AllCategories}, v.onCategoryChanged)
	v.categorySelect.Selected = sales.AllCategories

	v.kindSelect = widget.NewSelect(sales.ChartKindLabels(), v.onKindChanged)
	v.kindSelect.Selected = v.kind.String()

	v.chartImage = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	v.chartImage.FillMode = canvas.ImageFillContain
	v.chartImage.SetMinSize(fyne.NewSize(640, 360))

	v.fileLabel = widget.NewLabel("No file loaded")
	v.statusLabel = widget.NewLabel("")
	v.statusLabel.Wrapping = fyne.TextWrapWord

	centered := func(o fyne.CanvasObject) fyne.CanvasObject {
		return container.NewCenter(container.NewGridWrap(fyne.NewSize(selectWidth, o.MinSize().Height), o))
	}
	top := container.NewVBox(
		centered(loadBtn),
		centered(v.categorySelect),
		container.NewCenter(widget.NewLabel("Select chart type:")),
		centered(v.kindSelect),
	)
	bottom := container.NewVBox(v.fileLabel, v.statusLabel)
	v.window.SetContent(container.NewBorder(top, bottom, nil, nil, v.chartImage))
	v.buildMenus()
	return v
}

func (v *viewer) buildMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", v.openFileDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { v.window.Close() }),
	)
	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := v.window.Canvas()
	if canv == nil {
		return
	}
	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { v.openFileDialog() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { v.window.Close() })
	}
}

// openFileDialog asks for a CSV file. Cancelling leaves everything as is.
func (v *viewer) openFileDialog() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			v.showError(err)
			return
		}
		if rc == nil {
			sales.Debugf("file dialog cancelled")
			return
		}
		defer rc.Close()
		_ = v.loadFrom(rc, rc.URI().Path())
	}, v.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	d.Show()
}

// loadPath loads a CSV from disk (used for -file).
func (v *viewer) loadPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("open csv: %w", err)
		v.showError(err)
		return err
	}
	defer f.Close()
	return v.loadFrom(f, path)
}

// loadFrom parses r and, only when that fully succeeds, swaps in the new
// dataset, rebuilds the category list and redraws. On failure nothing changes
// except the error message shown to the user.
func (v *viewer) loadFrom(r io.Reader, source string) error {
	if v.busy {
		return nil
	}
	v.busy = true
	defer func() { v.busy = false }()

	ds, err := sales.ParseCSV(r, source)
	if err != nil {
		err = fmt.Errorf("load %s: %w", filepath.Base(source), err)
		sales.Warnf("%v", err)
		v.showError(err)
		return err
	}
	v.dataset = ds
	v.category = sales.AllCategories

	opts := categoryOptions(ds)
	v.categorySelect.Options = opts
	v.categorySelect.Selected = sales.AllCategories
	v.categorySelect.Refresh()

	v.fileLabel.SetText(truncatePath(source, 60))
	sales.Infof("loaded %s: %d rows, %d categories", source, len(ds.Rows), len(opts)-1)
	v.render()
	return nil
}

// onCategoryChanged is bound to the category selector.
func (v *viewer) onCategoryChanged(value string) {
	if v.busy {
		return
	}
	v.busy = true
	defer func() { v.busy = false }()

	if value == "" {
		value = sales.AllCategories
	}
	v.category = value
	if v.dataset == nil {
		return
	}
	v.render()
}

// onKindChanged is bound to the chart-kind selector.
func (v *viewer) onKindChanged(value string) {
	if v.busy {
		return
	}
	v.busy = true
	defer func() { v.busy = false }()

	k, err := sales.ParseChartKind(value)
	if err != nil {
		sales.Warnf("%v", err)
		return
	}
	v.kind = k
	if v.dataset == nil {
		return
	}
	v.render()
}

// render redraws the chart from the current dataset and selection.
func (v *viewer) render() {
	spec := sales.BuildChart(v.dataset, v.category, v.kind)
	if spec.Empty() {
		return
	}
	w, h := v.chartSize()
	img := renderChart(spec, w, h)
	if img == nil {
		return
	}
	v.lastSpec = spec
	v.chartImage.Image = img
	v.chartImage.Refresh()
	v.statusLabel.SetText(fmt.Sprintf("%s chart, %d rows", spec.Kind, spec.Rows))
}

// chartSize derives the chart image size from the current window width.
func (v *viewer) chartSize() (int, int) {
	if v.window == nil || v.window.Canvas() == nil {
		return uihelpers.ComputeChartDimensions(0)
	}
	sz := v.window.Canvas().Size()
	return uihelpers.ComputeChartDimensions(int(sz.Width) - 24)
}

func (v *viewer) showError(err error) {
	v.statusLabel.SetText("Error: " + err.Error())
	dialog.ShowError(err, v.window)
}

// categoryOptions is the selector list: All first, then the dataset's
// categories. A real category named "All" is folded into the sentinel.
func categoryOptions(ds *sales.Dataset) []string {
	opts := []string{sales.AllCategories}
	for _, c := range ds.Categories() {
		if c != sales.AllCategories {
			opts = append(opts, c)
		}
	}
	return opts
}

// truncatePath shortens p to about n characters, keeping the file name.
func truncatePath(p string, n int) string {
	if utf8.RuneCountInString(p) <= n {
		return p
	}
	sep := string(filepath.Separator)
	base := filepath.Base(p)
	baseLen := utf8.RuneCountInString(base)
	if baseLen+4 >= n {
		return "..." + base
	}
	dir := []rune(filepath.Dir(p))
	if left := n - baseLen - 4; len(dir) > left {
		dir = dir[:left]
	}
	return string(dir) + sep + "..." + base
}
