// Sales Viewer: a desktop window that loads a CSV of sales rows and charts the
// daily totals (line or bar) or the distribution of single-sale totals
// (histogram), optionally filtered by category.
//
// Everything runs on the Fyne event thread: a file load or redraw blocks the
// window until it is done. Nothing is ever written back to disk.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/iafilius/SalesViewer/src/sales"
)

func main() {
	var fileFlag string
	var logLevel string
	flag.StringVar(&fileFlag, "file", "", "CSV file to open at startup")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	if !sales.SetLogLevel(logLevel) {
		fmt.Fprintf(os.Stderr, "unknown log level %q, using info\n", logLevel)
	}

	a := app.NewWithID("com.salesviewer.app")
	a.Settings().SetTheme(&salesTheme{})
	v := newViewer(a)
	v.window.CenterOnScreen()

	if fileFlag != "" {
		// Errors are already shown in the window; the viewer stays usable.
		_ = v.loadPath(fileFlag)
	}
	v.window.ShowAndRun()
}
