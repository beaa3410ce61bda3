package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gotrack/internal/config"
	"github.com/philipparndt/gotrack/internal/logging"
	"github.com/philipparndt/gotrack/pkg/analysis"
	"github.com/philipparndt/gotrack/pkg/geometry"
	"github.com/philipparndt/gotrack/pkg/layout"
	"github.com/philipparndt/gotrack/pkg/track"
	"github.com/philipparndt/gotrack/pkg/trackfile"
	"github.com/philipparndt/gotrack/pkg/viewer"
	"github.com/philipparndt/gotrack/pkg/watcher"
)

// maxReportDelay simulates views that finish layout at different times
const maxReportDelay = 400 * time.Millisecond

var containerSize = layout.Size{Width: 600, Height: 600}

type App struct {
	window    fyne.Window
	logger    *slog.Logger
	connector *track.Connector
	renderer  *viewer.TrackRenderer
	watcher   *watcher.LayoutWatcher

	arrangement layout.Arrangement
	count       int

	statusLabel   *widget.Label
	segmentsLabel *widget.Label
	touchingLabel *widget.Label
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	connector, err := track.New(cfg.Track, track.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer connector.Release()

	a := app.New()
	w := a.NewWindow("GoTrack - Segment Preview")

	appInstance := &App{
		window:      w,
		logger:      logger,
		connector:   connector,
		arrangement: layout.ArrangementRing,
		count:       track.MaxAnchors,
	}
	appInstance.setupMainUI()

	if len(os.Args) > 1 {
		appInstance.watchFile(os.Args[1])
	} else {
		appInstance.arrange()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()

	if appInstance.watcher != nil {
		appInstance.watcher.Close()
	}
}

func (a *App) setupMainUI() {
	a.statusLabel = widget.NewLabel("")
	a.segmentsLabel = widget.NewLabel("")
	a.segmentsLabel.TextStyle = fyne.TextStyle{Monospace: true}
	a.touchingLabel = widget.NewLabel("Tap an anchor to list its segments")
	a.touchingLabel.TextStyle = fyne.TextStyle{Monospace: true}

	a.renderer = viewer.NewTrackRenderer()
	a.renderer.SetOnAnchorSelect(func(index int) {
		a.updateTouching(index)
	})

	a.connector.OnSegmentsReady(func(gen track.Generation, segments []track.Segment) {
		anchors := a.connector.Anchors()
		fyne.Do(func() {
			a.renderer.SetAnchors(anchors)
			a.renderer.SetSegments(segments)
			a.updateInfo(gen, segments)
			if sel := a.renderer.Selected(); sel >= 0 {
				a.updateTouching(sel)
			}
		})
	})

	arrangementSelect := widget.NewSelect(
		[]string{string(layout.ArrangementRing), string(layout.ArrangementGrid)},
		func(s string) {
			arr, err := layout.ParseArrangement(s)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.arrangement = arr
			a.arrange()
		},
	)
	arrangementSelect.SetSelected(string(a.arrangement))

	countSelect := widget.NewRadioGroup([]string{"2", "3", "4"}, func(s string) {
		if s == "" {
			return
		}
		a.count = int(s[0] - '0')
		a.arrange()
	})
	countSelect.Horizontal = true
	countSelect.SetSelected(fmt.Sprint(a.count))

	shuffleButton := widget.NewButton("Shuffle Positions", func() {
		a.shuffle()
	})
	recomputeButton := widget.NewButton("Recompute", func() {
		if _, err := a.connector.Recompute(); err != nil {
			dialog.ShowError(err, a.window)
		}
	})
	fitButton := widget.NewButton("Fit View", func() {
		a.renderer.FitView()
	})
	clearButton := widget.NewButton("Clear Selection", func() {
		a.renderer.ClearSelection()
		a.touchingLabel.SetText("Tap an anchor to list its segments")
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Tap an anchor to highlight its segments\n" +
			"• Orange segments start at the anchor, blue ones end there\n" +
			"• Drag to pan, scroll to zoom\n" +
			"• Shuffle starts a new generation while old positions are in flight",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Anchors:"),
		arrangementSelect,
		countSelect,
		widget.NewSeparator(),
		a.statusLabel,
		widget.NewSeparator(),
		widget.NewLabel("Segments:"),
		a.segmentsLabel,
		widget.NewSeparator(),
		widget.NewLabel("Selected Anchor:"),
		a.touchingLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		shuffleButton,
		recomputeButton,
		fitButton,
		clearButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(360, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, a.renderer)
	a.window.SetContent(content)
}

// arrange places the anchors with the selected default arrangement
func (a *App) arrange() {
	points, err := layout.Arrange(a.arrangement, containerSize, a.count)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.place(points)
}

// shuffle moves every anchor to a random spot inside the container
func (a *App) shuffle() {
	points := make([]geometry.Vector2, a.count)
	for i := range points {
		points[i] = geometry.NewVector2(
			rand.Float64()*containerSize.Width,
			rand.Float64()*containerSize.Height,
		)
	}
	a.place(points)
}

// place starts a new generation and reports each position after a random
// delay from its own goroutine, the way independent views finish layout
func (a *App) place(points []geometry.Vector2) {
	gen, err := a.connector.SetAnchors(points)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.renderer.SetAnchors(a.connector.Anchors())
	a.renderer.SetSegments(nil)
	a.statusLabel.SetText(fmt.Sprintf("Generation %d: waiting for %d positions", gen, len(points)))

	for i, p := range points {
		delay := time.Duration(rand.Int64N(int64(maxReportDelay)))
		go func() {
			time.Sleep(delay)
			if err := a.connector.ReportAnchorPosition(gen, i, p); err != nil {
				a.logger.Warn("failed to report anchor position", "index", i, "error", err)
			}
		}()
	}

	go func() {
		if _, err := a.connector.Wait(context.Background()); err != nil {
			a.logger.Debug("barrier ended without segments", "generation", gen, "error", err)
		}
	}()
}

// watchFile loads a layout file and reloads it whenever it changes
func (a *App) watchFile(filename string) {
	l, err := trackfile.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load layout file: %w", err), a.window)
		a.arrange()
		return
	}
	a.count = l.AnchorCount()
	a.place(l.Points())

	w, err := watcher.New(watcher.DefaultDebounce, a.logger)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	err = w.Watch(filename, func(_ string, l *trackfile.Layout) {
		fyne.Do(func() {
			a.count = l.AnchorCount()
			a.place(l.Points())
		})
	})
	if err != nil {
		dialog.ShowError(err, a.window)
		w.Close()
		return
	}
	w.Start(context.Background())
	a.watcher = w
}

func (a *App) updateInfo(gen track.Generation, segments []track.Segment) {
	stats := a.connector.Stats()
	a.statusLabel.SetText(fmt.Sprintf(
		"Generation %d ready\nRecomputes: %d\nStale reports dropped: %d",
		gen, stats.Recomputes, stats.StaleReports,
	))

	result := analysis.Analyze(segments)
	var b strings.Builder
	for _, s := range segments {
		fmt.Fprintf(&b, "%s  %8.2f  %7.2f°\n", s.Pair(), s.Length, s.Angle)
	}
	fmt.Fprintf(&b, "\nTotal length: %s", analysis.FormatMeasurement(result.TotalLength, ""))
	a.segmentsLabel.SetText(b.String())
}

func (a *App) updateTouching(index int) {
	adjacent, err := a.connector.SegmentsTouching(index)
	if err != nil {
		a.touchingLabel.SetText(err.Error())
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Anchor %d\n", index)
	for _, adj := range adjacent {
		fmt.Fprintf(&b, "%s  %-8s  %7.2f°\n", adj.Pair(), adj.Orientation, adj.Angle)
	}
	a.touchingLabel.SetText(b.String())
}
