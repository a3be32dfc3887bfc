package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rook-computer/appicon/internal/export"
	"github.com/rook-computer/appicon/internal/render"
)

type App struct {
	Dir      string
	Sizes    []int
	Files    export.Files
	Renderer *render.IconRenderer
	Logger   Logger
	Out      io.Writer
}

func New(dir string, out io.Writer) *App {
	return &App{
		Dir:      dir,
		Sizes:    render.Sizes(),
		Files:    export.DefaultFiles(),
		Renderer: render.NewIconRenderer(),
		Logger:   NoopLogger{},
		Out:      out,
	}
}

// Run renders every size, writes both output files and reports them on Out.
// Nothing is printed when any step fails.
func (app *App) Run(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Renderer == nil {
		app.Renderer = render.NewIconRenderer()
	}
	app.Renderer.Logger = app.Logger

	start := time.Now()
	set, err := app.Renderer.Render(ctx, app.Sizes)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := export.Write(app.Dir, app.Files, set, app.Logger); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	app.Logger.Infof("app", "done in %s", time.Since(start))

	if app.Out != nil {
		fmt.Fprintf(app.Out, "Created %s and %s\n", app.Files.ICO, app.Files.PNG)
	}
	return nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ErrorsOnly forwards Errorf to the wrapped Logger and drops Infof.
type ErrorsOnly struct{ Logger }

func (ErrorsOnly) Infof(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
