package htmldeck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/htmldeck/charts"
	"github.com/tsawler/htmldeck/format"
	"github.com/tsawler/htmldeck/htmldoc"
	"github.com/tsawler/htmldeck/layout"
	"github.com/tsawler/htmldeck/mddoc"
	"github.com/tsawler/htmldeck/model"
	"github.com/tsawler/htmldeck/pptx"
)

// Result describes a finished conversion.
type Result struct {
	Output     string // output path; empty when written to an io.Writer
	Slides     int    // slides written
	Charts     int    // chart images embedded
	Unresolved int    // chart placeholders without a usable image
	Warnings   []Warning
}

// Converter provides a fluent interface for converting slide documents.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source (only one is used)
	filename string
	data     []byte
	hasData  bool
	src      io.Reader

	// Input format; Unknown means detect from content
	format format.Format

	// Configuration
	options ConvertOptions
}

// clone creates a shallow copy of the Converter with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		data:     c.data,
		hasData:  c.hasData,
		src:      c.src,
		format:   c.format,
		options:  c.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Format overrides the input format detected from the file name or content.
//
// Example:
//
//	res, err := htmldeck.Open("slides.txt").Format(format.Markdown).Convert("slides.pptx")
func (c *Converter) Format(f format.Format) *Converter {
	newConv := c.clone()
	newConv.format = f
	return newConv
}

// ImageDir sets the directory searched for chart placeholder images.
// A missing directory leaves every placeholder unresolved.
func (c *Converter) ImageDir(dir string) *Converter {
	newConv := c.clone()
	newConv.options.imageDir = dir
	return newConv
}

// MaxImageWidth scales chart images wider than px pixels down to px.
// Zero embeds images at their own size.
func (c *Converter) MaxImageWidth(px int) *Converter {
	newConv := c.clone()
	newConv.options.maxImageWidth = px
	return newConv
}

// Workers sets how many slides are laid out at once. Zero or less uses
// GOMAXPROCS. The output does not depend on the worker count.
func (c *Converter) Workers(n int) *Converter {
	newConv := c.clone()
	newConv.options.workers = n
	return newConv
}

// Limits sets the per-slide placement limits. Zero fields keep their
// defaults.
//
// Example:
//
//	res, err := htmldeck.Open("index.html").
//	    Limits(layout.Limits{Bullets: 6, TableRows: 8}).
//	    Convert("index.pptx")
func (c *Converter) Limits(l layout.Limits) *Converter {
	newConv := c.clone()
	newConv.options.limits = l.WithDefaults()
	return newConv
}

// Subtitle sets the text shown on the title slide when it has no
// paragraphs. Lines are separated by "\n".
func (c *Converter) Subtitle(text string) *Converter {
	newConv := c.clone()
	newConv.options.subtitle = text
	return newConv
}

// BestMarker sets the text that marks a table row as the best result.
// Matching ignores case; an empty marker only highlights rows marked in
// the markup.
func (c *Converter) BestMarker(marker string) *Converter {
	newConv := c.clone()
	newConv.options.bestMarker = marker
	return newConv
}

// Logger sets the logger that receives progress and warnings. By default
// nothing is logged.
func (c *Converter) Logger(l *slog.Logger) *Converter {
	newConv := c.clone()
	newConv.options.logger = l
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Slides runs the extraction pass alone and returns one record per slide
// fragment in document order.
//
// Example:
//
//	slides, err := htmldeck.Open("index.html").Slides()
//	for i, s := range slides {
//	    fmt.Printf("%d: %s (%d blocks)\n", i+1, s.Title, s.BlockCount())
//	}
func (c *Converter) Slides() ([]model.SlideRecord, error) {
	doc, err := c.open(context.Background())
	if err != nil {
		return nil, err
	}
	return doc.Slides(), nil
}

// Metadata returns the document title, author, description and keywords.
func (c *Converter) Metadata() (model.Metadata, error) {
	doc, err := c.open(context.Background())
	if err != nil {
		return model.Metadata{}, err
	}
	return doc.Metadata(), nil
}

// Document lays out every slide and returns the positioned pages without
// writing a file.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	return c.document(context.Background())
}

// Convert writes the presentation to outputPath, replacing any existing
// file.
//
// Example:
//
//	res, err := htmldeck.Open("index.html").ImageDir("images").Convert("index.pptx")
func (c *Converter) Convert(outputPath string) (*Result, error) {
	return c.ConvertContext(context.Background(), outputPath)
}

// ConvertContext is like Convert but stops early when ctx is done.
func (c *Converter) ConvertContext(ctx context.Context, outputPath string) (*Result, error) {
	if outputPath == "" {
		return nil, wrapError("write", "", ErrOutput, errors.New("no output path"))
	}

	w, res, err := c.build(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := w.Save(outputPath); err != nil {
		return nil, wrapError("write", outputPath, ErrOutput, err)
	}

	res.Output = outputPath
	c.options.log().Info("wrote presentation", "path", outputPath, "slides", res.Slides)
	return res, nil
}

// ConvertTo writes the presentation to dst.
func (c *Converter) ConvertTo(ctx context.Context, dst io.Writer) (*Result, error) {
	w, res, err := c.build(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := w.WriteTo(dst); err != nil {
		return nil, wrapError("write", "", ErrOutput, err)
	}
	return res, nil
}

// build lays out the deck and fills a writer ready to be finalized.
func (c *Converter) build(ctx context.Context) (*pptx.Writer, *Result, error) {
	doc, warnings, err := c.document(ctx)
	if err != nil {
		return nil, nil, err
	}

	canvas := layout.DefaultCanvas
	w := pptx.NewWriter(canvas.Width, canvas.Height)
	w.SetMetadata(doc.Metadata)
	for _, page := range doc.Pages {
		if err := w.AddPage(page); err != nil {
			return nil, nil, wrapError("write", "", ErrOutput, fmt.Errorf("slide %d: %w", page.Number, err))
		}
	}

	res := &Result{
		Slides:   w.PageCount(),
		Warnings: warnings,
	}
	for _, page := range doc.Pages {
		res.Charts += len(model.Elements[*model.Image](page))
	}
	for _, warn := range warnings {
		if warn.IsResource() {
			res.Unresolved++
		}
	}
	return w, res, nil
}

// document extracts the slide records and lays them out, several slides at
// a time. Pages keep document order whatever the worker count.
func (c *Converter) document(ctx context.Context) (*model.Document, []Warning, error) {
	src, err := c.open(ctx)
	if err != nil {
		return nil, nil, err
	}
	logger := c.options.log()

	records := src.Slides()
	logger.Debug("extracted slides", "count", len(records))

	resolver := charts.NewResolver(c.options.imageDir)
	resolver.MaxPixelWidth = c.options.maxImageWidth

	renderer := layout.NewRenderer(resolver)
	renderer.Limits = c.options.limits
	renderer.Subtitle = c.options.subtitle
	renderer.BestMarker = c.options.bestMarker

	pages := make([]*model.Page, len(records))
	pageWarnings := make([][]Warning, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.options.workerCount())
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pages[i], pageWarnings[i] = renderer.RenderSlide(i, len(records), rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	doc := model.NewDocument()
	doc.Metadata = src.Metadata()
	var warnings []Warning
	for i, page := range pages {
		doc.AddPage(page)
		logger.Debug("laid out slide", "slide", page.Number,
			"shapes", page.CountType(model.ElementTypeShape)+page.CountType(model.ElementTypeTextBox),
			"tables", page.CountType(model.ElementTypeTable),
			"images", page.CountType(model.ElementTypeImage))
		for _, elem := range page.Overflow() {
			logger.Debug("element extends past the slide", "slide", page.Number, "type", elem.Type().String())
		}
		for _, warn := range pageWarnings[i] {
			logger.Warn(warn.Message, "slide", warn.Slide, "code", warn.Code.String())
			warnings = append(warnings, warn)
		}
	}
	return doc, warnings, nil
}

// open reads and parses the source document.
func (c *Converter) open(ctx context.Context) (*htmldoc.Reader, error) {
	data, err := c.read()
	if err != nil {
		return nil, err
	}

	f := c.format
	if f == format.Unknown {
		if f, err = format.DetectFromReader(bytes.NewReader(data), int64(len(data))); err != nil {
			f = format.Unknown
		}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, wrapError("read", c.filename, ErrInput, errors.New("empty document"))
	}

	switch f {
	case format.HTML:
		// Any text parses as HTML; only binary data is refused.
		if !format.IsText(data) {
			return nil, wrapError("parse", c.filename, ErrInput, errors.New("document is not text"))
		}
		doc, err := htmldoc.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, wrapError("parse", c.filename, ErrInput, err)
		}
		return doc, nil

	case format.Markdown:
		node, err := mddoc.NewConverter().Convert(ctx, data)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			return nil, wrapError("parse", c.filename, ErrInput, err)
		}
		return htmldoc.FromNode(node), nil

	case format.Unknown:
		return nil, wrapError("parse", c.filename, ErrInput, errors.New("document is not markup"))

	default:
		return nil, wrapError("read", c.filename, ErrUnsupportedFormat, fmt.Errorf("%s input", f))
	}
}

// read returns the raw document bytes.
func (c *Converter) read() ([]byte, error) {
	switch {
	case c.filename != "":
		data, err := os.ReadFile(c.filename)
		if err != nil {
			return nil, wrapError("read", c.filename, ErrInput, err)
		}
		return data, nil
	case c.hasData:
		return c.data, nil
	case c.src != nil:
		data, err := io.ReadAll(c.src)
		if err != nil {
			return nil, wrapError("read", "", ErrInput, err)
		}
		return data, nil
	default:
		return nil, &ConversionError{Op: "read", Err: ErrNoInput}
	}
}
