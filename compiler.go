package docbind

import (
	"context"
	"fmt"
	"time"
)

// defaultTimeout bounds a single PDF render.
const defaultTimeout = 2 * time.Minute

// Logf receives per-file status lines and summaries. Inject one to capture
// pipeline output; the default discards everything.
type Logf func(format string, args ...any)

// compilerConfig holds internal configuration for Compiler.
type compilerConfig struct {
	timeout     time.Duration
	imageBound  int
	jpegQuality int
	pageNumbers bool
	clock       func() time.Time
	logf        Logf
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithTimeout sets the PDF render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docbind: WithTimeout duration must be positive")
	}
	return func(c *Compiler) {
		c.cfg.timeout = d
	}
}

// WithImageBound sets the maximum embedded-image dimension in pixels.
func WithImageBound(px int) Option {
	return func(c *Compiler) {
		c.cfg.imageBound = px
	}
}

// WithJPEGQuality sets the recompression quality for embedded images.
func WithJPEGQuality(q int) Option {
	return func(c *Compiler) {
		c.cfg.jpegQuality = q
	}
}

// WithPageNumbers enables a page-number footer in the output PDF.
func WithPageNumbers(enabled bool) Option {
	return func(c *Compiler) {
		c.cfg.pageNumbers = enabled
	}
}

// WithClock injects the time source used for the title page and per-file
// timestamps. Tests use this for deterministic output.
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) {
		c.cfg.clock = now
	}
}

// WithLogf injects the status reporter.
func WithLogf(logf Logf) Option {
	return func(c *Compiler) {
		c.cfg.logf = logf
	}
}

// Compiler runs the scan / extract / normalize / assemble pipeline.
// Create with NewCompiler, compile with Compile, and Close when done.
type Compiler struct {
	cfg          compilerConfig
	pdfConverter pdfConverter
}

// NewCompiler creates a Compiler with default configuration.
// Use options to customize behavior (e.g. WithTimeout, WithImageBound).
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		cfg: compilerConfig{
			timeout:     defaultTimeout,
			imageBound:  DefaultImageBound,
			jpegQuality: DefaultJPEGQuality,
			pageNumbers: true,
			clock:       time.Now,
			logf:        func(string, ...any) {},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.imageBound < 1 {
		return nil, fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidImageBound, c.cfg.imageBound)
	}
	if c.cfg.jpegQuality < 1 || c.cfg.jpegQuality > 100 {
		return nil, fmt.Errorf("%w: %d (must be 1-100)", ErrInvalidJPEGQuality, c.cfg.jpegQuality)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Compile scans dir and produces the compiled PDF. Files are processed
// strictly in scan order; a failure on one file is logged and replaced by a
// failure marker without touching sections already accumulated. Only an
// invalid directory or a failed render is fatal.
//
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (c *Compiler) Compile(ctx context.Context, dir string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return c.compile(ctx, dir, false)
}

// CompileHTML runs the pipeline but stops before PDF generation, returning
// the assembled HTML only. Useful for debugging layout without a browser.
func (c *Compiler) CompileHTML(ctx context.Context, dir string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return c.compile(ctx, dir, true)
}

func (c *Compiler) compile(ctx context.Context, dir string, htmlOnly bool) (*Result, error) {
	files, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	generatedAt := c.cfg.clock()
	docs := make([]Document, 0, len(files))
	sections := make([]SectionResult, 0, len(files))

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := c.cfg.clock()
		doc, extractErr := extractDocument(f, start)

		if extractErr == nil {
			for _, imgErr := range normalizeBlocks(doc.Blocks, c.cfg.imageBound, c.cfg.jpegQuality) {
				c.cfg.logf("warn: %s: %v", f.RelPath, imgErr)
			}
		}

		docs = append(docs, doc)
		sections = append(sections, SectionResult{
			File:     f,
			Kind:     f.Kind,
			Blocks:   len(doc.Blocks),
			Failed:   doc.Failed,
			Err:      extractErr,
			Duration: c.cfg.clock().Sub(start),
		})

		if extractErr != nil {
			c.cfg.logf("fail: %s: %v", f.RelPath, extractErr)
		} else {
			c.cfg.logf("ok:   %s (%d blocks)", f.RelPath, len(doc.Blocks))
		}
	}

	htmlContent, err := renderHTML(docs, dir, generatedAt)
	if err != nil {
		return nil, err
	}

	res := &Result{
		HTML:        []byte(htmlContent),
		SourceDir:   dir,
		GeneratedAt: generatedAt,
		Sections:    sections,
	}

	if htmlOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{PageNumbers: c.cfg.pageNumbers})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes

	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Compiler) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}
