// Package docbind compiles a directory of heterogeneous office documents
// (PDF, DOCX, XLSX, TXT, images) into one formatted PDF.
//
// # Quick Start
//
// Create a compiler, compile a directory, and close when done:
//
//	comp, err := docbind.NewCompiler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer comp.Close()
//
//	result, err := comp.Compile(ctx, "/path/to/documents")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("compiled.pdf", result.PDF, 0644)
//
// The result contains the PDF bytes (result.PDF), the intermediate HTML
// (result.HTML) for debugging, and a per-file section report.
//
// # Compilation Pipeline
//
// The pipeline runs four stages, strictly sequential:
//
//  1. Scan: enumerate supported files in the input directory (sorted walk)
//  2. Extract: one typed handler per format produces content blocks
//  3. Normalize: embedded images are bounded, flattened to RGB, and
//     recompressed as JPEG
//  4. Assemble: title page, per-file metadata blocks, and content render to
//     HTML, then print to PDF via headless Chrome (go-rod)
//
// A failure while extracting one file never aborts the batch: the file's
// section is replaced by a visible failure marker and compilation continues.
// Only an invalid input directory or a failed final write is fatal.
//
// # Configuration
//
// Use functional options to customize the compiler:
//
//	comp, err := docbind.NewCompiler(
//	    docbind.WithTimeout(2 * time.Minute),
//	    docbind.WithImageBound(1200),
//	    docbind.WithJPEGQuality(90),
//	    docbind.WithClock(func() time.Time { return fixed }),
//	    docbind.WithLogf(log.Printf),
//	)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package docbind
