package docbind_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	docbind "github.com/alnah/go-docbind"
)

// Example demonstrates compiling a directory to HTML.
// For PDF output, use Compile instead of CompileHTML (requires Chrome).
func Example() {
	dir, err := os.MkdirTemp("", "docbind-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("Hello from docbind"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	comp, err := docbind.NewCompiler()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer comp.Close()

	result, err := comp.CompileHTML(context.Background(), dir)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.HTML), "Hello from docbind") {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}

// Example_withOptions demonstrates tuning image normalization and the footer.
func Example_withOptions() {
	dir, err := os.MkdirTemp("", "docbind-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, "report.txt"), []byte("Quarterly numbers"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	comp, err := docbind.NewCompiler(
		docbind.WithImageBound(1200),
		docbind.WithJPEGQuality(70),
		docbind.WithPageNumbers(false),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer comp.Close()

	result, err := comp.CompileHTML(context.Background(), dir)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Compiled %d file(s)\n", len(result.Sections))
	// Output: Compiled 1 file(s)
}
