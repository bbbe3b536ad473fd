package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"apafmt/internal/config"
	"apafmt/internal/document"
	"apafmt/internal/docx"
	"apafmt/internal/parser"
	"apafmt/internal/watch"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "apafmt",
		Short: "Markdown to APA 7th edition document formatter",
	}
	configPath    string
	titleDataPath string
	outputPath    string
	watchMode     bool
	sampleDir     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the optional YAML config file")

	formatCmd.Flags().StringVarP(&titleDataPath, "title-data", "t", "", "Path to the title page data file (YAML or JSON)")
	formatCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output .docx path (default: input name with .docx)")
	formatCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Reformat whenever the input or title data file changes")
	formatCmd.MarkFlagRequired("title-data")

	sampleCmd.Flags().StringVarP(&sampleDir, "out", "o", ".", "Directory to write the sample paper into")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sampleCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format [input.md]",
	Short: "Format a markdown-style text file as an APA .docx document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]

		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		out := outputPath
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".docx"
			out = filepath.Join(cfg.Document.OutputDir, base)
		}

		if err := runFormat(cfg, input, titleDataPath, out); err != nil {
			fatalFormat(err)
		}
		fmt.Printf("✅ APA document created: %s\n", out)

		if !watchMode {
			return
		}

		w, err := watch.New(func(path string) {
			fmt.Printf("🔄 %s changed, reformatting...\n", filepath.Base(path))
			if err := runFormat(cfg, input, titleDataPath, out); err != nil {
				fmt.Printf("⚠️  Reformat failed: %v\n", err)
				return
			}
			fmt.Printf("✅ APA document updated: %s\n", out)
		})
		if err != nil {
			log.Fatalf("Failed to start watcher: %v", err)
		}
		defer w.Close()

		for _, path := range []string{input, titleDataPath} {
			if err := w.Add(path); err != nil {
				log.Fatalf("Failed to watch %s: %v", path, err)
			}
		}

		fmt.Println("👀 Watching for changes. Press Ctrl+C to stop.")
		w.Run()
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [input.md]",
	Short: "Print the classified blocks without writing a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}

		result := parser.Parse(string(raw))
		for _, b := range result.Blocks {
			switch b.Type {
			case parser.BlockHeading:
				fmt.Printf("[H%d] %s\n", b.Level, b.Text)
			case parser.BlockParagraph:
				fmt.Printf("[P]  %s\n", b.Text)
			case parser.BlockFormula:
				fmt.Printf("[F]  %s\n", b.Text)
			}
		}
		if len(result.References) > 0 {
			fmt.Printf("\nReferences (%d):\n", len(result.References))
			for _, ref := range result.References {
				fmt.Printf("  - %s\n", ref)
			}
		}
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample paper (markdown body + title data) to get started",
	Run: func(cmd *cobra.Command, args []string) {
		if err := os.MkdirAll(sampleDir, 0755); err != nil {
			log.Fatalf("Failed to create directory: %v", err)
		}
		files := map[string]string{
			"paper.md":   sampleBody,
			"paper.yaml": sampleTitleData,
		}
		for name, content := range files {
			path := filepath.Join(sampleDir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				log.Fatalf("Failed to write %s: %v", path, err)
			}
			fmt.Printf("📝 Wrote %s\n", path)
		}
		fmt.Println("🎉 Try: apafmt format paper.md -t paper.yaml")
	},
}

// runFormat executes the full parse -> map -> assemble pipeline once.
func runFormat(cfg *config.Config, inputPath, titlePath, outPath string) error {
	td, err := config.LoadTitleData(titlePath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", inputPath, err)
	}

	doc := docx.New(docx.Options{Font: cfg.Document.Font, SizePt: cfg.Document.SizePt})
	return document.NewAssembler(doc).Assemble(td, string(raw), outPath)
}

func fatalFormat(err error) {
	var verr *document.ValidationError
	if errors.As(err, &verr) {
		log.Fatalf("Invalid title data: %v", verr)
	}
	log.Fatalf("Format failed: %v", err)
}
