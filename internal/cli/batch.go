package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazelpaw/captionforge/internal/compose"
	"github.com/hazelpaw/captionforge/internal/llm"
	"github.com/hazelpaw/captionforge/internal/templates"
)

var (
	batchCount    int
	batchOut      string
	batchTimeout  time.Duration
	batchProvider string
	batchModel    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate a batch of captions to a file",
	Long: `Batch runs the full pipeline repeatedly with a random style and a
random major city per iteration, writing one caption per line.

Example:
  captionforge batch --count 30 --out data/mixed_style_captions.txt`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchCount, "count", 30, "number of captions to generate")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "output file (default: data dir mixed_style_captions.txt)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch pass")
	batchCmd.Flags().StringVar(&batchProvider, "llm-provider", "deepseek", "completion provider (openai, deepseek, ollama)")
	batchCmd.Flags().StringVar(&batchModel, "llm-model", "deepseek-chat", "completion model name")
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	cfg := loadConfig()
	cfg.LLM.Provider = batchProvider
	cfg.LLM.Model = batchModel

	a, err := buildApp(cfg)
	if err != nil {
		return err
	}

	out := batchOut
	if out == "" {
		out = filepath.Join(cfg.Data.Dir, cfg.Data.OutputFile)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Generating %d captions to %s\n", batchCount, out)

	written := 0
	for i := 0; i < batchCount; i++ {
		if ctx.Err() != nil {
			break
		}

		style := compose.RandomStyle()
		location := templates.MajorCities[rand.Intn(len(templates.MajorCities))]

		prompt := a.composer.Compose(ctx, style, location, "")
		resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
			System: prompt.System,
			User:   prompt.User,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [%s] completion error: %v\n", style, err)
			continue
		}

		caption := a.sanitizer.Clean(resp.Text, style, location)
		if _, err := fmt.Fprintln(f, caption); err != nil {
			return fmt.Errorf("write caption: %w", err)
		}
		written++

		if verbose {
			fmt.Fprintf(os.Stderr, "  [%s] %s\n", style, caption)
		}
	}

	fmt.Fprintf(os.Stderr, "Wrote %d captions to %s\n", written, out)
	return nil
}
