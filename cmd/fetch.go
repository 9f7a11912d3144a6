package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jjenkins/narou-reader/internal/handlers"
	"github.com/jjenkins/narou-reader/internal/model"
	"github.com/spf13/cobra"
)

var fetchPage int

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a page from the upstream site and print it as plain text",
	Long: `Fetch runs the same fetch-and-parse path as the web server and
prints the extracted records to stdout. Useful for checking that the
upstream layout is still understood.

Examples:
  # Search for novels
  ./narou fetch search 転生

  # Second page of a table of contents
  ./narou fetch toc n9669bk --page 2

  # A single chapter
  ./narou fetch chapter n9669bk 1`,
}

var fetchSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Print search results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(ctx context.Context, r handlers.NovelReader) error {
			result, err := r.Search(ctx, strings.Join(args, " "), fetchPage)
			if err != nil {
				return err
			}
			printSearch(cmd.OutOrStdout(), result)
			return nil
		})
	},
}

var fetchTocCmd = &cobra.Command{
	Use:   "toc <ncode>",
	Short: "Print a novel's table of contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(ctx context.Context, r handlers.NovelReader) error {
			novel, pagination, err := r.TableOfContents(ctx, args[0], fetchPage)
			if err != nil {
				return err
			}
			printToc(cmd.OutOrStdout(), novel, pagination)
			return nil
		})
	},
}

var fetchChapterCmd = &cobra.Command{
	Use:   "chapter <ncode> <chapter>",
	Short: "Print a chapter body",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(func(ctx context.Context, r handlers.NovelReader) error {
			ch, nav, err := r.Chapter(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			printChapter(cmd.OutOrStdout(), ch, nav)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.AddCommand(fetchSearchCmd, fetchTocCmd, fetchChapterCmd)
	fetchCmd.PersistentFlags().IntVar(&fetchPage, "page", 1, "Page number for search and toc")
}

// withReader sets up config, logging and an interruptible context around fn
func withReader(fn func(ctx context.Context, r handlers.NovelReader) error) error {
	cfg, logger, err := loadConfig("")
	if err != nil {
		return err
	}
	if fetchPage < 1 {
		fetchPage = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return fn(ctx, newReader(cfg, logger))
}

func printSearch(w io.Writer, page *model.SearchPage) {
	fmt.Fprintf(w, "「%s」の検索結果 (%s件) - page %d\n\n", page.Query, page.Total, page.Page)
	for i, r := range page.Results {
		fmt.Fprintf(w, "%d. %s [%s]\n   作者: %s\n   %s\n\n", i+1, r.Title, r.Ncode, r.Author, r.Summary)
	}
	printPagination(w, page.Pagination)
}

func printToc(w io.Writer, novel *model.Novel, pagination model.Pagination) {
	fmt.Fprintf(w, "%s [%s]\n作者: %s\n\n%s\n\n", novel.Title, novel.Ncode, novel.Author, novel.Summary)
	for _, e := range novel.Episodes {
		if e.IsChapter {
			fmt.Fprintf(w, "== %s ==\n", e.Title)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", e.Chapter, e.Title)
	}
	fmt.Fprintln(w)
	printPagination(w, pagination)
}

func printChapter(w io.Writer, ch *model.Chapter, nav model.ChapterNav) {
	fmt.Fprintf(w, "%s\n%s\n\n", ch.NovelTitle, ch.Subtitle)
	for _, block := range [][]string{ch.Preface, ch.Body, ch.Afterword} {
		if len(block) == 0 {
			continue
		}
		fmt.Fprintln(w, strings.Join(block, "\n"))
		fmt.Fprintln(w)
	}
	if nav.Prev != "" {
		fmt.Fprintf(w, "prev: %s\n", nav.Prev)
	}
	if nav.Next != "" {
		fmt.Fprintf(w, "next: %s\n", nav.Next)
	}
}

func printPagination(w io.Writer, p model.Pagination) {
	if p.HasPrev() {
		fmt.Fprintf(w, "prev page: %d\n", p.Prev)
	}
	if p.HasNext() {
		fmt.Fprintf(w, "next page: %d\n", p.Next)
	}
}
