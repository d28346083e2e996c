package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	gomponents "maragu.dev/gomponents"

	"rsccard/internal/card"
	"rsccard/internal/datefmt"
	"rsccard/internal/thumbnail"
	"rsccard/internal/table"
	"rsccard/internal/ui"
)

type renderOptions struct {
	input    string
	format   string
	driver   string
	dsn      string
	query    string
	output   string
	fragment bool
	title    string

	connectServer string
	dateLayout    string
	timezone      string
}

func bindRenderFlags(fs *pflag.FlagSet, o *renderOptions) {
	fs.StringVarP(&o.input, "input", "i", "", "Table file to read (- or empty for stdin)")
	fs.StringVar(&o.format, "format", "", "Table format: json or yaml (default: from file extension, else json)")
	fs.StringVar(&o.driver, "driver", "sqlite3", "Database driver for --query: sqlite3 or duckdb")
	fs.StringVar(&o.dsn, "dsn", "", "Database DSN for --query")
	fs.StringVar(&o.query, "query", "", "SQL query whose result set is the table")
	fs.StringVarP(&o.output, "output", "o", "", "File to write (default stdout)")
	fs.BoolVar(&o.fragment, "fragment", false, "Write only the cards, without a page or grid container")
	fs.StringVar(&o.title, "title", "Content", "Page title")
	fs.StringVar(&o.connectServer, "connect-server", os.Getenv("CONNECT_SERVER"), "Server base for thumbnail URLs (env CONNECT_SERVER)")
	fs.StringVar(&o.dateLayout, "date-layout", envOr("DATE_LAYOUT", datefmt.DefaultLayout), "Go time layout for card dates (env DATE_LAYOUT)")
	fs.StringVar(&o.timezone, "timezone", envOr("TIMEZONE", "UTC"), "IANA zone for card dates (env TIMEZONE)")
}

func newRenderCmd() *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a column table as content cards",
		Long: `Render a column table as content cards.

The table maps each field (url, guid, app_mode, owner_username, updated_time,
title, name, description) to an array of values, one per card. It is read from
--input, from stdin, or from the result set of --query.`,
		Example: `  rsccard render -i content.json -o cards.html
  cat content.yaml | rsccard render --format yaml --fragment
  rsccard render --dsn content.db --query "SELECT * FROM content"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, o)
		},
	}
	bindRenderFlags(cmd.Flags(), o)
	cmd.MarkFlagsMutuallyExclusive("input", "query")
	return cmd
}

func runRender(cmd *cobra.Command, o *renderOptions) error {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return fmt.Errorf("invalid --timezone %q: %w", o.timezone, err)
	}

	t, err := loadTable(cmd.Context(), cmd.InOrStdin(), o)
	if err != nil {
		return err
	}
	records, err := table.ToRecords(t)
	if err != nil {
		return fmt.Errorf("invalid table: %w", err)
	}

	renderer := card.NewRenderer(
		thumbnail.Resolver{Server: o.connectServer},
		datefmt.New(o.dateLayout, loc),
		thumbnail.View{Fallbacks: ui.InlineFallbacks()},
	)
	cards := renderer.RenderCards(records)

	node := ui.StandalonePage(o.title, cards)
	if o.fragment {
		node = card.Group(cards)
	}

	if o.output == "" || o.output == "-" {
		if err := node.Render(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("write cards: %w", err)
		}
		return nil
	}
	return writeFile(o.output, node)
}

func writeFile(path string, node gomponents.Node) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is operator supplied
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if err := node.Render(f); err != nil {
		return fmt.Errorf("write cards: %w", err)
	}
	return nil
}

func loadTable(ctx context.Context, stdin io.Reader, o *renderOptions) (table.Table, error) {
	if o.query != "" {
		return queryTable(ctx, o)
	}

	var (
		data []byte
		err  error
	)
	if o.input == "" || o.input == "-" {
		if isTerminal(stdin) {
			return nil, fmt.Errorf("no table on stdin: pass --input, --query, or pipe a table")
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(o.input)
	}
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	return table.Decode(tableFormat(o.format, o.input), data)
}

func queryTable(ctx context.Context, o *renderOptions) (table.Table, error) {
	if o.dsn == "" && o.driver != "duckdb" {
		return nil, fmt.Errorf("--dsn is required with --query")
	}
	db, err := sql.Open(o.driver, o.dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", o.driver, err)
	}
	defer db.Close() //nolint:errcheck

	if ctx == nil {
		ctx = context.Background()
	}
	frame, err := table.Query(ctx, db, o.query)
	if err != nil {
		return nil, fmt.Errorf("query table: %w", err)
	}
	return frame, nil
}

func tableFormat(format, input string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(input)) {
	case ".yaml", ".yml":
		return table.FormatYAML
	default:
		return table.FormatJSON
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
