package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/etnz/optrack"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a broker transaction export into the store" }
func (*importCmd) Usage() string {
	return `import -f <file>

  Parses a broker transaction CSV export and upserts the position-relevant
  transactions into the document store. Importing the same file again is
  harmless: records are keyed by a natural key derived from their fields.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Broker transaction CSV export (defaults to input.file from the configuration)")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg.Action = "import"

	file := c.file
	if file == "" {
		file = cfg.Input.File
	}
	if file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	log.Info().Str("file", file).Msg("importing transactions")
	txs, err := optrack.LoadCSVFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close(ctx)

	if err := st.Import(ctx, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Info().Int("rows", len(txs)).Msg("import complete")
	return subcommands.ExitSuccess
}
