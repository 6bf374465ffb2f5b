package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"fxledger/internal/config"
	"fxledger/internal/ledger"
	"fxledger/internal/models"
	"fxledger/internal/repositories"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// loadSnapshot reads the snapshot under a shared lock, so it is safe to run
// next to a live server
func loadSnapshot(snapshot string) (*ledger.Ledger, error) {
	cfg := config.Load()
	path, lockPath := cfg.Storage.SnapshotPath, cfg.Storage.LockPath
	if snapshot != "" {
		path, lockPath = snapshot, snapshot+".lock"
	}
	repo, err := repositories.NewSnapshotRepository(path, lockPath)
	if err != nil {
		return nil, err
	}
	return repo.Load()
}

type inspectCmd struct {
	snapshot string
	base     string
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "summarize a ledger snapshot" }
func (*inspectCmd) Usage() string {
	return `inspect [-snapshot <file>] [-base <currency>]

Prints the exchange rates, the cross rate of every currency against the base
currency, the users and their account totals.
`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.snapshot, "snapshot", "", "snapshot file, defaults to LEDGER_SNAPSHOT_PATH")
	f.StringVar(&c.base, "base", models.PivotCurrency.String(), "currency the cross rates are quoted against")
}

func (c *inspectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	base, err := models.ParseCurrency(c.base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l, err := loadSnapshot(c.snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printSummary(os.Stdout, l, base); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printSummary(out io.Writer, l *ledger.Ledger, base models.Currency) error {
	stats := l.Stats()
	fmt.Fprintf(out, "users: %d  accounts: %d  journal entries: %d\n\n", stats.Users, stats.Accounts, stats.JournalEntries)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CURRENCY\tRATE\tPER 1 %s\n", base)
	rates := l.Rates()
	for _, c := range models.AllCurrencies() {
		cross, err := l.Currencies().CrossRate(base, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c, rates[c], cross.StringFixed(4))
	}
	_ = w.Flush()
	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLIENT\tUSERNAME\tACCOUNTS\tTOTAL (EUR)")
	for _, u := range l.Users {
		total := decimal.Zero
		for _, a := range u.Accounts {
			total = total.Add(a.Total)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", u.ClientID, u.Username, len(u.Accounts), total.StringFixed(2))
	}
	return w.Flush()
}

type historyCmd struct {
	snapshot string
	user     string
	limit    int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print the transaction journal of a user" }
func (*historyCmd) Usage() string {
	return `history -user <name> [-limit n] [-snapshot <file>]

Prints the journal records of one user, most recent first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.snapshot, "snapshot", "", "snapshot file, defaults to LEDGER_SNAPSHOT_PATH")
	f.StringVar(&c.user, "user", "", "username whose history is printed")
	f.IntVar(&c.limit, "limit", 0, "maximum number of records, 0 prints all")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required.")
		return subcommands.ExitUsageError
	}

	l, err := loadSnapshot(c.snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printHistory(os.Stdout, l, c.user, c.limit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printHistory(out io.Writer, l *ledger.Ledger, username string, limit int) error {
	idx, err := l.FindUser(username)
	if err != nil {
		return fmt.Errorf("user %q: %w", username, err)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tACCOUNT\tKIND\tFROM\tTO\tAMOUNT\tCONVERTED\tRATE")
	n := 0
	for r := range l.History(l.Users[idx].ClientID) {
		if limit > 0 && n == limit {
			break
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.AccountID, r.Kind,
			currencyLabel(r.From), currencyLabel(r.To), r.AmountFrom, r.AmountTo, r.Rate)
		n++
	}
	return w.Flush()
}

func currencyLabel(c models.Currency) string {
	if c == models.NoCurrency {
		return "-"
	}
	return c.String()
}
