package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ordercli/internal/application"
	"ordercli/internal/config"
	"ordercli/internal/storage/jsonfile"
)

// itemFlags collects repeated --item values.
type itemFlags []string

func (f *itemFlags) String() string { return strings.Join(*f, " ") }

func (f *itemFlags) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	repo, err := jsonfile.New(cfg.StoragePath, cfg.Retry, logger)
	if err != nil {
		logger.Fatal("can't open storage", zap.String("path", cfg.StoragePath), zap.Error(err))
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		customer := fs.String("customer", "", "Customer ID")
		var items itemFlags
		fs.Var(&items, "item", "Line item in format 'productId,quantity,unitPrice' (repeatable)")
		_ = fs.Parse(os.Args[2:])

		printJSON(application.NewCreateOrder(repo, logger).Execute(ctx, *customer, items))

	case "view":
		fs := flag.NewFlagSet("view", flag.ExitOnError)
		id := fs.String("id", "", "Order ID to view")
		_ = fs.Parse(os.Args[2:])

		printJSON(application.NewViewOrder(repo, logger).Execute(ctx, *id))

	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		output := fs.String("output", "json", "Output format: json or table")
		_ = fs.Parse(os.Args[2:])

		resp := application.NewListOrders(repo, logger).Execute(ctx)
		if *output == "table" {
			printTable(resp)
		} else {
			printJSON(resp)
		}

	default:
		printUsage()
		os.Exit(1)
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}

	// Logs go to stderr so stdout stays a single JSON document.
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printTable(resp application.Response) {
	list, ok := resp.(application.ListResponse)
	if !ok {
		printJSON(resp)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Order ID", "Customer", "Status", "Total", "Created At"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, o := range list.Orders {
		table.Append([]string{
			o.OrderID,
			o.CustomerID,
			o.Status,
			strconv.FormatFloat(o.Total, 'f', 2, 64),
			o.CreatedAt,
		})
	}
	table.Render()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: ordercli <command> [flags]

Commands:
  create --customer <id> [--item productId,quantity,unitPrice]...
  view   --id <orderId>
  list   [--output json|table]`)
}
