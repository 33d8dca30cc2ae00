package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wxarchive/wxexport/internal/app"
	"github.com/wxarchive/wxexport/internal/config"
	"github.com/wxarchive/wxexport/internal/discover"
	"github.com/wxarchive/wxexport/internal/timerange"
)

func main() {
	dbFlag := flag.String("db", "", "message database path (MSG.db)")
	contactsFlag := flag.String("contacts", "", "contact database path (MicroMsg.db)")
	startFlag := flag.String("start", "", "start time (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)")
	endFlag := flag.String("end", "", "end time (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)")
	outputFlag := flag.String("output", "", "output file path (default: exports/ under the working directory)")
	listDBFlag := flag.Bool("list-db", false, "list discovered database files and exit")
	saveFlag := flag.Bool("save", false, "persist the resolved database paths as config defaults")
	flag.Usage = printUsage
	flag.Parse()

	// Config is an optional defaults file; a missing one is not an error.
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		cfg = &config.Config{}
	}

	msgDBs, contactDBs := discover.Databases(discover.Candidates())
	if *listDBFlag {
		cmdListDB(msgDBs, contactDBs)
		return
	}

	msgPath := config.ResolveSource(*dbFlag, cfg.MessageDB)
	if msgPath == "" {
		if len(msgDBs) == 0 {
			fmt.Fprintln(os.Stderr, "error: no message database found; pass -db pointing at a decrypted MSG.db")
			fmt.Fprintln(os.Stderr, "hint: run with -list-db to see every database discovered on this machine")
			os.Exit(1)
		}
		msgPath = msgDBs[0]
		fmt.Fprintf(os.Stderr, "using discovered message database: %s\n", msgPath)
	}

	contactPath := config.ResolveSource(*contactsFlag, cfg.ContactDB)
	if contactPath == "" {
		if len(contactDBs) == 0 {
			fmt.Fprintln(os.Stderr, "warning: no contact database found, contact details will be synthesized")
		} else {
			contactPath = contactDBs[0]
			fmt.Fprintf(os.Stderr, "using discovered contact database: %s\n", contactPath)
		}
	}

	if *saveFlag {
		cfg.MessageDB = msgPath
		cfg.ContactDB = contactPath
		if err := config.Save(config.ConfigPath(), cfg); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save config: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "saved defaults to %s\n", config.ConfigPath())
		}
	}

	r, err := timerange.FromStrings(*startFlag, *endFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	outputPath := *outputFlag
	if outputPath == "" && cfg.OutputDir != "" {
		start, end := r.FileTokens()
		outputPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("wechat_records_%s_to_%s.json", start, end))
	}

	path, err := app.Run(app.Params{
		MessageDBPath: msgPath,
		ContactDBPath: contactPath,
		OutputPath:    outputPath,
		Range:         r,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if path == "" {
		fmt.Println("no chat records matched the requested time range, nothing exported")
		return
	}
	fmt.Println(path)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: wxexport [-db <MSG.db>] [-contacts <MicroMsg.db>] [-start <time>] [-end <time>] [-output <file>]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Exports chat records from a decrypted message store to a JSON document,")
	fmt.Fprintln(os.Stderr, "grouped by conversation and enriched with contact metadata.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

func cmdListDB(msgDBs, contactDBs []string) {
	fmt.Println("message databases:")
	if len(msgDBs) == 0 {
		fmt.Println("  (none found)")
	}
	for _, p := range msgDBs {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println("contact databases:")
	if len(contactDBs) == 0 {
		fmt.Println("  (none found)")
	}
	for _, p := range contactDBs {
		fmt.Printf("  %s\n", p)
	}
	if len(msgDBs) > 0 && len(contactDBs) > 0 {
		fmt.Println()
		fmt.Printf("example: wxexport -db %q -contacts %q\n", msgDBs[0], contactDBs[0])
	}
}
