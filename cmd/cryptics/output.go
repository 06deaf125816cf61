package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"crosswarped.com/cryptics"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(format string) bool {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return true
	}
	return false
}

// writeResult renders result to out. Derivations are always included in structured
// output; the table only shows them when asked.
func writeResult(out io.Writer, result *cryptics.Result, format string, derivations bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}
	formatTableResult(out, result, derivations)
	return nil
}

// formatTableResult writes a ranked table of answers to out.
func formatTableResult(out io.Writer, result *cryptics.Result, derivations bool) {
	if len(result.Answers) == 0 {
		_, _ = fmt.Fprintln(out, "No answers found.")
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "RANK\tANSWER\tSCORE")
		for i, a := range result.Answers {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%.1f%%\n", i+1, strings.ToUpper(a.Answer), a.Similarity*100)
		}
		_ = w.Flush()
	}

	if derivations {
		for i, a := range result.Answers {
			_, _ = fmt.Fprintf(out, "\n%d. %s\n", i+1, strings.ToUpper(a.Answer))
			for _, d := range a.Derivations {
				_, _ = fmt.Fprintf(out, "   %s\n", d)
			}
			_, _ = fmt.Fprintf(out, "   %s\n", a.LongDerivation)
		}
	}

	if result.KnownAnswer == "" {
		return
	}
	known := strings.ToUpper(result.KnownAnswer)
	if result.KnownAnswerRank > 0 {
		_, _ = fmt.Fprintf(out, "Known answer %s ranked %d.\n", known, result.KnownAnswerRank)
	} else {
		_, _ = fmt.Fprintf(out, "Known answer %s was not found.\n", known)
	}
}
