package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/danielpatrickdp/symptom-triage/internal/audit"
	"github.com/danielpatrickdp/symptom-triage/internal/dataset"
	"github.com/danielpatrickdp/symptom-triage/internal/knowledge"
	"github.com/danielpatrickdp/symptom-triage/internal/lexicon"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "triage.db", "path to triage.db")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	data, err := dataset.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer data.Close()

	kb, err := knowledge.NewStore(data.DB(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open knowledge base: %v\n", err)
		os.Exit(1)
	}

	auditLog, err := audit.NewLog(data.DB())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open audit log: %v\n", err)
		os.Exit(1)
	}

	if err := run(data, kb, auditLog, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region report

type report struct {
	FeatureColumns []string       `json:"feature_columns"`
	CaseCounts     map[string]int `json:"case_counts"`
	InfoEntries    int            `json:"info_entries"`
	GuidanceRows   int            `json:"guidance_rows"`
	DiagnosesMade  int            `json:"diagnoses_made"`
}

func run(data *dataset.Store, kb *knowledge.Store, auditLog *audit.Log, jsonOut bool) error {
	cols, err := data.FeatureSpace()
	if err != nil {
		return err
	}
	counts, err := data.CaseCounts()
	if err != nil {
		return err
	}
	infoCount, guidanceCount, err := kb.Coverage()
	if err != nil {
		return err
	}
	diagnoses, err := auditLog.Count()
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(report{
			FeatureColumns: cols,
			CaseCounts:     counts,
			InfoEntries:    infoCount,
			GuidanceRows:   guidanceCount,
			DiagnosesMade:  diagnoses,
		})
	}

	fmt.Printf("Feature space: %d columns\n", len(cols))
	for i, c := range cols {
		fmt.Printf("  %2d  %-22s %s\n", i, c, lexicon.Describe(c))
	}

	labels := make([]string, 0, len(counts))
	total := 0
	for label, n := range counts {
		labels = append(labels, label)
		total += n
	}
	sort.Strings(labels)
	fmt.Printf("\nTraining cases: %d over %d labels\n", total, len(labels))
	for _, label := range labels {
		fmt.Printf("  %3d  %s\n", counts[label], label)
	}

	fmt.Printf("\nKnowledge base: %d descriptions, %d guidance rows\n", infoCount, guidanceCount)

	fmt.Printf("\nDiagnoses logged: %d\n", diagnoses)
	if recent, err := auditLog.Recent(5); err == nil {
		for _, e := range recent {
			fmt.Printf("  %s  %-20s %s (%.1f%%)\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.TopLabel, e.Tier, e.Probability*100)
		}
	}
	return nil
}

// #endregion report
