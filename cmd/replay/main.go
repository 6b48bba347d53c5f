package main

// #region imports
import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/symptom-triage/internal/dataset"
	"github.com/danielpatrickdp/symptom-triage/internal/diagnose"
	"github.com/danielpatrickdp/symptom-triage/internal/knowledge"
	"github.com/danielpatrickdp/symptom-triage/internal/predict"
	"github.com/danielpatrickdp/symptom-triage/internal/transcript"
	"github.com/danielpatrickdp/symptom-triage/internal/triage"
)

// #endregion

// #region main

func main() {
	transcriptPath := flag.String("transcript", "", "path to transcript JSON")
	dbPath := flag.String("db", "triage.db", "path to triage.db")
	full := flag.Bool("full", false, "print full replies instead of the first line")
	flag.Parse()

	if *transcriptPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --transcript path/to/conversation.json [--db triage.db] [--full]")
		os.Exit(2)
	}

	t, err := transcript.Load(*transcriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	data, err := dataset.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer data.Close()

	// Replays are deterministic: no generative fallback.
	kb, err := knowledge.NewStore(data.DB(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open knowledge base: %v\n", err)
		os.Exit(1)
	}

	policy := diagnose.NewPolicy(data, predict.NewNaiveBayes(), kb, nil)
	harness := transcript.NewHarness(triage.NewAssistant(policy))

	results, st := harness.Run(t)

	fmt.Printf("Replaying %q (%d turns)\n\n", t.Name, len(t.Turns))
	for i, r := range results {
		reply := r.Reply
		if !*full {
			if idx := strings.IndexByte(reply, '\n'); idx >= 0 {
				reply = reply[:idx] + " ..."
			}
		}
		fmt.Printf("%2d  user> %s\n", i+1, r.Utterance)
		fmt.Printf("    [%s, %d symptoms] %s\n", r.Stage, r.SymptomCount, reply)
	}

	fmt.Printf("\nFinal stage: %s, diagnosis made: %v\n", st.Stage, st.DiagnosisMade)
	if st.SymptomCount() > 0 {
		fmt.Printf("Detected symptoms: %s\n", strings.Join(st.Symptoms(), ", "))
	}
}

// #endregion main
