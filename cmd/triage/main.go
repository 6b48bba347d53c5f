package main

// #region imports
import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/danielpatrickdp/symptom-triage/internal/audit"
	"github.com/danielpatrickdp/symptom-triage/internal/dataset"
	"github.com/danielpatrickdp/symptom-triage/internal/diagnose"
	"github.com/danielpatrickdp/symptom-triage/internal/knowledge"
	"github.com/danielpatrickdp/symptom-triage/internal/lexicon"
	"github.com/danielpatrickdp/symptom-triage/internal/llm"
	"github.com/danielpatrickdp/symptom-triage/internal/predict"
	"github.com/danielpatrickdp/symptom-triage/internal/session"
	"github.com/danielpatrickdp/symptom-triage/internal/triage"
)

// #endregion

// #region main
func main() {
	dbPath := envOr("TRIAGE_DB", "triage.db")

	data, err := dataset.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open dataset store: %v", err)
	}
	defer data.Close()

	var gen llm.Client
	if os.Getenv("OPENAI_API_KEY") != "" {
		gen = llm.NewOpenAIClient()
	}
	kb, err := knowledge.NewStore(data.DB(), gen)
	if err != nil {
		log.Fatalf("failed to open knowledge base: %v", err)
	}

	auditLog, err := audit.NewLog(data.DB())
	if err != nil {
		log.Fatalf("failed to open audit log: %v", err)
	}

	policy := diagnose.NewPolicy(data, predict.NewNaiveBayes(), kb, auditLog)
	assistant := triage.NewAssistant(policy)
	st := session.New()

	fmt.Println("Symptom Triage Assistant ready.")
	fmt.Printf("  DB: %s\n", dbPath)
	fmt.Println("Commands: 'reset' to start over, 'symptoms' to list detections, 'guidance <disease>' for care advice, 'quit' to exit.")
	fmt.Println()
	fmt.Println(st.History[0].Text)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch input {
		case "quit", "exit":
			return
		case "reset":
			assistant.ResetSession(st)
			fmt.Println(st.History[0].Text)
			continue
		case "symptoms":
			if st.SymptomCount() == 0 {
				fmt.Println("No symptoms detected yet.")
				continue
			}
			for _, id := range st.Symptoms() {
				fmt.Printf("  %s: %s\n", lexicon.Display(id), lexicon.Describe(id))
			}
			continue
		}
		if disease, ok := strings.CutPrefix(input, "guidance "); ok {
			printGuidance(kb, strings.TrimSpace(disease))
			continue
		}

		assistant.ProcessUserInput(st, input)
		if replies := st.LastAssistantTexts(1); len(replies) > 0 {
			fmt.Println()
			fmt.Println(replies[0])
			fmt.Println()
		}
	}
}

// #endregion main

// #region helpers
func printGuidance(kb *knowledge.Store, disease string) {
	if disease == "" {
		fmt.Println("Usage: guidance <disease>")
		return
	}
	overview, known := kb.Describe(disease)
	g := kb.Recommendations(context.Background(), disease)
	if !known && g.Empty() {
		fmt.Printf("No guidance available for %q.\n", disease)
		return
	}
	fmt.Println()
	if overview != "" {
		fmt.Println(overview)
		fmt.Println()
	}
	printSection("Lifestyle", g.Lifestyle)
	printSection("Diet", g.Diet)
	printSection("Medical", g.Medical)
	printSection("Prevention", g.Prevention)
	if g.GeneratedText != "" {
		fmt.Println(g.GeneratedText)
	}
	fmt.Println()
}

func printSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
