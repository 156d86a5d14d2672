package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/greenledger/carbonscope/agent"
	"google.golang.org/genai"

	"github.com/google/subcommands"
)

// advise runs one advisory exchange. Advisory failures are never fatal: the
// ledger commands must keep working without credentials or network, so a
// failure prints a warning and the command still exits cleanly.
func advise(ctx context.Context, expert *agent.Expert, prompt string) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: advisory unavailable: %v\n", err)
		fmt.Fprintln(os.Stderr, "Set GEMINI_API_KEY (or a .env file) to enable advisory commands.")
		return subcommands.ExitSuccess
	}

	answer, err := expert.Advise(ctx, client, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: advisory unavailable: %v\n", err)
		return subcommands.ExitSuccess
	}

	printMarkdown(answer)
	return subcommands.ExitSuccess
}

// companyContext summarizes the stored profile for an advisory prompt.
func companyContext() string {
	info, err := openStore().LoadCompany()
	if err != nil || info.Name == "" {
		return "The company has not filled in its profile."
	}
	return fmt.Sprintf("Company: %s. Industry: %s. Location: %s. Export markets: %v.",
		info.Name, info.Industry, info.Location, info.ExportMarkets)
}
