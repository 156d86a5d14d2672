package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewClassifier classifies a free-text activity description into the
// ledger's scope, category and activity labels.
func NewClassifier() *Expert {
	lib := []Function{NewTaxonomyFunc()}
	return &Expert{
		Name: "Classifier",
		Description: `The Classifier maps a plain-language description of a business activity
		to the exact scope, category and activity labels used by the emission ledger.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a GHG Protocol classification expert for a small company's emission ledger.
			Given a description of a business activity, answer with the best matching
			scope, category and activity, using ONLY the exact labels from the ReportingTaxonomy tool.
			Answer in three labelled lines (Scope, Category, Activity) followed by one short
			justification sentence. If the description is too vague, say what is missing.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewSummarizer writes an executive summary of the emissions report.
func NewSummarizer(read ReadLedger) *Expert {
	lib := []Function{NewEntriesFunc(read)}
	return &Expert{
		Name: "Summarizer",
		Description: `The Summarizer turns the raw emission figures into a short executive
		summary a non-specialist manager can act on.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a sustainability analyst. Use the EmissionEntries tool to read the
			company's emission ledger, then write a concise executive summary:
			the total footprint, the dominant scopes and categories, notable trends
			over the recorded months, and two or three observations worth management
			attention. Keep it under 300 words, in markdown.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewOffsetAdvisor recommends carbon offset options sized to the footprint.
func NewOffsetAdvisor() *Expert {
	return &Expert{
		Name: "OffsetAdvisor",
		Description: `The OffsetAdvisor recommends credible carbon offset options
		proportioned to the company's measured footprint.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a carbon offset procurement advisor for small and medium companies.
			The user gives you their measured footprint in kgCO2e and their location.
			Recommend two or three credible offset approaches (verified standards such as
			Gold Standard or Verra), with rough price ranges and what to watch out for.
			Use Google Search to ground prices and program names. Be honest that
			reduction beats offsetting.
		`}}},
		},
	}
}

// NewRegulationRadar surveys the carbon reporting rules that apply to the
// company's locations and export markets.
func NewRegulationRadar() *Expert {
	return &Expert{
		Name: "RegulationRadar",
		Description: `The RegulationRadar surveys the carbon disclosure and border-adjustment
		rules relevant to the company's home country and export markets.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a regulatory analyst for carbon reporting. The user gives you a company
			profile: industry, home country and export markets. List the disclosure schemes
			and carbon border mechanisms likely to apply (for example CBAM for exports to the
			EU, BRSR in India, CSRD for EU operations), each with one line on what it requires
			and an indicative timeline. Use Google Search for current thresholds and dates.
		`}}},
		},
	}
}

// NewOptimizer finds reduction opportunities in the recorded entries.
func NewOptimizer(read ReadLedger) *Expert {
	lib := []Function{NewEntriesFunc(read)}
	return &Expert{
		Name: "Optimizer",
		Description: `The Optimizer inspects the recorded entries and proposes concrete,
		prioritized emission reduction measures.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an energy and logistics efficiency consultant. Use the EmissionEntries
			tool to read the company's emission ledger, find the largest and
			fastest-growing sources, and propose three to five concrete reduction measures.
			Prioritize by expected kgCO2e saved and ease of implementation, and say which
			entries each measure targets.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}
