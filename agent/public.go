package agent

import (
	"context"

	"google.golang.org/genai"

	"github.com/mrizzo/pacfolio"
	"github.com/mrizzo/pacfolio/renderer"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a monthly ETF accumulation plan. He is here primarily to understand
			his deposits, his holdings, and how his plan is progressing towards his goal.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns an expert grounded on Google Search for market news.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		very well aware of financial products, ETFs and index funds,
		and the latest news about the different funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading and index investing. You can search and find about anything
			related to financial institutions, markets, ETFs and funds. You leverage Google Search
			to ground your assertions and relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's accumulation plan. Its
// tools read the live portfolio, so answers reflect the current state.
func NewAnalyst(p *pacfolio.Portfolio) *Expert {
	lib := []Function{summaryFunc(p), historyFunc(p)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has read access to the user's accumulation plan:
		the deposit history, the current holdings, the cash reserve and the goal progress.
		Ask the Analyst everything about the user's own portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's ETF accumulation plan.
				Use the available tools to extract the relevant figures about the plan:
				  - the valuation summary (holdings, cash, profit and loss, goal progress)
				  - the deposit history
				Other experts might ask you questions about the plan, pardon their
				approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func summaryFunc(p *pacfolio.Portfolio) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the current valuation of the accumulation plan:
			invested total, cash reserve, market value, profit and loss, tax estimate,
			per-fund holdings and goal progress.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted valuation report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Summary",
				Response: map[string]any{
					"output": renderer.SummaryMarkdown(p.Valuation()),
				},
			}
		},
	}
}

func historyFunc(p *pacfolio.Portfolio) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History lists every deposit recorded in the plan, in submission order,
			with its date, amount and cash/invested split.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all deposits.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "History",
				Response: map[string]any{
					"output": renderer.HistoryMarkdown(p),
				},
			}
		},
	}
}
