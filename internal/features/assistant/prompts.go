package assistant

import (
	"fmt"

	"google.golang.org/genai"
)

const expensePrompt = "Extract merchant name, total amount (number only, numeric), date (YYYY-MM-DD), and category. " +
	"Return as a plain JSON object with keys: merchant, amount, date, category."

const incomePrompt = "Extract the source/payer name, total income amount (number only, numeric), date (YYYY-MM-DD), " +
	"and income category (e.g., Salary, Investment Return, Freelance). " +
	"Return as a plain JSON object with keys: source, amount, date, category."

var expenseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"merchant": {Type: genai.TypeString},
		"amount":   {Type: genai.TypeNumber},
		"date":     {Type: genai.TypeString},
		"category": {Type: genai.TypeString},
	},
}

var incomeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"source":   {Type: genai.TypeString},
		"amount":   {Type: genai.TypeNumber},
		"date":     {Type: genai.TypeString},
		"category": {Type: genai.TypeString},
	},
}

func strategistPrompt(query, lang, currency string) string {
	language := "Respond in English."
	if lang == "cn" {
		language = "Please respond primarily in Chinese, but keep technical financial terms bilingual if helpful."
	}
	return fmt.Sprintf(`Context: You are the Xallet AI Wealth Strategist for the 2026 Global Financial Reorder era.
Language Preference: %s
User Currency: %s (Always mention values in this currency if giving specific examples).

Focus areas for 2026:
- The massive surge in Silver (Ag) and physical assets.
- Strategic allocation: Investment vs. Operations vs. Savings.
- Crypto-fiat rebalancing in a volatile decade.

User Query: %s

Style: Professional, analytical, wallet-assistant style. Persona name: Xallet.`, language, currency, query)
}
