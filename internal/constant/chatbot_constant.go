package constant

const (
	// DefaultConfidenceThreshold is the minimum QA score for a model answer to be returned as is.
	DefaultConfidenceThreshold = 0.3

	ChatErrorReply    = "❌ Error processing your request."
	ChatFallbackReply = "Sorry, I couldn't find a reliable answer. Could you rephrase?"

	GreetingReply      = "Hi there! How can I help you with your finances today?"
	EmergencyFundReply = "Start small, set aside a portion of your income in a separate savings account every month until you have 3–6 months of expenses saved."
	IndexFundReply     = "Index funds are low-cost mutual funds or ETFs that mirror a market index like the S&P 500 — ideal for passive investing."
	BudgetingRuleReply = "The 50/30/20 rule suggests using 50% of your income for needs, 30% for wants, and 20% for savings or debt repayment."
	CreditScoreReply   = "To improve your credit score, pay bills on time, keep credit utilization low, avoid new debt, and check for errors on your credit report."
	RetirementReply    = "A good rule is to save 15–20% of your annual income for retirement. Use retirement accounts like PPF, NPS, or EPF if available."

	// FinancialKnowledgeContext is the passage the QA model extracts answers from.
	FinancialKnowledgeContext = `
An emergency fund is a financial safety net designed to cover unexpected expenses or financial emergencies, such as medical bills, car repairs, or job loss. It's typically recommended to save enough to cover 3 to 6 months' worth of living expenses.

Start by setting small, achievable savings goals. For example, aim to save ₹500–₹1000 each month. Use a separate savings account to keep the fund untouched. Reduce unnecessary expenses and consider automatic transfers to stay consistent.

The 50/30/20 budgeting rule suggests dividing your income into 50% for essentials, 30% for discretionary spending, and 20% for savings and debt repayment.

Index funds are mutual funds or ETFs that aim to replicate the performance of a specific financial market index, such as the S&P 500. They are typically low-cost and good for passive investors.

A credit score is a numerical representation of your creditworthiness. You can improve your credit score by paying bills on time, reducing debt, and avoiding new loans unnecessarily.

Retirement planning involves setting goals for your financial future and creating a plan to achieve them, including investing in retirement accounts and estimating how much you'll need to retire comfortably.
`

	// Provider defaults
	HuggingFaceDefaultBaseURL = "https://router.huggingface.co/hf-inference"
	HuggingFaceDefaultQAModel = "deepset/roberta-base-squad2"
	OllamaDefaultBaseURL      = "http://localhost:11434"
	OllamaDefaultModel        = "llama3"
	OllamaChatEndpoint        = "/api/chat"

	// Extractive QA instructions for chat models that have no native QA head
	OllamaExtractiveQAPrompt = `You answer questions by copying a short span from the passage the user provides.

RULES:
- The answer MUST be copied exactly from the passage, no rewording
- Keep the span short (a phrase or one sentence)
- If the passage does not contain the answer, use an empty answer and score 0
- score is your confidence between 0 and 1

Respond with JSON only: {"answer": "<span>", "score": <number>}`
)
