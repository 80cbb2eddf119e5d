package chatbot

import (
	"strings"

	"finance-chatbot-be/internal/constant"
)

// Rule maps a set of keywords to a canned reply. A rule matches when the
// lower-cased message contains any of its keywords as a substring.
type Rule struct {
	Name     string
	Keywords []string
	Reply    string
}

func (r Rule) Matches(lowerMessage string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerMessage, kw) {
			return true
		}
	}
	return false
}

// DefaultRules returns the fallback chain in priority order. Earlier rules win.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "greeting", Keywords: []string{"hi", "hello"}, Reply: constant.GreetingReply},
		{Name: "emergency_fund", Keywords: []string{"emergency fund"}, Reply: constant.EmergencyFundReply},
		{Name: "index_fund", Keywords: []string{"index fund"}, Reply: constant.IndexFundReply},
		{Name: "budgeting_rule", Keywords: []string{"50/30/20", "budgeting rule"}, Reply: constant.BudgetingRuleReply},
		{Name: "credit_score", Keywords: []string{"credit score"}, Reply: constant.CreditScoreReply},
		{Name: "retirement", Keywords: []string{"retirement", "how much should i save"}, Reply: constant.RetirementReply},
	}
}

// MatchRule returns the first rule matching message, case-insensitively.
func MatchRule(rules []Rule, message string) (Rule, bool) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.Matches(lower) {
			return r, true
		}
	}
	return Rule{}, false
}
