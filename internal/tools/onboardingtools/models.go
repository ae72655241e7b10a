// internal/tools/onboardingtools/models.go
package onboardingtools

// CandidateInput identifies the offer record every onboarding tool works on.
type CandidateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DeferralInput struct {
	CandidateInput
	NewDate string `json:"newDate"`
}

type IntroCallInput struct {
	CandidateInput
	Date string `json:"date"`
}

type ShippingAddressInput struct {
	CandidateInput
	Address string `json:"address"`
}

type NegotiationInput struct {
	CandidateInput
	Request string `json:"request"`
}

type SummaryInput struct {
	CandidateInput
	ConversationSummary string `json:"conversationSummary"`
}
