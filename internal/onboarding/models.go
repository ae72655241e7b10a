// internal/onboarding/models.go
package onboarding

// OfferRecord is one candidate JSON file under the offers directory. Nested
// sections are pointers so a missing section stays distinguishable from an
// empty one; projections rely on that to report sub-resource absence.
type OfferRecord struct {
	Offer        *Offer             `json:"offer,omitempty"`
	Joining      *Joining           `json:"joining,omitempty"`
	Reporting    *Reporting         `json:"reporting,omitempty"`
	Preboarding  *Preboarding       `json:"preboarding,omitempty"`
	ITAssets     *ITAssets          `json:"it_assets,omitempty"`
	BGV          *BGV               `json:"bgv,omitempty"`
	Candidate    *CandidateProfile  `json:"candidate,omitempty"`
	Escalations  *Escalations       `json:"escalations,omitempty"`
	Negotiations []NegotiationEntry `json:"negotiations,omitempty"`
}

type Offer struct {
	Status   string        `json:"status,omitempty"`
	ETAHours int           `json:"eta_hours,omitempty"`
	Summary  *OfferSummary `json:"summary,omitempty"`
}

type OfferSummary struct {
	Title            string `json:"title,omitempty"`
	Level            string `json:"level,omitempty"`
	Base             string `json:"base,omitempty"`
	Variable         string `json:"variable,omitempty"`
	Benefits         string `json:"benefits,omitempty"`
	Location         string `json:"location,omitempty"`
	TentativeJoining string `json:"tentative_joining,omitempty"`
}

type Joining struct {
	Date string `json:"date,omitempty"`
}

type Reporting struct {
	ManagerName        string `json:"manager_name,omitempty"`
	ManagerTitle       string `json:"manager_title,omitempty"`
	ManagerEmail       string `json:"manager_email,omitempty"`
	CalendarLink       string `json:"calendar_link,omitempty"`
	IntroCallScheduled bool   `json:"intro_call_scheduled,omitempty"`
	IntroCallDate      string `json:"intro_call_date,omitempty"`
}

type Preboarding struct {
	Documents []string `json:"documents,omitempty"`
	Tasks     []string `json:"tasks,omitempty"`
}

type ITAssets struct {
	LaptopShipping           string   `json:"laptop_shipping,omitempty"`
	EmailProvisioning        string   `json:"email_provisioning,omitempty"`
	VPNAccess                string   `json:"vpn_access,omitempty"`
	PreferredShippingAddress string   `json:"preferred_shipping_address,omitempty"`
	Day1Agenda               []string `json:"day1_agenda,omitempty"`
}

type BGV struct {
	Status       string `json:"status,omitempty"`
	ExpectedDays string `json:"expected_days,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
}

type CandidateProfile struct {
	Location  string `json:"location,omitempty"`
	WorkModel string `json:"work_model,omitempty"`
}

type Escalations struct {
	JoiningDeferral *JoiningDeferral `json:"joining_deferral,omitempty"`
}

type JoiningDeferral struct {
	Requested bool   `json:"requested"`
	NewDate   string `json:"new_date,omitempty"`
}

type NegotiationEntry struct {
	Request   string `json:"request"`
	Timestamp string `json:"timestamp"`
}

// Projection results. Found=false means the whole record is absent; Message
// carries the sentence the agent narrates for the absence case.

type OfferStatusResult struct {
	Found    bool   `json:"found"`
	Status   string `json:"status,omitempty"`
	ETAHours int    `json:"eta_hours,omitempty"`
	Message  string `json:"message,omitempty"`
}

type OfferSummaryResult struct {
	Found   bool          `json:"found"`
	Summary *OfferSummary `json:"summary,omitempty"`
	Message string        `json:"message,omitempty"`
}

type OfferDetailsResult struct {
	Found       bool   `json:"found"`
	OfferLetter *Offer `json:"offer_letter,omitempty"`
	Message     string `json:"message,omitempty"`
}

type JoiningDateResult struct {
	Found       bool   `json:"found"`
	JoiningDate string `json:"joining_date,omitempty"`
	Message     string `json:"message,omitempty"`
}

type ReportingManagerResult struct {
	Found     bool       `json:"found"`
	Reporting *Reporting `json:"reporting,omitempty"`
	Message   string     `json:"message,omitempty"`
}

type DocumentsResult struct {
	Found     bool     `json:"found"`
	Documents []string `json:"documents,omitempty"`
	Message   string   `json:"message,omitempty"`
}

type TasksResult struct {
	Found   bool     `json:"found"`
	Tasks   []string `json:"tasks,omitempty"`
	Message string   `json:"message,omitempty"`
}

type BGVResult struct {
	Found        bool   `json:"found"`
	Status       string `json:"status,omitempty"`
	ExpectedDays string `json:"expected_days,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
	Message      string `json:"message,omitempty"`
}

type ITAssetsResult struct {
	Found                    bool   `json:"found"`
	LaptopShipping           string `json:"laptop_shipping,omitempty"`
	EmailProvisioning        string `json:"email_provisioning,omitempty"`
	VPNAccess                string `json:"vpn_access,omitempty"`
	PreferredShippingAddress string `json:"preferred_shipping_address,omitempty"`
	Message                  string `json:"message,omitempty"`
}

type Day1AgendaResult struct {
	Found   bool     `json:"found"`
	Agenda  []string `json:"day1_agenda,omitempty"`
	Message string   `json:"message,omitempty"`
}

type WorkLocationResult struct {
	Found        bool   `json:"found"`
	WorkLocation string `json:"work_location,omitempty"`
	WorkModel    string `json:"work_model,omitempty"`
	Message      string `json:"message,omitempty"`
}

// MutationResult confirms a guarded write.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
