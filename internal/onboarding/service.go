// internal/onboarding/service.go
package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-voice-tools/internal/common/errors"
	"hr-voice-tools/internal/common/logger"
	"hr-voice-tools/internal/notify"
	"hr-voice-tools/internal/store"
)

const (
	msgNoRecord      = "I couldn't find an offer record under that name and email."
	msgNegotiation   = "Your request for negotiation has been shared with the compensation team, thank you."
	msgNoChecklist   = "No documents checklist found for this candidate."
	msgNoDay1Agenda  = "No Day-1 agenda found for this candidate."
	msgNoITAssets    = "No IT assets details found for this candidate."
	msgNoWorkDetails = "No work location details found for this candidate."
)

// Service answers the onboarding side of the conversation for candidates who
// already hold an offer: projections over the offer record and a small set of
// guarded mutations. Every mutation reads the whole record, patches one
// subtree and writes the whole record back, so unrelated sections survive.
type Service struct {
	store  *store.Store
	mailer notify.Mailer
	logger logger.Logger
	now    func() time.Time
}

func NewService(st *store.Store, mailer notify.Mailer, log logger.Logger) *Service {
	return &Service{
		store:  st,
		mailer: mailer,
		logger: log.WithFields(map[string]interface{}{"service": "onboarding"}),
		now:    time.Now,
	}
}

// load resolves (name, email) to a record. found=false means the record file
// is absent; an unreadable file is a real error.
func (s *Service) load(name, email string) (*OfferRecord, bool, error) {
	key := store.OfferKey(name, email)
	var rec OfferRecord
	if err := s.store.Read(key, &rec); err != nil {
		if err == store.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, errors.NewStoreReadFailedError(err)
	}
	return &rec, true, nil
}

func (s *Service) CheckOfferStatus(name, email string) (*OfferStatusResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &OfferStatusResult{Message: msgNoRecord}, nil
	}
	res := &OfferStatusResult{Found: true}
	if rec.Offer != nil {
		res.Status = rec.Offer.Status
		res.ETAHours = rec.Offer.ETAHours
	}
	return res, nil
}

func (s *Service) GetOfferSummary(name, email string) (*OfferSummaryResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &OfferSummaryResult{Message: msgNoRecord}, nil
	}
	res := &OfferSummaryResult{Found: true}
	if rec.Offer != nil {
		res.Summary = rec.Offer.Summary
	}
	return res, nil
}

func (s *Service) GetOfferDetails(name, email string) (*OfferDetailsResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &OfferDetailsResult{Message: msgNoRecord}, nil
	}
	return &OfferDetailsResult{Found: true, OfferLetter: rec.Offer}, nil
}

func (s *Service) ConfirmJoiningDate(name, email string) (*JoiningDateResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &JoiningDateResult{Message: msgNoRecord}, nil
	}
	res := &JoiningDateResult{Found: true}
	if rec.Joining != nil {
		res.JoiningDate = rec.Joining.Date
	}
	return res, nil
}

func (s *Service) GetReportingManager(name, email string) (*ReportingManagerResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &ReportingManagerResult{Message: msgNoRecord}, nil
	}
	return &ReportingManagerResult{Found: true, Reporting: rec.Reporting}, nil
}

func (s *Service) GetDocumentsChecklist(name, email string) (*DocumentsResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &DocumentsResult{Message: msgNoRecord}, nil
	}
	res := &DocumentsResult{Found: true, Documents: []string{}}
	if rec.Preboarding != nil {
		res.Documents = rec.Preboarding.Documents
	}
	return res, nil
}

func (s *Service) GetPreboardingTasks(name, email string) (*TasksResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &TasksResult{Message: msgNoRecord}, nil
	}
	res := &TasksResult{Found: true, Tasks: []string{}}
	if rec.Preboarding != nil {
		res.Tasks = rec.Preboarding.Tasks
	}
	return res, nil
}

func (s *Service) GetBackgroundVerificationStatus(name, email string) (*BGVResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &BGVResult{Message: msgNoRecord}, nil
	}
	res := &BGVResult{Found: true, Status: "unknown"}
	if rec.BGV != nil {
		if rec.BGV.Status != "" {
			res.Status = rec.BGV.Status
		}
		res.ExpectedDays = rec.BGV.ExpectedDays
		res.Remarks = rec.BGV.Remarks
	}
	return res, nil
}

// GetITAssets projects the provisioning sub-tree. A record without an
// it_assets section gets a sub-resource message, which the agent narrates
// differently from a missing record.
func (s *Service) GetITAssets(name, email string) (*ITAssetsResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &ITAssetsResult{Message: msgNoRecord}, nil
	}
	if rec.ITAssets == nil {
		return &ITAssetsResult{Found: true, Message: msgNoITAssets}, nil
	}
	return &ITAssetsResult{
		Found:                    true,
		LaptopShipping:           rec.ITAssets.LaptopShipping,
		EmailProvisioning:        rec.ITAssets.EmailProvisioning,
		VPNAccess:                rec.ITAssets.VPNAccess,
		PreferredShippingAddress: rec.ITAssets.PreferredShippingAddress,
	}, nil
}

func (s *Service) GetDay1Agenda(name, email string) (*Day1AgendaResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Day1AgendaResult{Message: msgNoRecord}, nil
	}
	if rec.ITAssets == nil || len(rec.ITAssets.Day1Agenda) == 0 {
		return &Day1AgendaResult{Found: true, Message: msgNoDay1Agenda}, nil
	}
	return &Day1AgendaResult{Found: true, Agenda: rec.ITAssets.Day1Agenda}, nil
}

func (s *Service) GetWorkLocation(name, email string) (*WorkLocationResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &WorkLocationResult{Message: msgNoRecord}, nil
	}
	if rec.Candidate == nil || (rec.Candidate.Location == "" && rec.Candidate.WorkModel == "") {
		return &WorkLocationResult{Found: true, Message: msgNoWorkDetails}, nil
	}
	return &WorkLocationResult{
		Found:        true,
		WorkLocation: rec.Candidate.Location,
		WorkModel:    rec.Candidate.WorkModel,
	}, nil
}

// mutate runs the read-patch-write cycle shared by every guarded write.
func (s *Service) mutate(name, email string, patch func(*OfferRecord)) (*OfferRecord, bool, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	patch(rec)
	if err := s.store.Write(store.OfferKey(name, email), rec); err != nil {
		return nil, false, errors.NewStoreWriteFailedError(err)
	}
	return rec, true, nil
}

// MarkDeferral records a joining-deferral escalation with the requested new
// date. A second call replaces the escalation; HR resolves them one at a time.
func (s *Service) MarkDeferral(name, email, newDate string) (*MutationResult, error) {
	newDate = strings.TrimSpace(newDate)
	if newDate == "" {
		return nil, errors.NewValidationFailedError("new joining date is required")
	}
	_, found, err := s.mutate(name, email, func(rec *OfferRecord) {
		if rec.Escalations == nil {
			rec.Escalations = &Escalations{}
		}
		rec.Escalations.JoiningDeferral = &JoiningDeferral{Requested: true, NewDate: newDate}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return &MutationResult{Message: msgNoRecord}, nil
	}
	s.logger.Info("joining deferral recorded", map[string]interface{}{"newDate": newDate})
	return &MutationResult{
		Success: true,
		Message: "Your deferral request to " + newDate + " has been recorded. HR will confirm shortly.",
	}, nil
}

func (s *Service) ScheduleIntroCall(name, email, date string) (*MutationResult, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, errors.NewValidationFailedError("intro call date is required")
	}
	_, found, err := s.mutate(name, email, func(rec *OfferRecord) {
		if rec.Reporting == nil {
			rec.Reporting = &Reporting{}
		}
		rec.Reporting.IntroCallScheduled = true
		rec.Reporting.IntroCallDate = date
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return &MutationResult{Message: msgNoRecord}, nil
	}
	return &MutationResult{
		Success: true,
		Message: "Your intro call with the reporting manager is set for " + date + ".",
	}, nil
}

func (s *Service) UpdateShippingAddress(name, email, address string) (*MutationResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.NewValidationFailedError("shipping address is required")
	}
	_, found, err := s.mutate(name, email, func(rec *OfferRecord) {
		if rec.ITAssets == nil {
			rec.ITAssets = &ITAssets{}
		}
		rec.ITAssets.PreferredShippingAddress = address
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return &MutationResult{Message: msgNoRecord}, nil
	}
	return &MutationResult{
		Success: true,
		Message: "Your laptop shipping address has been updated.",
	}, nil
}

// LogNegotiation appends to the negotiations list; earlier entries are never
// rewritten.
func (s *Service) LogNegotiation(name, email, request string) (*MutationResult, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return nil, errors.NewValidationFailedError("negotiation request text is required")
	}
	_, found, err := s.mutate(name, email, func(rec *OfferRecord) {
		rec.Negotiations = append(rec.Negotiations, NegotiationEntry{
			Request:   request,
			Timestamp: s.now().UTC().Format(time.RFC3339),
		})
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return &MutationResult{Message: msgNoRecord}, nil
	}
	return &MutationResult{Success: true, Message: msgNegotiation}, nil
}

// EmailDocumentsChecklist sends the pre-boarding documents list to the
// candidate's registered address. An empty checklist is a sub-resource
// absence, not a send failure.
func (s *Service) EmailDocumentsChecklist(ctx context.Context, name, email string) (*MutationResult, error) {
	rec, found, err := s.load(name, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return &MutationResult{Message: msgNoRecord}, nil
	}
	if rec.Preboarding == nil || len(rec.Preboarding.Documents) == 0 {
		return &MutationResult{Message: msgNoChecklist}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nHere are the documents we need from you before your joining date:\n\n", name)
	for _, doc := range rec.Preboarding.Documents {
		fmt.Fprintf(&b, "- %s\n", doc)
	}
	b.WriteString("\nPlease upload them through the pre-boarding portal.\n\nRegards,\nHR Team\n")

	if err := s.mailer.Send(ctx, email, "Your Pre-boarding Documents Checklist", b.String()); err != nil {
		return nil, errors.NewNotificationFailedError("email", err)
	}
	return &MutationResult{
		Success: true,
		Message: "I've just sent the document checklist to " + email + ". Please check your inbox.",
	}, nil
}

// SendOnboardingSummary emails a recap of the current conversation. The
// summary text comes from the caller; nothing is read from the record.
func (s *Service) SendOnboardingSummary(ctx context.Context, name, email, summary string) (*MutationResult, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return nil, errors.NewValidationFailedError("conversation summary is required")
	}

	subject := "Onboarding Plan – " + name
	body := fmt.Sprintf("Hi %s,\n\nHere's a quick recap of our conversation today:\n\n%s\n\nExcited to have you onboard!\n\nRegards,\nHR Team\n", name, summary)

	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		return nil, errors.NewNotificationFailedError("email", err)
	}
	return &MutationResult{
		Success: true,
		Message: "I've sent the conversation summary to " + email + ". Please check your inbox for '" + subject + "'.",
	}, nil
}
