// internal/tools/onboardingtools/handler.go
package onboardingtools

import (
	"context"
	"encoding/json"

	"hr-voice-tools/internal/dispatch"
	"hr-voice-tools/internal/onboarding"
)

// Register binds the offer and onboarding tools. The read projections share
// one adapter since they all take (name, email).
func Register(d *dispatch.Dispatcher, svc *onboarding.Service) error {
	reads := map[string]func(name, email string) (interface{}, error){
		"check_offer_status": func(n, e string) (interface{}, error) { return svc.CheckOfferStatus(n, e) },
		"get_offer_summary":  func(n, e string) (interface{}, error) { return svc.GetOfferSummary(n, e) },
		"get_offer_details":  func(n, e string) (interface{}, error) { return svc.GetOfferDetails(n, e) },
		"confirm_joining_date": func(n, e string) (interface{}, error) {
			return svc.ConfirmJoiningDate(n, e)
		},
		"get_reporting_manager": func(n, e string) (interface{}, error) {
			return svc.GetReportingManager(n, e)
		},
		"get_documents_checklist": func(n, e string) (interface{}, error) {
			return svc.GetDocumentsChecklist(n, e)
		},
		"get_preboarding_tasks": func(n, e string) (interface{}, error) {
			return svc.GetPreboardingTasks(n, e)
		},
		"get_background_verification_status": func(n, e string) (interface{}, error) {
			return svc.GetBackgroundVerificationStatus(n, e)
		},
		"get_it_assets":     func(n, e string) (interface{}, error) { return svc.GetITAssets(n, e) },
		"get_day1_agenda":   func(n, e string) (interface{}, error) { return svc.GetDay1Agenda(n, e) },
		"get_work_location": func(n, e string) (interface{}, error) { return svc.GetWorkLocation(n, e) },
	}
	for name, read := range reads {
		if err := d.Bind(name, candidateRead(read)); err != nil {
			return err
		}
	}

	mutations := map[string]dispatch.Handler{
		"mark_deferral":             markDeferral(svc),
		"schedule_intro_call":       scheduleIntroCall(svc),
		"update_shipping_address":   updateShippingAddress(svc),
		"log_negotiation":           logNegotiation(svc),
		"email_documents_checklist": emailDocumentsChecklist(svc),
		"send_onboarding_summary":   sendOnboardingSummary(svc),
	}
	for name, handler := range mutations {
		if err := d.Bind(name, handler); err != nil {
			return err
		}
	}
	return nil
}

func candidateRead(read func(name, email string) (interface{}, error)) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input CandidateInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return read(input.Name, input.Email)
	}
}

func markDeferral(svc *onboarding.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input DeferralInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.MarkDeferral(input.Name, input.Email, input.NewDate)
	}
}

func scheduleIntroCall(svc *onboarding.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input IntroCallInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.ScheduleIntroCall(input.Name, input.Email, input.Date)
	}
}

func updateShippingAddress(svc *onboarding.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input ShippingAddressInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.UpdateShippingAddress(input.Name, input.Email, input.Address)
	}
}

func logNegotiation(svc *onboarding.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input NegotiationInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.LogNegotiation(input.Name, input.Email, input.Request)
	}
}

func emailDocumentsChecklist(svc *onboarding.Service) dispatch.Handler {
	return func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		var input CandidateInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.EmailDocumentsChecklist(ctx, input.Name, input.Email)
	}
}

func sendOnboardingSummary(svc *onboarding.Service) dispatch.Handler {
	return func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		var input SummaryInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.SendOnboardingSummary(ctx, input.Name, input.Email, input.ConversationSummary)
	}
}
