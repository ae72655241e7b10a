// cmd/tools/seed-records/main.go
//
// Seeds the data directories with demo records for local runs:
//
//	go run ./cmd/tools/seed-records -applications data/applications -offers data/offers
//
// Existing records are never overwritten.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"hr-voice-tools/internal/application"
	"hr-voice-tools/internal/onboarding"
	"hr-voice-tools/internal/store"
)

func main() {
	applicationsDir := flag.String("applications", "data/applications", "Applications directory")
	offersDir := flag.String("offers", "data/offers", "Offers directory")
	flag.Parse()

	appStore, err := store.New(*applicationsDir)
	if err != nil {
		fail(err)
	}
	offerStore, err := store.New(*offersDir)
	if err != nil {
		fail(err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	applications := []application.Record{
		{
			ApplicationID:     uuid.New().String(),
			JobID:             "JR-1001",
			JobTitle:          "Backend Engineer",
			Name:              "Jane Doe",
			Email:             "jane@x.com",
			Phone:             "+1-555-0101",
			DOB:               "14-03-1992",
			Skills:            []string{"go", "postgres"},
			Experience:        "5 years",
			Status:            application.StatusInReview,
			UpdatedAt:         now,
			ResumeReviewed:    "In Progress",
			ResponseTimeframe: "2 weeks",
			Description:       "your application is under careful consideration",
		},
		{
			ApplicationID:  uuid.New().String(),
			JobID:          "JR-1002",
			JobTitle:       "Data Analyst",
			Name:           "Jane Doe",
			Email:          "jane@x.com",
			Phone:          "+1-555-0101",
			DOB:            "14-03-1992",
			Skills:         []string{"sql", "python"},
			Experience:     "5 years",
			Status:         application.StatusSubmitted,
			UpdatedAt:      now,
			ResumeReviewed: "Not yet",
			Description:    "your application is under careful consideration",
		},
	}

	for _, rec := range applications {
		key := store.ApplicationKey(rec.ApplicationID, rec.Email)
		if err := appStore.Create(key, &rec); err != nil {
			if err == store.ErrAlreadyExists {
				fmt.Printf("skipped existing application %s\n", key)
				continue
			}
			fail(err)
		}
		fmt.Printf("seeded application %s\n", key)
	}

	offer := onboarding.OfferRecord{
		Offer: &onboarding.Offer{
			Status:   "released",
			ETAHours: 24,
			Summary: &onboarding.OfferSummary{
				Title:            "Backend Engineer",
				Level:            "L4",
				Base:             "145000 USD",
				Variable:         "10%",
				Benefits:         "health, dental, 401k match",
				Location:         "Austin, TX",
				TentativeJoining: "2026-10-01",
			},
		},
		Joining: &onboarding.Joining{Date: "2026-10-01"},
		Reporting: &onboarding.Reporting{
			ManagerName:  "Priya Sharma",
			ManagerTitle: "Engineering Manager",
			ManagerEmail: "priya.sharma@example.com",
			CalendarLink: "https://cal.example.com/priya-sharma",
		},
		Preboarding: &onboarding.Preboarding{
			Documents: []string{"Government ID", "Signed offer letter", "Previous employment letter"},
			Tasks:     []string{"Complete background verification form", "Upload documents", "Pick laptop model"},
		},
		ITAssets: &onboarding.ITAssets{
			LaptopShipping:    "pending address confirmation",
			EmailProvisioning: "scheduled for day 0",
			VPNAccess:         "granted on day 1",
			Day1Agenda:        []string{"09:00 Welcome and badge pickup", "10:30 Team introductions", "13:00 Benefits orientation"},
		},
		BGV: &onboarding.BGV{
			Status:       "in_progress",
			ExpectedDays: "5",
			Remarks:      "employment verification pending",
		},
		Candidate: &onboarding.CandidateProfile{
			Location:  "Austin campus, Building B",
			WorkModel: "hybrid",
		},
	}

	offerKey := store.OfferKey("John Smith", "john@x.com")
	if err := offerStore.Create(offerKey, &offer); err != nil {
		if err == store.ErrAlreadyExists {
			fmt.Printf("skipped existing offer %s\n", offerKey)
		} else {
			fail(err)
		}
	} else {
		fmt.Printf("seeded offer %s\n", offerKey)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
	os.Exit(1)
}
