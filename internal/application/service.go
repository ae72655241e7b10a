// internal/application/service.go
package application

import (
	"encoding/json"
	"strings"
	"time"

	"hr-voice-tools/internal/common/config"
	"hr-voice-tools/internal/common/errors"
	"hr-voice-tools/internal/common/logger"
	"hr-voice-tools/internal/match"
	"hr-voice-tools/internal/store"

	"github.com/google/uuid"
)

// Service answers the application-status side of the conversation: list a
// caller's applications, disambiguate a spoken choice, look up one by id,
// and file a new application with a duplicate guard.
type Service struct {
	store  *store.Store
	jobs   config.ApplicationConfig
	logger logger.Logger
	now    func() time.Time
}

func NewService(st *store.Store, jobs config.ApplicationConfig, log logger.Logger) *Service {
	return &Service{
		store:  st,
		jobs:   jobs,
		logger: log.WithFields(map[string]interface{}{"service": "application"}),
		now:    time.Now,
	}
}

// ListByEmail returns every application filed under the email, newest first.
// The caller's name is inferred opportunistically from the first record that
// carries one; this doubles as the login fetch.
func (s *Service) ListByEmail(email string) (*ListResult, error) {
	entries, err := s.store.Find(store.ApplicationEmailPattern(email))
	if err != nil {
		return nil, errors.NewStoreReadFailedError(err)
	}

	result := &ListResult{Email: email, Applications: []Summary{}}
	for _, e := range entries {
		var rec Record
		if err := json.Unmarshal(e.Raw, &rec); err != nil {
			continue
		}
		if result.Name == "" && rec.Name != "" {
			result.Name = rec.Name
		}
		result.Applications = append(result.Applications, s.summarize(&rec, e.ModTime))
	}
	result.Count = len(result.Applications)
	return result, nil
}

// SelectByChoice resolves a number or (partial) job title against the
// caller's applications in the same newest-first order ListByEmail presents.
func (s *Service) SelectByChoice(email, choice string) (*match.Result, error) {
	entries, err := s.store.Find(store.ApplicationEmailPattern(email))
	if err != nil {
		return nil, errors.NewStoreReadFailedError(err)
	}

	candidates := make([]match.Candidate, 0, len(entries))
	for _, e := range entries {
		var rec Record
		if err := json.Unmarshal(e.Raw, &rec); err != nil {
			continue
		}
		candidates = append(candidates, match.Candidate{
			ID:    rec.ApplicationID,
			Label: jobTitleOrDefault(&rec),
		})
	}

	res := match.Resolve(candidates, choice)
	return &res, nil
}

// GetByID looks the application up by filename pattern first, then falls
// back to scanning record contents. The fallback covers records created
// under an older filename convention and stays affordable because a data
// directory holds at most a few hundred files.
func (s *Service) GetByID(applicationID string) (*StatusResult, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return &StatusResult{Found: false}, nil
	}

	entries, err := s.store.Find(store.ApplicationIDPattern(applicationID))
	if err != nil {
		return nil, errors.NewStoreReadFailedError(err)
	}

	if len(entries) == 0 {
		all, err := s.store.Find("*")
		if err != nil {
			return nil, errors.NewStoreReadFailedError(err)
		}
		for _, e := range all {
			var rec Record
			if err := json.Unmarshal(e.Raw, &rec); err != nil {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(rec.ApplicationID), applicationID) {
				entries = []store.Entry{e}
				break
			}
		}
	}

	if len(entries) == 0 {
		return &StatusResult{Found: false}, nil
	}

	var rec Record
	if err := json.Unmarshal(entries[0].Raw, &rec); err != nil {
		return &StatusResult{Found: false}, nil
	}

	detail := &Detail{
		Summary:           s.summarize(&rec, entries[0].ModTime),
		Name:              rec.Name,
		Email:             rec.Email,
		Phone:             rec.Phone,
		ResponseTimeframe: rec.ResponseTimeframe,
		Description:       rec.Description,
	}
	return &StatusResult{Found: true, Application: detail}, nil
}

// ExistingApplication returns the id of an application already filed for the
// (job, email) pair, or the empty string when there is none.
func (s *Service) ExistingApplication(jobID, email string) (string, error) {
	entries, err := s.store.Find(store.ApplicationEmailPattern(email))
	if err != nil {
		return "", errors.NewStoreReadFailedError(err)
	}
	for _, e := range entries {
		var rec Record
		if err := json.Unmarshal(e.Raw, &rec); err != nil {
			continue
		}
		if strings.EqualFold(rec.JobID, strings.TrimSpace(jobID)) {
			return rec.ApplicationID, nil
		}
	}
	return "", nil
}

// Create validates and files a new application. The duplicate check runs
// immediately before the exclusive create, so a repeat call confirms the
// existing application instead of writing a second record.
func (s *Service) Create(req CreateRequest) (*CreateResult, error) {
	jobID := strings.TrimSpace(req.JobID)
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if jobID == "" || name == "" || email == "" {
		return nil, errors.NewValidationFailedError("job id, name and email are required")
	}

	title := s.jobs.JobTitle(jobID)
	if title == "" {
		return nil, errors.NewUnknownJobIDError(jobID)
	}

	dob, err := CanonicalDOB(req.DOB)
	if err != nil {
		return nil, err
	}

	if existing, err := s.ExistingApplication(jobID, email); err != nil {
		return nil, err
	} else if existing != "" {
		return nil, errors.NewDuplicateApplicationError(existing)
	}

	rec := Record{
		ApplicationID: uuid.New().String(),
		JobID:         jobID,
		JobTitle:      title,
		Name:          name,
		Email:         email,
		Phone:         strings.TrimSpace(req.Phone),
		DOB:           dob,
		Skills:        req.Skills,
		Experience:    strings.TrimSpace(req.Experience),
		Status:        StatusSubmitted,
		UpdatedAt:     s.now().UTC().Format(time.RFC3339),
		Description:   "your application is under careful consideration",
	}

	key := store.ApplicationKey(rec.ApplicationID, email)
	if err := s.store.Create(key, &rec); err != nil {
		if err == store.ErrAlreadyExists {
			return nil, errors.NewDuplicateApplicationError(rec.ApplicationID)
		}
		return nil, errors.NewStoreWriteFailedError(err)
	}

	s.logger.Info("application created", map[string]interface{}{
		"applicationId": rec.ApplicationID,
		"jobId":         jobID,
	})

	return &CreateResult{
		ApplicationID: rec.ApplicationID,
		JobID:         jobID,
		JobTitle:      title,
		Status:        StatusSubmitted,
		Message:       "Your application for " + title + " has been submitted. Your application id is " + rec.ApplicationID + ".",
	}, nil
}

func (s *Service) summarize(rec *Record, modTime time.Time) Summary {
	status := NormalizeStatus(rec.Status)
	updatedAt := rec.UpdatedAt
	if updatedAt == "" {
		updatedAt = modTime.UTC().Format(time.RFC3339)
	}
	return Summary{
		ApplicationID:  rec.ApplicationID,
		JobTitle:       jobTitleOrDefault(rec),
		Status:         status,
		HumanStatus:    HumanStatus(status),
		UpdatedAt:      updatedAt,
		UpdatedAtHuman: HumanDate(updatedAt),
	}
}

func jobTitleOrDefault(rec *Record) string {
	if rec.JobTitle != "" {
		return rec.JobTitle
	}
	return "Unknown role"
}

// dobLayouts are the input shapes the apply flow accepts for dates of birth.
var dobLayouts = []string{
	"02-01-2006",
	"2006-01-02",
	"02/01/2006",
	"2 January 2006",
	"January 2 2006",
	"January 2, 2006",
}

// CanonicalDOB reformats a free-form date of birth into dd-mm-yyyy.
func CanonicalDOB(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.NewValidationFailedError("date of birth is required")
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("02-01-2006"), nil
		}
	}
	return "", errors.NewInvalidDateOfBirthError(raw)
}
