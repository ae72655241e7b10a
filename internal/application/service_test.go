// internal/application/service_test.go
package application

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-voice-tools/internal/common/config"
	stderrors "hr-voice-tools/internal/common/errors"
	"hr-voice-tools/internal/common/logger/loggertest"
	"hr-voice-tools/internal/store"
)

// ==========================
// Test Helper Functions
// ==========================

func testJobs() config.ApplicationConfig {
	return config.ApplicationConfig{
		Jobs: []config.JobPosting{
			{ID: "JR-1001", Title: "Backend Engineer"},
			{ID: "JR-1002", Title: "Data Analyst"},
		},
	}
}

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewService(st, testJobs(), loggertest.New(t)), st
}

func createTestRequest() CreateRequest {
	return CreateRequest{
		JobID:      "JR-1001",
		Name:       "Jane Doe",
		DOB:        "14-03-1992",
		Email:      "jane@x.com",
		Phone:      "+1-555-0101",
		Skills:     []string{"go"},
		Experience: "5 years",
	}
}

func assertErrorCode(t *testing.T, err error, code stderrors.ErrorCode) {
	t.Helper()
	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, code, stdErr.Code)
}

// ==========================
// Create
// ==========================

func TestService_Create_Success(t *testing.T) {
	svc, st := newTestService(t)

	res, err := svc.Create(createTestRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ApplicationID)
	assert.Equal(t, "Backend Engineer", res.JobTitle)
	assert.Equal(t, StatusSubmitted, res.Status)

	var rec Record
	key := store.ApplicationKey(res.ApplicationID, "jane@x.com")
	require.NoError(t, st.Read(key, &rec))
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "14-03-1992", rec.DOB)
	assert.Equal(t, StatusSubmitted, rec.Status)
	assert.NotEmpty(t, rec.UpdatedAt)
}

func TestService_Create_AcceptsVariedDOBFormats(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"14-03-1992", "14-03-1992"},
		{"1992-03-14", "14-03-1992"},
		{"14/03/1992", "14-03-1992"},
		{"14 March 1992", "14-03-1992"},
		{"March 14, 1992", "14-03-1992"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			dob, err := CanonicalDOB(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dob)
		})
	}
}

func TestService_Create_RejectsBadDOB(t *testing.T) {
	svc, _ := newTestService(t)

	req := createTestRequest()
	req.DOB = "the fourteenth sometime"
	_, err := svc.Create(req)
	assertErrorCode(t, err, stderrors.ErrCodeInvalidDateOfBirth)
}

func TestService_Create_RequiresDOB(t *testing.T) {
	svc, _ := newTestService(t)

	req := createTestRequest()
	req.DOB = "   "
	_, err := svc.Create(req)
	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeValidationFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "date of birth is required")
}

func TestService_Create_RejectsUnknownJob(t *testing.T) {
	svc, _ := newTestService(t)

	req := createTestRequest()
	req.JobID = "JR-9999"
	_, err := svc.Create(req)
	assertErrorCode(t, err, stderrors.ErrCodeUnknownJobID)
}

func TestService_Create_RejectsDuplicate(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Create(createTestRequest())
	require.NoError(t, err)

	_, err = svc.Create(createTestRequest())
	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeDuplicateApplication, stdErr.Code)
	assert.Equal(t, first.ApplicationID, stdErr.Metadata["applicationId"])
}

func TestService_Create_SameJobDifferentEmailAllowed(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(createTestRequest())
	require.NoError(t, err)

	req := createTestRequest()
	req.Email = "other@x.com"
	_, err = svc.Create(req)
	assert.NoError(t, err)
}

// ==========================
// Listing and selection
// ==========================

func TestService_ListByEmail(t *testing.T) {
	svc, st := newTestService(t)

	first, err := svc.Create(createTestRequest())
	require.NoError(t, err)

	second := createTestRequest()
	second.JobID = "JR-1002"
	secondRes, err := svc.Create(second)
	require.NoError(t, err)

	// Age the first record so ordering is deterministic.
	old := time.Now().Add(-time.Hour)
	firstPath := filepath.Join(st.Dir(), store.ApplicationKey(first.ApplicationID, "jane@x.com")+".json")
	require.NoError(t, os.Chtimes(firstPath, old, old))

	res, err := svc.ListByEmail("jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "Jane Doe", res.Name)
	assert.Equal(t, secondRes.ApplicationID, res.Applications[0].ApplicationID)
	assert.Equal(t, first.ApplicationID, res.Applications[1].ApplicationID)
	assert.NotEmpty(t, res.Applications[0].HumanStatus)
}

func TestService_ListByEmail_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.ListByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.Zero(t, res.Count)
	assert.Empty(t, res.Applications)
}

func TestService_SelectByChoice_MatchesJobTitleSubstring(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(createTestRequest())
	require.NoError(t, err)

	second := createTestRequest()
	second.JobID = "JR-1002"
	_, err = svc.Create(second)
	require.NoError(t, err)

	res, err := svc.SelectByChoice("jane@x.com", "backend")
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, created.ApplicationID, res.Selection.ID)
}

func TestService_SelectByChoice_NumberFollowsListingOrder(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(createTestRequest())
	require.NoError(t, err)

	list, err := svc.ListByEmail("jane@x.com")
	require.NoError(t, err)

	res, err := svc.SelectByChoice("jane@x.com", "1")
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, list.Applications[0].ApplicationID, res.Selection.ID)
}

// ==========================
// Lookup by id
// ==========================

func TestService_GetByID(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(createTestRequest())
	require.NoError(t, err)

	res, err := svc.GetByID(created.ApplicationID)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, created.ApplicationID, res.Application.ApplicationID)
	assert.Equal(t, "jane@x.com", res.Application.Email)
	assert.Equal(t, statusLines[StatusSubmitted], res.Application.HumanStatus)
}

func TestService_GetByID_FallsBackToContentScan(t *testing.T) {
	svc, st := newTestService(t)

	// Record filed under a legacy filename that the pattern lookup misses.
	rec := Record{ApplicationID: "legacy-42", Name: "Old Timer", Email: "old@x.com", Status: "Under Review"}
	require.NoError(t, st.Write("oldtimer", &rec))

	res, err := svc.GetByID("LEGACY-42")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "legacy-42", res.Application.ApplicationID)
	assert.Equal(t, StatusInReview, res.Application.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.GetByID("missing")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Application)
}

func TestService_ExistingApplication(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(createTestRequest())
	require.NoError(t, err)

	id, err := svc.ExistingApplication("JR-1001", "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ApplicationID, id)

	id, err = svc.ExistingApplication("JR-1002", "jane@x.com")
	require.NoError(t, err)
	assert.Empty(t, id)
}

// ==========================
// Status helpers
// ==========================

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"submitted", StatusSubmitted},
		{"Pending", StatusSubmitted},
		{"Under Review", StatusInReview},
		{"in_review", StatusInReview},
		{"INTERVIEW_SCHEDULED", StatusInterviewScheduled},
		{"selected", StatusSelected},
		{"rejected", StatusRejected},
		{"something else", "something_else"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeStatus(tt.raw), "raw=%q", tt.raw)
	}
}

func TestHumanStatus_UnknownNarratesGenericLine(t *testing.T) {
	// Hand-edited records can carry statuses outside the vocabulary. They
	// must not be narrated with the submitted sentence.
	assert.Equal(t, defaultStatusLine, HumanStatus(NormalizeStatus("on_hold")))
	assert.Equal(t, defaultStatusLine, HumanStatus(NormalizeStatus("")))
	assert.Equal(t, statusLines[StatusSubmitted], HumanStatus(NormalizeStatus("Pending")))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "14-03-2026", HumanDate("2026-03-14T10:30:00Z"))
	assert.Equal(t, "14-03-2026", HumanDate("2026-03-14"))
	assert.Equal(t, "not a date", HumanDate("not a date"))
	assert.Equal(t, "", HumanDate(""))
}
