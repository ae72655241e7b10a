// internal/tools/applicationtools/models.go
package applicationtools

type ListByEmailInput struct {
	Email string `json:"email"`
}

type SelectByChoiceInput struct {
	Email  string `json:"email"`
	Choice string `json:"choice"`
}

type CheckStatusInput struct {
	ApplicationID string `json:"applicationId"`
}

type CheckExistingInput struct {
	JobID string `json:"jobId"`
	Email string `json:"email"`
}

type CheckExistingOutput struct {
	Exists        bool   `json:"exists"`
	ApplicationID string `json:"application_id,omitempty"`
}

type CreateInput struct {
	JobID      string   `json:"jobId"`
	Name       string   `json:"name"`
	DOB        string   `json:"dob"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
}
