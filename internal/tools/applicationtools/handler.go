// internal/tools/applicationtools/handler.go
package applicationtools

import (
	"context"
	"encoding/json"

	"hr-voice-tools/internal/application"
	"hr-voice-tools/internal/dispatch"
)

// Register binds the application-side tools. Every handler unmarshals its
// already-schema-validated arguments and delegates to the service.
func Register(d *dispatch.Dispatcher, svc *application.Service) error {
	bindings := map[string]dispatch.Handler{
		"list_applications_by_email":   listByEmail(svc),
		"select_application_by_choice": selectByChoice(svc),
		"check_application_status":     checkStatus(svc),
		"check_existing_application":   checkExisting(svc),
		"create_job_application":       create(svc),
	}
	for name, handler := range bindings {
		if err := d.Bind(name, handler); err != nil {
			return err
		}
	}
	return nil
}

func listByEmail(svc *application.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input ListByEmailInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.ListByEmail(input.Email)
	}
}

func selectByChoice(svc *application.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input SelectByChoiceInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.SelectByChoice(input.Email, input.Choice)
	}
}

func checkStatus(svc *application.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input CheckStatusInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.GetByID(input.ApplicationID)
	}
}

func checkExisting(svc *application.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input CheckExistingInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		id, err := svc.ExistingApplication(input.JobID, input.Email)
		if err != nil {
			return nil, err
		}
		return &CheckExistingOutput{Exists: id != "", ApplicationID: id}, nil
	}
}

func create(svc *application.Service) dispatch.Handler {
	return func(_ context.Context, args json.RawMessage) (interface{}, error) {
		var input CreateInput
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, err
		}
		return svc.Create(application.CreateRequest{
			JobID:      input.JobID,
			Name:       input.Name,
			DOB:        input.DOB,
			Email:      input.Email,
			Phone:      input.Phone,
			Skills:     input.Skills,
			Experience: input.Experience,
		})
	}
}
