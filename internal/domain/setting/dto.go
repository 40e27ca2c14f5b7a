package setting

import "github.com/staffhq/attendance-backend-go/internal/pkg/validator"

type UpsertSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r *UpsertSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key is required",
		})
	}
	if len(r.Key) > 120 {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key must not exceed 120 characters",
		})
	}
	if len(r.Value) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
