package echoapi

import "github.com/smartsyakila/backend/core"

// idRequest is the body of collection-level PUT/DELETE calls that only
// need to address one record.
type idRequest struct {
	ID string `json:"id" validate:"required"`
}

func (r *idRequest) Validate() error {
	r.ID = core.CleanString(r.ID)
	return core.Validate.Struct(r)
}
