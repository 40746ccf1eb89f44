package postservice

import (
	"github.com/google/uuid"

	"github.com/inkwellhq/inkwell/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 1, 200), "title", "must not be more than 200 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(v.NotBlank(content), "content", "must be provided")
}

func validateStatus(v *common.Validator, status string) {
	v.Check(status == StatusDraft || status == StatusPublished, "status", "must be either draft or published")
}

func validateUUID(v *common.Validator, id, field string) {
	v.Check(id != "", field, "must be provided")
	v.Check(uuid.Validate(id) == nil, field, "must be a valid id")
}
