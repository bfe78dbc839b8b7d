package request

import (
	"fmt"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/domain"
)

type CreateScanRequest struct {
	Titles []string `json:"titles"`
}

// Validate checks the batch against maxTitles. Empty strings are valid
// titles and score as clean.
func (r *CreateScanRequest) Validate(maxTitles int) error {
	if len(r.Titles) == 0 {
		return domain.ErrEmptyTitles
	}
	if maxTitles > 0 && len(r.Titles) > maxTitles {
		return fmt.Errorf("%w: got %d, limit is %d", domain.ErrTooManyTitles, len(r.Titles), maxTitles)
	}
	return nil
}

type ScoreTitleRequest struct {
	Title *string `json:"title"`
}

func (r *ScoreTitleRequest) Validate() error {
	if r.Title == nil {
		return domain.ErrMissingTitle
	}
	return nil
}
