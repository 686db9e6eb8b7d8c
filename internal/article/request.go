package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var errInvalidIncrement = errors.New("inc_votes must be a 32-bit integer")

// Increment is a vote delta. It decodes from a JSON integer or a string
// holding one, bounded to the int4 range of the votes column; null, "" and
// an absent field all mean zero.
type Increment int64

func (n *Increment) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*n = 0

		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0

			return nil
		}
	}

	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: got %s", errInvalidIncrement, b)
	}
	*n = Increment(v)

	return nil
}

// VoteRequest is the body of a PATCH on an article or a comment.
type VoteRequest struct {
	IncVotes Increment `json:"inc_votes"`
}

func (v *VoteRequest) Bind(r *http.Request) error {
	return nil
}
