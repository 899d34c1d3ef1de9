package messages

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// PayloadPolicy decides what happens to payloads with missing fields.
type PayloadPolicy int

const (
	// PayloadLenient decodes missing fields as zero values and lets them
	// through, matching what older clients accepted.
	PayloadLenient PayloadPolicy = iota
	// PayloadStrict rejects payloads whose required fields are missing.
	PayloadStrict
)

func (p PayloadPolicy) String() string {
	switch p {
	case PayloadLenient:
		return "lenient"
	case PayloadStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ErrInvalidPayload is returned when a payload fails strict validation.
type ErrInvalidPayload struct {
	Type   string
	Reason string
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid %s payload: %s", e.Type, e.Reason)
}

func IsInvalidPayload(err error) bool {
	_, ok := err.(*ErrInvalidPayload)
	return ok
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// DecodePayload unmarshals the payload of msg into v and applies policy.
// An absent payload decodes to the zero value of v.
func DecodePayload(msg *Message, v interface{}, policy PayloadPolicy) error {
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, v); err != nil {
			return fmt.Errorf("failed to unmarshal %s payload: %v", msg.Type, err)
		}
	}
	if policy != PayloadStrict {
		return nil
	}
	if err := getValidator().Struct(v); err != nil {
		return &ErrInvalidPayload{Type: msg.Type, Reason: err.Error()}
	}
	return nil
}
