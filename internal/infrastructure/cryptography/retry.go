package cryptography

import (
	"context"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/rsa-core/internal/domain/crypto"
)

// Retry calls attempt until it reports done, returns an error, or maxAttempts calls were made.
// maxAttempts of 0 means no cap. ctx is checked before every call; once it is done, Retry
// returns ctx.Err(). Running out of attempts yields ErrGenerationExhausted.
func Retry[T any](ctx context.Context, maxAttempts int, attempt func(n int) (T, bool, error)) (T, error) {
	var zero T

	for n := 1; maxAttempts == 0 || n <= maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		value, done, err := attempt(n)
		if err != nil {
			return zero, err
		}
		if done {
			return value, nil
		}
	}

	return zero, fmt.Errorf("%w: gave up after %d attempts", cryptoDomain.ErrGenerationExhausted, maxAttempts)
}
