// Package pgerr translates low-level PostgreSQL errors into the error
// vocabulary the application layer understands. Lock conflicts between
// concurrent transactions surface as errs.TransientError so handlers can
// retry the whole unit of work.
package pgerr

import (
	"errors"

	"aquaflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes that indicate a retryable conflict rather than a
// persistent failure. See https://www.postgresql.org/docs/current/errcodes-appendix.html.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Translate maps retryable PostgreSQL failures to errs.TransientError and
// returns every other error unchanged. op names the operation for the error
// message.
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return errs.NewTransientError(op, err)
		}
	}

	return err
}
