package auth

import (
	"errors"
	"strings"

	autherrors "go-hrm/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case pgErr.ConstraintName == "uq_user_company_email":
			return autherrors.ErrEmailAlreadyRegistered
		case strings.Contains(pgErr.ConstraintName, "slug"):
			return autherrors.ErrSlugTaken
		}
	}

	return err
}
