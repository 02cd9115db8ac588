package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/threadboard/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	accountColumns = []string{"id", "username", "email", "password_hash", "rank", "created_at"}
	sessionColumns = []string{"id", "account_id", "user_agent", "created_at", "expires_at"}
	threadColumns  = []string{"id", "title", "body", "created_by", "created_on"}
)

// Unique constraints on accounts, see migrations/00001_create_accounts.sql.
const (
	accountsUsernameKey = "accounts_username_key"
	accountsEmailKey    = "accounts_email_lower_key"
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── accounts ──────────────────────────────────────────────────────────────────

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return toSQL(psql.Insert("accounts").
		Columns("username", "email", "password_hash", "rank").
		Values(account.Username, account.Email, account.PasswordHash, account.Rank).
		Suffix(returning(accountColumns)))
}

func buildSelectAccountByEmailQuery(email string) (string, []any, error) {
	return toSQL(psql.Select(accountColumns...).
		From("accounts").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)))
}

func buildSelectAccountByIDQuery(id int64) (string, []any, error) {
	return toSQL(psql.Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"id": id}))
}

// ── sessions ──────────────────────────────────────────────────────────────────

func buildInsertSessionQuery(session models.Session) (string, []any, error) {
	return toSQL(psql.Insert("sessions").
		Columns(sessionColumns...).
		Values(session.ID, session.AccountID, session.UserAgent, session.CreatedAt, session.ExpiresAt))
}

func buildSelectSessionQuery(id string) (string, []any, error) {
	return toSQL(psql.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"id": id}))
}

func buildDeleteSessionQuery(id string) (string, []any, error) {
	return toSQL(psql.Delete("sessions").Where(sq.Eq{"id": id}))
}

func buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return toSQL(psql.Delete("sessions").Where(sq.LtOrEq{"expires_at": now}))
}

// ── threads ───────────────────────────────────────────────────────────────────

func buildInsertThreadQuery(thread models.Thread) (string, []any, error) {
	return toSQL(psql.Insert("threads").
		Columns("title", "body", "created_by").
		Values(thread.Title, thread.Body, thread.CreatedBy).
		Suffix(returning(threadColumns)))
}

func buildSelectThreadQuery(id int64) (string, []any, error) {
	return toSQL(psql.Select(threadColumns...).
		From("threads").
		Where(sq.Eq{"id": id}))
}

func buildListThreadsQuery(page models.ThreadPage) (string, []any, error) {
	return toSQL(psql.Select(threadColumns...).
		From("threads").
		OrderBy("created_on DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset))
}
