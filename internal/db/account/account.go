package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"
	"swapcloset/internal/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "account_email_key"

var accountColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"remember_token",
	"is_admin",
	"email_verified_at",
	"gcash_number",
	"bank_name",
	"bank_account_number",
	"bank_account_name",
	"created_at",
}

type PgxAccountRepository struct {
	exec    db.Executor
	builder sq.StatementBuilderType
}

func NewPgxRepository(exec db.Executor) *PgxAccountRepository {
	if exec == nil {
		panic("Argument exec must not be nil.")
	}
	return &PgxAccountRepository{exec: exec, builder: db.NewStatementBuilder()}
}

func (r *PgxAccountRepository) Create(
	ctx context.Context,
	input account.CreateAccountInput,
) (a account.Account, err error) {
	query, args, err := r.builder.
		Insert("account").
		Columns(
			"name",
			"email",
			"password_hash",
			"is_admin",
			"email_verified_at",
			"gcash_number",
			"bank_name",
			"bank_account_number",
			"bank_account_name",
			"created_at",
		).
		Values(
			input.Name,
			string(input.Email),
			string(input.PasswordHash),
			input.IsAdmin,
			encodeOptionalTime(input.EmailVerifiedAt),
			encodeOptionalString(input.Payout.GcashNumber),
			encodeOptionalString(input.Payout.BankName),
			encodeOptionalString(input.Payout.BankAccountNumber),
			encodeOptionalString(input.Payout.BankAccountName),
			input.CreatedAt,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return a, err
	}

	a, err = scanAccount(r.exec.QueryRow(ctx, query, args...))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, account.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxAccountRepository) GetByID(ctx context.Context, id account.ID) (a account.Account, err error) {
	query, args, err := r.builder.
		Select(accountColumns...).
		From("account").
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return a, err
	}
	a, err = scanAccount(r.exec.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxAccountRepository) GetByEmail(ctx context.Context, email c.Email) (a account.Account, err error) {
	query, args, err := r.builder.
		Select(accountColumns...).
		From("account").
		Where(sq.Eq{"email": string(email)}).
		ToSql()
	if err != nil {
		return a, err
	}
	a, err = scanAccount(r.exec.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxAccountRepository) ListMembers(
	ctx context.Context,
	options account.ListMembersOptions,
) ([]account.Account, error) {
	builder := r.builder.
		Select(accountColumns...).
		From("account").
		Where(sq.Eq{"is_admin": false}).
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(options.Offset))
	if options.Limit > 0 {
		builder = builder.Limit(uint64(options.Limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]account.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *PgxAccountRepository) Update(
	ctx context.Context,
	input account.UpdateAccountInput,
) (a account.Account, err error) {
	query, args, err := r.builder.
		Update("account").
		Set("name", input.Name).
		Set("email", string(input.Email)).
		Set("gcash_number", encodeOptionalString(input.Payout.GcashNumber)).
		Set("bank_name", encodeOptionalString(input.Payout.BankName)).
		Set("bank_account_number", encodeOptionalString(input.Payout.BankAccountNumber)).
		Set("bank_account_name", encodeOptionalString(input.Payout.BankAccountName)).
		Where(sq.Eq{"id": int64(input.ID)}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return a, err
	}

	a, err = scanAccount(r.exec.QueryRow(ctx, query, args...))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, account.ErrEmailAlreadyExists
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxAccountRepository) Delete(ctx context.Context, id account.ID) error {
	query, args, err := r.builder.
		Delete("account").
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.exec.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) SetPassword(ctx context.Context, input account.SetPasswordInput) error {
	builder := r.builder.
		Update("account").
		Set("password_hash", string(input.PasswordHash)).
		Where(sq.Eq{"id": int64(input.ID)})
	if input.RememberToken.IsPresent {
		builder = builder.Set("remember_token", string(input.RememberToken.Value))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	tag, err := r.exec.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func (r *PgxAccountRepository) ExistsByEmailExcludingID(
	ctx context.Context,
	email c.Email,
	excludeID account.ID,
) (bool, error) {
	query, args, err := r.builder.
		Select("1").
		From("account").
		Where(sq.Eq{"email": string(email)}).
		Where(sq.NotEq{"id": int64(excludeID)}).
		ToSql()
	if err != nil {
		return false, err
	}
	var one int
	err = r.exec.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func columnList() string {
	list := accountColumns[0]
	for _, column := range accountColumns[1:] {
		list += ", " + column
	}
	return list
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (a account.Account, err error) {
	var (
		id                int64
		name              string
		email             string
		passwordHash      string
		rememberToken     sql.NullString
		isAdmin           bool
		emailVerifiedAt   sql.NullTime
		gcashNumber       sql.NullString
		bankName          sql.NullString
		bankAccountNumber sql.NullString
		bankAccountName   sql.NullString
		createdAt         time.Time
	)
	err = row.Scan(
		&id,
		&name,
		&email,
		&passwordHash,
		&rememberToken,
		&isAdmin,
		&emailVerifiedAt,
		&gcashNumber,
		&bankName,
		&bankAccountNumber,
		&bankAccountName,
		&createdAt,
	)
	if err != nil {
		return a, err
	}
	return account.Account{
		ID:              account.ID(id),
		Name:            name,
		Email:           c.Email(email),
		PasswordHash:    account.PasswordHash(passwordHash),
		RememberToken:   c.NewOptional(account.RememberToken(rememberToken.String), rememberToken.Valid),
		IsAdmin:         isAdmin,
		EmailVerifiedAt: c.NewOptional(emailVerifiedAt.Time, emailVerifiedAt.Valid),
		Payout: account.PayoutDetails{
			GcashNumber:       decodeOptionalString(gcashNumber),
			BankName:          decodeOptionalString(bankName),
			BankAccountNumber: decodeOptionalString(bankAccountNumber),
			BankAccountName:   decodeOptionalString(bankAccountName),
		},
		CreatedAt: createdAt,
	}, nil
}

func encodeOptionalString(value c.Optional[string]) sql.NullString {
	return sql.NullString{String: value.Value, Valid: value.IsPresent}
}

func decodeOptionalString(value sql.NullString) c.Optional[string] {
	return c.NewOptional(value.String, value.Valid)
}

func encodeOptionalTime(at c.Optional[time.Time]) sql.NullTime {
	return sql.NullTime{Time: at.Value, Valid: at.IsPresent}
}
