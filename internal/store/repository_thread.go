package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/models"
	"github.com/jackc/pgerrcode"
)

// threadRepository is the PostgreSQL-backed implementation of
// [ThreadRepository] over the "threads" table.
type threadRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewThreadRepository(db *DB, logger *logger.Logger) ThreadRepository {
	logger.Debug().Msg("creating thread repository")
	return &threadRepository{
		db:     db,
		logger: logger,
	}
}

func (r *threadRepository) CreateThread(ctx context.Context, thread models.Thread) (models.Thread, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertThreadQuery(thread)
	if err != nil {
		return models.Thread{}, err
	}

	var created models.Thread
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.Title,
		&created.Body,
		&created.CreatedBy,
		&created.CreatedOn,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*threadRepository.CreateThread").
			Int64("created_by", thread.CreatedBy).
			Msg("failed to insert thread")

		if pgErr := postgresError(err); pgErr != nil && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return models.Thread{}, ErrUnknownAuthor
		}
		return models.Thread{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Int64("thread_id", created.ID).
		Int64("created_by", created.CreatedBy).
		Msg("thread created")

	return created, nil
}

func (r *threadRepository) FindThread(ctx context.Context, id int64) (models.Thread, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectThreadQuery(id)
	if err != nil {
		return models.Thread{}, err
	}

	var thread models.Thread
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&thread.ID,
			&thread.Title,
			&thread.Body,
			&thread.CreatedBy,
			&thread.CreatedOn,
		)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Thread{}, ErrThreadNotFound
	case err != nil:
		log.Err(err).Str("func", "*threadRepository.FindThread").Int64("thread_id", id).Msg("failed to query thread")
		return models.Thread{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return thread, nil
}

func (r *threadRepository) ListThreads(ctx context.Context, page models.ThreadPage) ([]models.Thread, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListThreadsQuery(page)
	if err != nil {
		return nil, err
	}

	var threads []models.Thread
	err = r.db.withRetry(ctx, func() error {
		threads, err = r.scanThreads(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*threadRepository.ListThreads").
			Uint64("limit", page.Limit).
			Uint64("offset", page.Offset).
			Msg("failed to list threads")
		return nil, err
	}

	return threads, nil
}

func (r *threadRepository) scanThreads(ctx context.Context, query string, args []any) ([]models.Thread, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	threads := make([]models.Thread, 0, 20)
	for rows.Next() {
		var thread models.Thread
		if err := rows.Scan(
			&thread.ID,
			&thread.Title,
			&thread.Body,
			&thread.CreatedBy,
			&thread.CreatedOn,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		threads = append(threads, thread)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return threads, nil
}
