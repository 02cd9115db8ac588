package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/store"
	"github.com/MKhiriev/threadboard/models"
)

const (
	DefaultThreadPageSize = 20
	MaxThreadPageSize     = 100
)

type threadService struct {
	threadRepository store.ThreadRepository

	logger *logger.Logger
}

func NewThreadService(threadRepository store.ThreadRepository, logger *logger.Logger) ThreadService {
	return &threadService{
		threadRepository: threadRepository,
		logger:           logger,
	}
}

// Create stores a thread authored by accountID. Title and body must be
// non-blank.
func (s *threadService) Create(ctx context.Context, accountID int64, title, body string) (models.Thread, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(body) == "" || accountID == 0 {
		logger.FromContext(ctx).Error().Int64("account_id", accountID).Msg("invalid thread data provided")
		return models.Thread{}, ErrInvalidDataProvided
	}

	return s.threadRepository.CreateThread(ctx, models.Thread{
		Title:     title,
		Body:      body,
		CreatedBy: accountID,
	})
}

func (s *threadService) Get(ctx context.Context, id int64) (models.Thread, error) {
	return s.threadRepository.FindThread(ctx, id)
}

// List returns a page of threads newest first. A zero limit selects
// DefaultThreadPageSize; larger limits are capped at MaxThreadPageSize.
func (s *threadService) List(ctx context.Context, limit, offset uint64) (models.ThreadList, error) {
	switch {
	case limit == 0:
		limit = DefaultThreadPageSize
	case limit > MaxThreadPageSize:
		limit = MaxThreadPageSize
	}

	page := models.ThreadPage{Limit: limit, Offset: offset}
	threads, err := s.threadRepository.ListThreads(ctx, page)
	if err != nil {
		return models.ThreadList{}, err
	}

	return models.ThreadList{
		Threads: threads,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
