package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/dto"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/models"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/repository"
	appErrors "github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/errors"
)

type moderationSourceProvider interface {
	Source(contentType models.ContentType) (repository.ContentSource, bool)
}

type moderationAuditRepository interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// ModerationService presents five content tables as one review queue and
// routes deletions to each type's policy.
type ModerationService struct {
	sources moderationSourceProvider
	audit   moderationAuditRepository
	logger  *zap.Logger
}

// NewModerationService constructs a ModerationService instance.
func NewModerationService(sources moderationSourceProvider, audit moderationAuditRepository, logger *zap.Logger) *ModerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModerationService{sources: sources, audit: audit, logger: logger}
}

// List returns a page of the unified moderation view. Total counts every
// matching row across the selected types before windowing, so it does not
// change as the admin pages through results. Each type is fetched up to
// offset+limit rows; the merged set is sorted by creation time and windowed
// once, which keeps page boundaries stable regardless of how matches are
// distributed across types.
func (s *ModerationService) List(ctx context.Context, filter models.ContentFilter) (*dto.ContentListResponse, error) {
	types, err := s.resolveTypes(filter.Type)
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := repository.ContentQuery{
		Status: filter.Status,
		Search: filter.Search,
		Oldest: filter.SortBy == "oldest",
		Limit:  offset + limit,
	}

	var merged []models.ModeratedContentItem
	total := 0
	for _, contentType := range types {
		source, ok := s.sources.Source(contentType)
		if !ok {
			continue
		}
		count, err := source.Count(ctx, query)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count content")
		}
		total += count

		items, err := source.Fetch(ctx, query)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch content")
		}
		merged = append(merged, items...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID < merged[j].ID
		}
		if query.Oldest {
			return merged[i].CreatedAt.Before(merged[j].CreatedAt)
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	if offset >= len(merged) {
		merged = nil
	} else {
		end := offset + limit
		if end > len(merged) {
			end = len(merged)
		}
		merged = merged[offset:end]
	}

	return &dto.ContentListResponse{Items: merged, Total: total}, nil
}

// Delete removes one content item using its type's policy. A repeated soft
// delete reports not found, matching a hard delete of a missing row.
func (s *ModerationService) Delete(ctx context.Context, contentType, contentID, adminID string) (*dto.DeleteContentResponse, error) {
	source, ok := s.sources.Source(models.ContentType(contentType))
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown content type")
	}
	if contentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "content id is required")
	}

	deletionType, err := source.Delete(ctx, contentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "content not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete content")
	}

	if s.audit != nil {
		if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
			UserID:     &adminID,
			Action:     models.AuditActionContentDelete,
			Resource:   contentType,
			ResourceID: &contentID,
			NewValues:  []byte(fmt.Sprintf(`{"deletion_type":%q}`, deletionType)),
		}); err != nil {
			s.logger.Warn("failed to record content delete audit log", zap.Error(err))
		}
	}

	return &dto.DeleteContentResponse{
		ContentType:  models.ContentType(contentType),
		ContentID:    contentID,
		DeletionType: deletionType,
	}, nil
}

func (s *ModerationService) resolveTypes(requested string) ([]models.ContentType, error) {
	if requested == "" || requested == "all" {
		return models.ContentTypes, nil
	}
	for _, contentType := range models.ContentTypes {
		if string(contentType) == requested {
			return []models.ContentType{contentType}, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "unknown content type")
}
