package postgre

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"ugc-srv/internal/content/repository"
	"ugc-srv/internal/model"
)

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContentItem(row rowScanner) (model.ContentItem, error) {
	var item model.ContentItem
	var postedAt sql.NullTime

	if err := row.Scan(
		&item.ID, &item.Platform, &item.PlatformContentID,
		&item.AuthorID, &item.AuthorHandle, &item.AuthorFollowerCount, &item.AuthorVerified,
		&item.Caption, pq.Array(&item.Hashtags), &item.Location, &item.MediaType, &item.MediaURL,
		&item.ThumbnailURL, &item.Permalink, &item.DurationSeconds,
		&item.Likes, &item.Comments, &item.Shares, &item.Views,
		&item.Category, &item.Sentiment, &item.SentimentScore, &item.QualityScore, &item.BrandSafe,
		pq.Array(&item.Tags), &item.Classified,
		&item.RightsStatus, &postedAt, &item.DiscoveredAt, &item.UpdatedAt,
	); err != nil {
		return model.ContentItem{}, err
	}

	if postedAt.Valid {
		item.PostedAt = &postedAt.Time
	}

	return item, nil
}

func buildListContentQuery(base string, opt repository.ListContentItemsOptions, paged bool) (string, []interface{}) {
	query := base + " WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if opt.Platform != "" {
		query += fmt.Sprintf(" AND platform = $%d", argIdx)
		args = append(args, opt.Platform)
		argIdx++
	}
	if opt.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, opt.Category)
		argIdx++
	}
	if opt.Sentiment != "" {
		query += fmt.Sprintf(" AND sentiment = $%d", argIdx)
		args = append(args, opt.Sentiment)
		argIdx++
	}
	if opt.MediaType != "" {
		query += fmt.Sprintf(" AND media_type = $%d", argIdx)
		args = append(args, opt.MediaType)
		argIdx++
	}
	if opt.RightsStatus != "" {
		query += fmt.Sprintf(" AND rights_status = $%d", argIdx)
		args = append(args, opt.RightsStatus)
		argIdx++
	}
	if opt.BrandSafe != nil {
		query += fmt.Sprintf(" AND brand_safe = $%d", argIdx)
		args = append(args, *opt.BrandSafe)
		argIdx++
	}
	if opt.MinQuality > 0 {
		query += fmt.Sprintf(" AND quality_score >= $%d", argIdx)
		args = append(args, opt.MinQuality)
		argIdx++
	}

	if !paged {
		return query, args
	}

	query += " ORDER BY discovered_at DESC"

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opt.Limit)
		argIdx++
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, opt.Offset)
	}

	return query, args
}
