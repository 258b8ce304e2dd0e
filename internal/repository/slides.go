package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/letuankiet/usersdesk/internal/model"
)

// InitialSlides is inserted by InitializeIfEmpty into an empty table.
var InitialSlides = []model.SlideSeed{
	{Title: "FINLA", Src: "https://wallpapercave.com/wp/wp2506793.jpg"},
	{Title: "TERRA", Src: "https://wallpapercave.com/wp/wp2506795.jpg"},
	{Title: "AQUA", Src: "https://wallpapercave.com/wp/wp2506811.jpg"},
}

// ResetSlides is the set left behind by Reset.
var ResetSlides = []model.SlideSeed{
	{Title: "MOUNTAIN", Src: "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=2070"},
	{Title: "OCEAN", Src: "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=2073"},
	{Title: "FOREST", Src: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?q=80&w=2071"},
	{Title: "DESERT", Src: "https://images.unsplash.com/photo-1509316785289-025f5b846b35?q=80&w=2076"},
	{Title: "LAKE", Src: "https://images.unsplash.com/photo-1472214103451-9374bd1c798e?q=80&w=2070"},
}

// SlideRepository stores the carousel slides. It owns the nature_slides
// table, including its creation.
type SlideRepository interface {
	List(ctx context.Context) ([]model.NatureSlide, error)
	InitializeIfEmpty(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

const (
	createSlidesTable = `CREATE TABLE IF NOT EXISTS nature_slides (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    src TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	dropSlidesTable = `DROP TABLE IF EXISTS nature_slides`
	countSlides     = `SELECT COUNT(*) FROM nature_slides`
	insertSlide     = `INSERT INTO nature_slides (title, src) VALUES ($1, $2)`
	listSlides      = `SELECT id, title, src, created_at FROM nature_slides ORDER BY id ASC`
)

type slideRepository struct {
	db Querier
}

// NewSlideRepository returns a SlideRepository backed by db.
func NewSlideRepository(db Querier) SlideRepository {
	return &slideRepository{db: db}
}

func (r *slideRepository) List(ctx context.Context) ([]model.NatureSlide, error) {
	rows, err := r.db.Query(ctx, listSlides)
	if err != nil {
		return nil, errors.Wrap(err, "list nature slides")
	}
	defer rows.Close()

	slides := []model.NatureSlide{}
	for rows.Next() {
		var s model.NatureSlide
		if err := rows.Scan(&s.ID, &s.Title, &s.Src, &s.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan nature slide")
		}
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "scan nature slides")
	}
	return slides, nil
}

// InitializeIfEmpty creates the table when missing and seeds it with
// InitialSlides when it holds no rows. It reports how many rows it inserted.
//
// Two concurrent callers can both observe an empty table and both seed it.
func (r *slideRepository) InitializeIfEmpty(ctx context.Context) (int, error) {
	if _, err := r.db.Exec(ctx, createSlidesTable); err != nil {
		return 0, errors.Wrap(err, "create nature_slides")
	}

	var count int64
	if err := r.db.QueryRow(ctx, countSlides).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count nature slides")
	}
	if count > 0 {
		return 0, nil
	}

	if err := r.insert(ctx, InitialSlides); err != nil {
		return 0, err
	}
	return len(InitialSlides), nil
}

// Reset drops and recreates the table with ResetSlides. The statements run
// outside a transaction: readers in between may see no table or a partial
// set.
func (r *slideRepository) Reset(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, dropSlidesTable); err != nil {
		return errors.Wrap(err, "drop nature_slides")
	}
	if _, err := r.db.Exec(ctx, createSlidesTable); err != nil {
		return errors.Wrap(err, "create nature_slides")
	}
	return r.insert(ctx, ResetSlides)
}

func (r *slideRepository) insert(ctx context.Context, seeds []model.SlideSeed) error {
	for _, s := range seeds {
		if _, err := r.db.Exec(ctx, insertSlide, s.Title, s.Src); err != nil {
			return errors.Wrapf(err, "insert nature slide %q", s.Title)
		}
	}
	return nil
}
