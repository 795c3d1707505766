package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"geo_i18n/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) CreatePlace(ctx context.Context, p domain.Place) (domain.Place, error) {
	res, err := r.db.ExecContext(ctx, insertPlaceSQL, string(p.Kind), p.Name, p.Denonym)
	if err != nil {
		return domain.Place{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Place{}, err
	}
	p.ID = id
	return p, nil
}

func (r *Repo) CreateTranslation(ctx context.Context, t domain.PlaceI18n) error {
	_, err := r.db.ExecContext(ctx, insertPlaceI18nSQL, t.PlaceID, t.Field, t.Lang, t.Text)
	return err
}

func (r *Repo) GetPlace(ctx context.Context, kind domain.Kind, name, lang string) (domain.PlaceView, error) {
	var pv domain.PlaceView
	var k string
	if err := r.db.QueryRowContext(ctx, getPlaceSQL, string(kind), name).
		Scan(&pv.ID, &k, &pv.Name, &pv.Denonym); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PlaceView{}, domain.ErrNotFound
		}
		return domain.PlaceView{}, err
	}
	pv.Kind = domain.Kind(k)
	pv.Language = lang

	views := []*domain.PlaceView{&pv}
	if err := r.applyTranslations(ctx, lang, views); err != nil {
		return domain.PlaceView{}, err
	}
	return pv, nil
}

func (r *Repo) ListPlaces(ctx context.Context, q domain.PlacesQuery) (domain.PlacesPage, error) {
	rows, err := r.db.QueryContext(ctx, listPlacesSQL, string(q.Kind), q.Limit)
	if err != nil {
		return domain.PlacesPage{}, err
	}
	defer rows.Close()

	var out []domain.PlaceView
	for rows.Next() {
		var pv domain.PlaceView
		var k string
		if err := rows.Scan(&pv.ID, &k, &pv.Name, &pv.Denonym); err != nil {
			return domain.PlacesPage{}, err
		}
		pv.Kind = domain.Kind(k)
		pv.Language = q.Lang
		out = append(out, pv)
	}
	if err := rows.Err(); err != nil {
		return domain.PlacesPage{}, err
	}

	views := make([]*domain.PlaceView, len(out))
	for i := range out {
		views[i] = &out[i]
	}
	if err := r.applyTranslations(ctx, q.Lang, views); err != nil {
		return domain.PlacesPage{}, err
	}
	return domain.PlacesPage{Items: out}, nil
}

// applyTranslations overlays lang overrides onto views in place. Fields
// without an override keep their base value.
func (r *Repo) applyTranslations(ctx context.Context, lang string, views []*domain.PlaceView) error {
	if lang == "" || len(views) == 0 {
		return nil
	}
	byID := make(map[int64]*domain.PlaceView, len(views))
	marks := make([]string, 0, len(views))
	args := make([]any, 0, len(views)+1)
	args = append(args, lang)
	for _, v := range views {
		byID[v.ID] = v
		marks = append(marks, "?")
		args = append(args, v.ID)
	}

	rows, err := r.db.QueryContext(ctx, placeI18nPrefix+strings.Join(marks, ",")+")", args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var field, text string
		if err := rows.Scan(&id, &field, &text); err != nil {
			return err
		}
		v, ok := byID[id]
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		switch field {
		case domain.FieldName:
			v.Name = text
		case domain.FieldDenonym:
			v.Denonym = text
		default:
			continue
		}
		v.Translated = append(v.Translated, field)
	}
	return rows.Err()
}
