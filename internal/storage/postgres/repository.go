package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	jsoniter "github.com/json-iterator/go"
	"github.com/khedhrije/portfolio-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	selectCategorias = `SELECT id, nome FROM categorias_skill ORDER BY id`

	// one row per category; a category without skills aggregates to
	// [{"id": null, "nome": null}] because of the LEFT JOIN
	selectSkillGroups = `
		SELECT
			cs.id AS categoria_id,
			cs.nome AS categoria_nome,
			json_agg(
				json_build_object('id', s.id, 'nome', s.nome)
				ORDER BY s.nome
			) AS habilidades_agrupadas
		FROM categorias_skill cs
		LEFT JOIN skills s ON cs.id = s.categoria_id
		GROUP BY cs.id, cs.nome
		ORDER BY cs.nome`

	selectFormacao = `
		SELECT id, curso, instituicao, periodo
		FROM formacao
		ORDER BY id ASC`
)

// Repository runs the fixed portfolio queries.
type Repository struct {
	db Querier
}

func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// ListCategorias returns every skill category.
func (r *Repository) ListCategorias(ctx context.Context) ([]domain.Categoria, error) {
	rows, err := r.db.Query(ctx, selectCategorias)
	if err != nil {
		return nil, fmt.Errorf("query categorias: %w", err)
	}
	defer rows.Close()

	categorias := []domain.Categoria{}
	for rows.Next() {
		var c domain.Categoria
		if err := rows.Scan(&c.ID, &c.Nome); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		categorias = append(categorias, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categorias: %w", err)
	}
	return categorias, nil
}

// ListSkillRows returns the raw grouped rows, ordered by category name.
func (r *Repository) ListSkillRows(ctx context.Context) ([]domain.SkillRow, error) {
	rows, err := r.db.Query(ctx, selectSkillGroups)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	result := []domain.SkillRow{}
	for rows.Next() {
		var (
			row domain.SkillRow
			agg []byte
		)
		if err := rows.Scan(&row.CategoriaID, &row.CategoriaNome, &agg); err != nil {
			return nil, fmt.Errorf("scan skill row: %w", err)
		}
		if row.Habilidades, err = decodeHabilidades(agg); err != nil {
			return nil, fmt.Errorf("decode habilidades of categoria %d: %w", row.CategoriaID, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read skills: %w", err)
	}
	return result, nil
}

// decodeHabilidades parses the json_agg column as read by pgx's json codec.
func decodeHabilidades(raw []byte) ([]domain.AggregatedSkill, error) {
	var agg []domain.AggregatedSkill
	if err := json.Unmarshal(raw, &agg); err != nil {
		return nil, err
	}
	return agg, nil
}

// ListSkillGroups returns every category with its skills.
func (r *Repository) ListSkillGroups(ctx context.Context) ([]domain.SkillGroup, error) {
	rows, err := r.ListSkillRows(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FormatSkillGroups(rows), nil
}

// ListFormacao returns the education entries by ascending id.
func (r *Repository) ListFormacao(ctx context.Context) ([]domain.Formacao, error) {
	rows, err := r.db.Query(ctx, selectFormacao)
	if err != nil {
		return nil, fmt.Errorf("query formacao: %w", err)
	}
	defer rows.Close()

	formacao := []domain.Formacao{}
	for rows.Next() {
		var (
			id                          int64
			curso, instituicao, periodo pgtype.Text
		)
		if err := rows.Scan(&id, &curso, &instituicao, &periodo); err != nil {
			return nil, fmt.Errorf("scan formacao: %w", err)
		}
		formacao = append(formacao, domain.Formacao{
			ID:          id,
			Curso:       textPtr(curso),
			Instituicao: textPtr(instituicao),
			Periodo:     textPtr(periodo),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read formacao: %w", err)
	}
	return formacao, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
