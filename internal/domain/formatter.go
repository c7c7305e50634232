package domain

// AggregatedSkill is one element of the json_agg column. Both fields are
// null when the LEFT JOIN matched no skill for the category.
type AggregatedSkill struct {
	ID   *int64  `json:"id"`
	Nome *string `json:"nome"`
}

// SkillRow is one row of the grouped skills query.
type SkillRow struct {
	CategoriaID   int64
	CategoriaNome string
	Habilidades   []AggregatedSkill
}

// FormatSkillGroups reshapes grouped rows into SkillGroups, keeping row order.
// A category without skills gets an empty, never nil, Habilidades slice.
func FormatSkillGroups(rows []SkillRow) []SkillGroup {
	groups := make([]SkillGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, SkillGroup{
			Skill: Categoria{
				ID:   row.CategoriaID,
				Nome: row.CategoriaNome,
			},
			Habilidades: cleanHabilidades(row.Habilidades),
		})
	}
	return groups
}

// cleanHabilidades drops the [{id: null, nome: null}] placeholder. Only the
// first id is inspected: a real skill always has an id.
func cleanHabilidades(agg []AggregatedSkill) []Habilidade {
	if len(agg) == 0 || agg[0].ID == nil {
		return []Habilidade{}
	}

	out := make([]Habilidade, 0, len(agg))
	for _, s := range agg {
		h := Habilidade{Nome: s.Nome}
		if s.ID != nil {
			h.ID = *s.ID
		}
		out = append(out, h)
	}
	return out
}
