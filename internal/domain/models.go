// Package domain holds the portfolio entities served by the API and the
// reshaping of flat query rows into them.
package domain

// Categoria is a skill category.
type Categoria struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Habilidade is a single skill as exposed inside a group. Nome is nil when
// the column is NULL so the JSON carries null.
type Habilidade struct {
	ID   int64   `json:"id"`
	Nome *string `json:"nome"`
}

// SkillGroup is one category with its skills, the /api/skills item shape.
type SkillGroup struct {
	Skill       Categoria    `json:"skill"`
	Habilidades []Habilidade `json:"habilidades"`
}

// Formacao is an education entry. Text columns are nullable.
type Formacao struct {
	ID          int64   `json:"id"`
	Curso       *string `json:"curso"`
	Instituicao *string `json:"instituicao"`
	Periodo     *string `json:"periodo"`
}
