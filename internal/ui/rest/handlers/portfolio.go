package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/portfolio-api/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	msgSupabaseFailure = "Erro no Servidor: Falha ao acessar o Supabase"
	msgFormacaoFailure = "Erro no Servidor: Falha ao acessar a Formação"
)

// PortfolioReader is what the portfolio routes need from storage.
type PortfolioReader interface {
	ListCategorias(ctx context.Context) ([]domain.Categoria, error)
	ListSkillGroups(ctx context.Context) ([]domain.SkillGroup, error)
	ListFormacao(ctx context.Context) ([]domain.Formacao, error)
}

// ErrorResponse is the body of every failed portfolio route.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

type Portfolio interface {
	Categorias() gin.HandlerFunc
	Skills() gin.HandlerFunc
	Formacao() gin.HandlerFunc
}

func NewPortfolio(reader PortfolioReader) Portfolio {
	return &portfolio{reader: reader}
}

type portfolio struct {
	reader PortfolioReader
}

// GET /api/categorias
func (p *portfolio) Categorias() gin.HandlerFunc {
	return func(c *gin.Context) {
		categorias, err := p.reader.ListCategorias(c.Request.Context())
		if err != nil {
			fail(c, msgSupabaseFailure, err)
			return
		}
		c.JSON(http.StatusOK, categorias)
	}
}

// GET /api/skills
func (p *portfolio) Skills() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := p.reader.ListSkillGroups(c.Request.Context())
		if err != nil {
			fail(c, msgSupabaseFailure, err)
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

// GET /api/formacao
func (p *portfolio) Formacao() gin.HandlerFunc {
	return func(c *gin.Context) {
		formacao, err := p.reader.ListFormacao(c.Request.Context())
		if err != nil {
			fail(c, msgFormacaoFailure, err)
			return
		}
		c.JSON(http.StatusOK, formacao)
	}
}

func fail(c *gin.Context, msg string, err error) {
	log.Ctx(c.Request.Context()).Error().
		Err(err).
		Str("route", c.FullPath()).
		Msg("route failed")

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:  msg,
		Detail: err.Error(),
	})
}
