package config

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

type CustomGameDTO struct {
	Rows      int `schema:"rows,required"`
	Cols      int `schema:"cols,required"`
	MineCount int `schema:"mines,required"`
}

// ParseCustom decodes a grid given as a query string such as
// "rows=8&cols=8&mines=10".
func ParseCustom(query string) (mines.GameParams, error) {
	src, err := url.ParseQuery(query)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid custom grid %q: %w", query, err)
	}

	var dto CustomGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid custom grid %q: %w", query, err)
	}

	params := mines.GameParams(dto)
	if err := params.Validate(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}
