// Package mazeapi serves generated mazes over HTTP.
package mazeapi

// GenerateRequest holds the query parameters of a generation request.
type GenerateRequest struct {
	Rows     int    `form:"rows" binding:"required,min=1"`
	Columns  int    `form:"columns" binding:"required,min=1"`
	Seed     int64  `form:"seed" binding:"min=0"`
	Format   string `form:"format"`
	CellSize int    `form:"cell_size" binding:"min=0,max=32"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
